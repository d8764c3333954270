package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"biomarket-api/internal/auth"
	"biomarket-api/internal/dto"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
	"biomarket-api/internal/validate"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*model.User, string, error)
	CurrentUser(ctx context.Context, userID uint) (*model.User, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	jwt      *auth.JWTManager
}

func NewAuthService(userRepo repository.UserRepository, jwt *auth.JWTManager) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		jwt:      jwt,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, string, error) {
	if err := validateRegister(req); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = "buyer"
	}

	user := &model.User{
		Email:    email,
		Password: hashed,
		Fullname: strings.TrimSpace(req.Fullname),
		Role:     role,
		Phone:    strings.TrimSpace(req.Phone),
		Address:  strings.TrimSpace(req.Address),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	return user, token, nil
}

// Login returns ErrInvalidCredentials for both an unknown email and a wrong
// password so callers cannot enumerate accounts.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, string, error) {
	var fieldErrs validate.Errors
	fieldErrs.Check("email", validate.Email(req.Email))
	if req.Password == "" {
		fieldErrs.Add("password", "password is required")
	}
	if fieldErrs.HasErrors() {
		return nil, "", &fieldErrs
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := auth.ComparePassword(user.Password, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	return user, token, nil
}

func (s *authServiceImpl) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The account was deleted after the token was issued.
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

func validateRegister(req *dto.RegisterRequest) error {
	var fieldErrs validate.Errors
	fieldErrs.Check("email", validate.Email(req.Email))
	fieldErrs.Check("password", validate.Password(req.Password))
	fieldErrs.Check("fullname", validate.Name(req.Fullname))
	if req.Phone != "" {
		fieldErrs.Check("phone", validate.Phone(req.Phone))
	}
	if req.Address != "" {
		fieldErrs.Check("address", validate.Address(req.Address))
	}
	if req.Role != "" && req.Role != "buyer" && req.Role != "farmer" {
		fieldErrs.Add("role", "role must be buyer or farmer")
	}
	if fieldErrs.HasErrors() {
		return &fieldErrs
	}
	return nil
}

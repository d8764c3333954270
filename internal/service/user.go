package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
	"biomarket-api/internal/validate"
)

type UserService interface {
	Profile(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*model.User, error)
	// DeleteAccount implements the right to be forgotten; owned records
	// cascade with the user row.
	DeleteAccount(ctx context.Context, userID uint) error
	// ExportData returns the full account export for data portability.
	ExportData(ctx context.Context, userID uint) (*dto.DataExport, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) Profile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*model.User, error) {
	var fieldErrs validate.Errors
	if req.Fullname != nil {
		fieldErrs.Check("fullname", validate.Name(*req.Fullname))
	}
	if req.Phone != nil && *req.Phone != "" {
		fieldErrs.Check("phone", validate.Phone(*req.Phone))
	}
	if req.Address != nil && *req.Address != "" {
		fieldErrs.Check("address", validate.Address(*req.Address))
	}
	if fieldErrs.HasErrors() {
		return nil, &fieldErrs
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Fullname != nil {
		user.Fullname = strings.TrimSpace(*req.Fullname)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		user.Address = strings.TrimSpace(*req.Address)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (s *userServiceImpl) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.Profile(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *userServiceImpl) ExportData(ctx context.Context, userID uint) (*dto.DataExport, error) {
	user, err := s.userRepo.FindWithData(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user data: %w", err)
	}

	export := &dto.DataExport{
		User:          user,
		Orders:        user.Orders,
		Subscriptions: user.Subscriptions,
		Payments:      user.Payments,
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	return export, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
	"biomarket-api/internal/validate"
)

func TestRegister(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testJWT(t))
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "New@Example.COM",
		Password: "secret123",
		Fullname: "Jana Nováková",
	})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if token == "" {
		t.Error("Register() returned empty token")
	}
	if user.Email != "new@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Role != "buyer" {
		t.Errorf("default role = %q, want buyer", user.Role)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plain text")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testJWT(t))
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "secret123",
		Fullname: "First User",
	}
	if _, _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}

	// Same address, different case: still a duplicate.
	req2 := &dto.RegisterRequest{
		Email:    "DUP@example.com",
		Password: "secret456",
		Fullname: "Second User",
	}
	_, _, err := svc.Register(ctx, req2)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("Register() error = %v, want ErrEmailTaken", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("user rows = %d, want 1 (duplicate register must not create a row)", count)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testJWT(t))
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"bad email", dto.RegisterRequest{Email: "bad", Password: "secret123", Fullname: "Jana"}},
		{"short password", dto.RegisterRequest{Email: "a@b.cz", Password: "abc", Fullname: "Jana"}},
		{"missing fullname", dto.RegisterRequest{Email: "a@b.cz", Password: "secret123"}},
		{"bad role", dto.RegisterRequest{Email: "a@b.cz", Password: "secret123", Fullname: "Jana", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, &tt.req)
			var fieldErrs *validate.Errors
			if !errors.As(err, &fieldErrs) {
				t.Errorf("Register() error = %v, want validation error", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testJWT(t))
	ctx := context.Background()
	createTestUser(t, db, "login@example.com")

	user, token, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "login@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token == "" {
		t.Error("Login() returned empty token")
	}
	if user.Email != "login@example.com" {
		t.Errorf("user email = %q", user.Email)
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestLoginEnumerationResistance(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testJWT(t))
	ctx := context.Background()
	createTestUser(t, db, "known@example.com")

	_, _, errWrongPassword := svc.Login(ctx, &dto.LoginRequest{
		Email:    "known@example.com",
		Password: "not-the-password",
	})
	_, _, errUnknownEmail := svc.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", errUnknownEmail)
	}
}

func TestCurrentUser(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testJWT(t))
	ctx := context.Background()
	user := createTestUser(t, db, "me@example.com")

	got, err := svc.CurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("CurrentUser() error: %v", err)
	}
	if got.Email != "me@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	// Deleted after token issuance.
	if err := db.Delete(&model.User{}, user.ID).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CurrentUser(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("CurrentUser() after delete = %v, want ErrNotFound", err)
	}
}

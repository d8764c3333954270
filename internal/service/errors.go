package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrUnknownPlan        = errors.New("unknown subscription plan")
	ErrUnknownProduct     = errors.New("unknown product")
)

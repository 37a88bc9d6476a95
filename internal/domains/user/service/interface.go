package service

import (
	"context"

	"djbooking-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// Register creates an account and signs in the new principal.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenPair, error)
}

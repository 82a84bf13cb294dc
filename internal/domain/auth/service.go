package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	AdminLogin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
	// EnsureAdmin creates the admin account if it does not exist yet.
	EnsureAdmin(ctx context.Context, adminID string, password string) error
}

package auth

import "context"

// AuthService defines login, registration and token refresh.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, string, int64, error)
	Register(ctx context.Context, req RegisterRequest) error
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, string, int64, error)
	Logout(ctx context.Context, refreshToken string) error
}

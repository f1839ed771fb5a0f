package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, string, int64, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, string, int64, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, string, int64, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

package auth

import (
	"context"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (LoginResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, accessToken string, refreshToken string) error
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/auth"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/jwt"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx postgresql.TxManager
	user.UserRepository
	auth.TokenRepository
	jwt.Service
}

func NewAuthService(tx postgresql.TxManager, userRepository user.UserRepository, tokenRepository auth.TokenRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		tx:              tx,
		UserRepository:  userRepository,
		TokenRepository: tokenRepository,
		Service:         jwtService,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService. New accounts wait for an admin.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         user.RoleStaff,
		Position:     req.Position,
		Department:   req.Department,
		IsActive:     false,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.NewUserResponse(created), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	// Only checked after the password so account state is not leaked.
	if userData.IsRejected() {
		return auth.LoginResponse{}, auth.ErrAccountRejected
	}
	if !userData.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountPendingApproval
	}

	var tokenResponse auth.TokenResponse
	err = a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.TokenRepository.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, session); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		TokenResponse: tokenResponse,
		User:          user.NewUserResponse(userData),
	}, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	token, err := a.Service.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := token.PrivateClaims()["type"].(string); tokenType != jwt.TokenTypeRefresh {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := a.TokenRepository.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if stored.RevokedAt != nil {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if !stored.Usable(time.Now()) {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.IsActive {
		return auth.AccessTokenResponse{}, auth.ErrAccountPendingApproval
	}

	accessToken, expiresIn, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresIn,
	}, nil
}

// Logout implements auth.AuthService. The refresh token is optional.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string, refreshToken string) error {
	if refreshToken != "" {
		err := a.tx.WithinTx(ctx, func(txCtx context.Context) error {
			stored, err := a.TokenRepository.GetRefreshToken(txCtx, refreshToken)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					return nil
				}
				return fmt.Errorf("failed to get refresh token: %w", err)
			}
			if stored.RevokedAt == nil {
				if err := a.TokenRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
					return fmt.Errorf("failed to revoke refresh token: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if accessToken != "" {
		expiresAt := time.Now().Add(24 * time.Hour).Unix()
		if token, err := a.Service.JWTAuth().Decode(accessToken); err == nil && !token.Expiration().IsZero() {
			expiresAt = token.Expiration().Unix()
		}
		a.Service.RevokeToken(accessToken, expiresAt)
	}

	return nil
}

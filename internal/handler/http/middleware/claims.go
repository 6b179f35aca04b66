package middleware

import (
	"context"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/auth"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Caller is the authenticated user taken from the access token claims.
type Caller struct {
	ID    string
	Email string
	Role  user.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == user.RoleAdmin
}

func CallerFromContext(ctx context.Context) (Caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Caller{}, auth.ErrInvalidToken
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return Caller{}, auth.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Caller{ID: id, Email: email, Role: user.Role(role)}, nil
}

package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_AccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	token, exp, err := svc.GenerateAccessToken("user-1", "staff@tracking.com", user.RoleStaff)
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "STAFF", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestJWTService_RefreshTokensAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	a, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	b, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestJWTService_InvalidDuration(t *testing.T) {
	svc := NewJWTService("secret", "soon", "24h")
	_, _, err := svc.GenerateAccessToken("user-1", "a@b.cd", user.RoleAdmin)
	assert.Error(t, err)
}

func TestJWTService_RevokeAndPrune(t *testing.T) {
	svc := NewJWTService("secret", "1h", "24h")
	now := time.Now()

	svc.RevokeToken("expired", now.Add(-time.Minute).Unix())
	svc.RevokeToken("live", now.Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
	assert.False(t, svc.IsTokenRevoked("other"))

	assert.Equal(t, 1, svc.PruneRevoked(now))
	assert.False(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
}

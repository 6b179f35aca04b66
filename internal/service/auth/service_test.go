package auth

import (
	"context"
	"testing"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/auth"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	user.UserRepository
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.User{}, user.ErrUserEmailExists
	}
	u.ID = "user-" + u.Email
	u.RegisteredAt = time.Now()
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) set(u user.User) {
	f.byEmail[u.Email] = u
}

type fakeTokenRepo struct {
	tokens map[string]*auth.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*auth.RefreshToken{}}
}

func (f *fakeTokenRepo) CreateRefreshToken(_ context.Context, userID string, token string, expiresAt int64, _ auth.SessionTrackingRequest) error {
	f.tokens[token] = &auth.RefreshToken{ID: int64(len(f.tokens) + 1), UserID: userID, ExpiresAt: time.Unix(expiresAt, 0)}
	return nil
}

func (f *fakeTokenRepo) GetRefreshToken(_ context.Context, token string) (auth.RefreshToken, error) {
	rt, ok := f.tokens[token]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	return *rt, nil
}

func (f *fakeTokenRepo) RevokeRefreshToken(_ context.Context, token string) error {
	if rt, ok := f.tokens[token]; ok {
		now := time.Now()
		rt.RevokedAt = &now
	}
	return nil
}

func (f *fakeTokenRepo) DeleteExpiredRefreshTokens(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type authFixture struct {
	users   *fakeUserRepo
	tokens  *fakeTokenRepo
	jwt     jwt.Service
	service auth.AuthService
}

func newAuthFixture() authFixture {
	f := authFixture{
		users:  newFakeUserRepo(),
		tokens: newFakeTokenRepo(),
		jwt:    jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp),
	}
	f.service = NewAuthService(fakeTx{}, f.users, f.tokens, f.jwt)
	return f
}

func (f authFixture) registerActive(t *testing.T, email string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := user.User{ID: "user-" + email, Email: email, PasswordHash: string(hash), FirstName: "A", LastName: "B", Role: user.RoleStaff, IsActive: true}
	f.users.set(u)
	return u
}

func TestAuthService_Register_CreatesInactiveUser(t *testing.T) {
	f := newAuthFixture()

	resp, err := f.service.Register(context.Background(), auth.RegisterRequest{
		Email:     "New@Example.com",
		Password:  "password123",
		FirstName: "Sok",
		LastName:  "Dara",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.False(t, resp.IsActive)
	assert.Equal(t, user.RoleStaff, resp.Role)

	stored, err := f.users.GetByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestAuthService_Register_Validation(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Register(context.Background(), auth.RegisterRequest{Email: "bad", Password: "short"})
	assert.Error(t, err)
	assert.Empty(t, f.users.byEmail)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	req := auth.RegisterRequest{Email: "dup@example.com", Password: "password123", FirstName: "A", LastName: "B"}

	_, err := f.service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = f.service.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture()
	u := f.registerActive(t, "staff@example.com")

	resp, err := f.service.Login(context.Background(), auth.LoginRequest{Email: "staff@example.com", Password: "password123"}, auth.SessionTrackingRequest{IPAddress: "127.0.0.1"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, time.Now().Unix())
	assert.Equal(t, u.ID, resp.User.ID)
	assert.Contains(t, f.tokens.tokens, resp.RefreshToken)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *user.User)
		pass    string
		wantErr error
	}{
		{name: "wrong password", pass: "wrong-password", wantErr: auth.ErrInvalidCredentials},
		{name: "pending", pass: "password123", mutate: func(u *user.User) { u.IsActive = false }, wantErr: auth.ErrAccountPendingApproval},
		{name: "rejected", pass: "password123", mutate: func(u *user.User) {
			now := time.Now()
			u.IsActive = false
			u.RejectedAt = &now
		}, wantErr: auth.ErrAccountRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			u := f.registerActive(t, "staff@example.com")
			if tt.mutate != nil {
				tt.mutate(&u)
				f.users.set(u)
			}

			_, err := f.service.Login(context.Background(), auth.LoginRequest{Email: u.Email, Password: tt.pass}, auth.SessionTrackingRequest{})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.tokens.tokens)
		})
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Login(context.Background(), auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := newAuthFixture()
	f.registerActive(t, "staff@example.com")

	login, err := f.service.Login(context.Background(), auth.LoginRequest{Email: "staff@example.com", Password: "password123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	resp, err := f.service.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// An access token is not accepted as a refresh token.
	_, err = f.service.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = f.service.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesBothTokens(t *testing.T) {
	f := newAuthFixture()
	f.registerActive(t, "staff@example.com")

	login, err := f.service.Login(context.Background(), auth.LoginRequest{Email: "staff@example.com", Password: "password123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), login.AccessToken, login.RefreshToken))

	assert.True(t, f.jwt.IsTokenRevoked(login.AccessToken))

	_, err = f.service.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// Logging out twice is harmless.
	assert.NoError(t, f.service.Logout(context.Background(), login.AccessToken, login.RefreshToken))
}

package seed

import (
	"context"
	"testing"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/config"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOfficeRepo struct {
	office.OfficeRepository
	offices []office.Office
}

func (f *fakeOfficeRepo) ListActive(context.Context) ([]office.Office, error) {
	return f.offices, nil
}

func (f *fakeOfficeRepo) Create(_ context.Context, o office.Office) (office.Office, error) {
	o.ID = o.Name
	f.offices = append(f.offices, o)
	return o, nil
}

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = "admin"
	f.users[u.Email] = u
	return u, nil
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	offices := &fakeOfficeRepo{}
	users := &fakeUserRepo{users: map[string]user.User{}}
	seeder := NewSeeder(fakeTx{}, offices, users, config.SeedConfig{OnStart: true, AdminEmail: "Admin@Tracking.com", AdminPassword: "changeme123"})

	require.NoError(t, seeder.Run(context.Background()))
	require.NoError(t, seeder.Run(context.Background()))

	require.Len(t, offices.offices, 2)
	assert.Equal(t, 50.0, offices.offices[0].Radius)
	assert.InDelta(t, 13.362922, offices.offices[1].Latitude, 1e-9)

	require.Len(t, users.users, 1)
	admin := users.users["admin@tracking.com"]
	assert.Equal(t, user.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "changeme123", admin.PasswordHash)
}

func TestSeeder_SkipsAdminWithoutPassword(t *testing.T) {
	users := &fakeUserRepo{users: map[string]user.User{}}
	seeder := NewSeeder(fakeTx{}, &fakeOfficeRepo{}, users, config.SeedConfig{AdminEmail: "admin@tracking.com"})

	require.NoError(t, seeder.Run(context.Background()))
	assert.Empty(t, users.users)
}

package user

import (
	"context"
	"testing"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
	last  user.ListFilter
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context, filter user.ListFilter) ([]user.User, error) {
	f.last = filter
	out := []user.User{}
	for _, u := range f.users {
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id string, p user.Profile) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) AdminUpdate(_ context.Context, id string, c user.AdminChanges) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if c.Role != nil {
		u.Role = *c.Role
	}
	if c.IsActive != nil {
		u.IsActive = *c.IsActive
	}
	f.users[id] = u
	return u, nil
}

func newFixture() (*fakeUserRepo, user.UserService) {
	repo := &fakeUserRepo{users: map[string]user.User{
		"admin": {ID: "admin", Email: "admin@example.com", Role: user.RoleAdmin, IsActive: true},
		"staff": {ID: "staff", Email: "staff@example.com", Role: user.RoleStaff, IsActive: true},
	}}
	return repo, NewUserService(repo)
}

func TestUserService_UpdateProfile_HashesPassword(t *testing.T) {
	repo, svc := newFixture()
	name := "Sophea"
	password := "new-password"

	resp, err := svc.UpdateProfile(context.Background(), "staff", user.UpdateProfileRequest{FirstName: &name, Password: &password})

	require.NoError(t, err)
	assert.Equal(t, "Sophea", resp.FirstName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["staff"].PasswordHash), []byte(password)))
}

func TestUserService_UpdateProfile_ShortPassword(t *testing.T) {
	_, svc := newFixture()
	password := "short"

	_, err := svc.UpdateProfile(context.Background(), "staff", user.UpdateProfileRequest{Password: &password})
	assert.Error(t, err)
}

func TestUserService_List_ParsesFilter(t *testing.T) {
	repo, svc := newFixture()

	list, err := svc.List(context.Background(), user.ListUsersQuery{Role: "admin", IsActive: "true"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	require.NotNil(t, repo.last.Role)
	assert.Equal(t, user.RoleAdmin, *repo.last.Role)

	_, err = svc.List(context.Background(), user.ListUsersQuery{IsActive: "maybe"})
	assert.Error(t, err)
}

func TestUserService_AdminUpdate(t *testing.T) {
	_, svc := newFixture()
	role := "admin"

	resp, err := svc.AdminUpdate(context.Background(), "admin", user.AdminUpdateUserRequest{ID: "staff", Role: &role})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, resp.Role)

	_, err = svc.AdminUpdate(context.Background(), "admin", user.AdminUpdateUserRequest{ID: "missing", Role: &role})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserService_Deactivate(t *testing.T) {
	repo, svc := newFixture()

	resp, err := svc.Deactivate(context.Background(), "admin", "staff")
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.False(t, repo.users["staff"].IsActive)

	_, err = svc.Deactivate(context.Background(), "admin", "admin")
	assert.ErrorIs(t, err, user.ErrCannotDeactivateSelf)
	assert.True(t, repo.users["admin"].IsActive)
}

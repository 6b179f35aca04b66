package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGetByEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(db)

	created := createTestUser(t, db, "Staff@Example.com", false)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "staff@example.com", created.Email)
	assert.False(t, created.IsActive)

	found, err := repo.GetByEmail(ctx, "staff@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewUserRepository(db)

	createTestUser(t, db, "dup@example.com", false)

	_, err := repo.Create(context.Background(), user.User{
		Email:        "dup@example.com",
		PasswordHash: "hash",
		FirstName:    "A",
		LastName:     "B",
		Role:         user.RoleStaff,
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = repo.GetByID(context.Background(), "0192b1a0-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_ActivateOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(db)

	pending := createTestUser(t, db, "pending@example.com", false)

	list, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	activated, err := repo.Activate(ctx, pending.ID, user.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.Equal(t, user.RoleAdmin, activated.Role)

	_, err = repo.Activate(ctx, pending.ID, user.RoleStaff)
	assert.ErrorIs(t, err, user.ErrRegistrationAlreadyProcessed)

	list, err = repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserRepository_RejectLeavesPendingList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(db)

	pending := createTestUser(t, db, "reject@example.com", false)

	rejected, err := repo.Reject(ctx, pending.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, rejected.IsActive)
	assert.NotNil(t, rejected.RejectedAt)

	list, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.Activate(ctx, pending.ID, user.RoleStaff)
	assert.ErrorIs(t, err, user.ErrRegistrationAlreadyProcessed)
}

func TestUserRepository_ListFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(db)

	createTestUser(t, db, "a@example.com", true)
	createTestUser(t, db, "b@example.com", false)

	active := true
	list, err := repo.List(ctx, user.ListFilter{IsActive: &active})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a@example.com", list[0].Email)

	role := user.RoleStaff
	list, err = repo.List(ctx, user.ListFilter{Role: &role})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

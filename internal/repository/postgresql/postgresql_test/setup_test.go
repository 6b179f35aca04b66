package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// every table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))

	_, err = db.Pool.Exec(ctx, `
		TRUNCATE TABLE work_plan_comments, work_plans, mission_requests, leave_requests,
			attendance_records, office_locations, refresh_tokens, users CASCADE
	`)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *database.DB, email string, active bool) user.User {
	t.Helper()

	created, err := postgresql.NewUserRepository(db).Create(context.Background(), user.User{
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuu",
		FirstName:    "Test",
		LastName:     "User",
		Role:         user.RoleStaff,
		IsActive:     active,
	})
	require.NoError(t, err)
	return created
}

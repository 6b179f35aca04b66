package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, password_hash, first_name, last_name, role, position, department,
	is_active, rejected_at, registered_at, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.Position,
		&u.Department,
		&u.IsActive,
		&u.RejectedAt,
		&u.RegisteredAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) queryUsers(ctx context.Context, query string, args ...any) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if newUser.ID == "" {
		id, err := newID()
		if err != nil {
			return user.User{}, fmt.Errorf("failed to generate user id: %w", err)
		}
		newUser.ID = id
	}

	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, position, department, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.ID,
		strings.ToLower(strings.TrimSpace(newUser.Email)),
		newUser.PasswordHash,
		newUser.FirstName,
		newUser.LastName,
		newUser.Role,
		newUser.Position,
		newUser.Department,
		newUser.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if isNotFound(err) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	found, err := scanUser(q.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		if isNotFound(err) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return found, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Role != nil {
		whereClause += fmt.Sprintf(" AND role = $%d", argIndex)
		args = append(args, *filter.Role)
		argIndex++
	}
	if filter.IsActive != nil {
		whereClause += fmt.Sprintf(" AND is_active = $%d", argIndex)
		args = append(args, *filter.IsActive)
	}

	query := fmt.Sprintf(`SELECT %s FROM users %s ORDER BY created_at DESC`, userColumns, whereClause)

	users, err := r.queryUsers(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListPending implements user.UserRepository.
func (r *userRepositoryImpl) ListPending(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_active = FALSE AND rejected_at IS NULL
		ORDER BY registered_at DESC
	`

	users, err := r.queryUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}
	return users, nil
}

// UpdateProfile implements user.UserRepository.
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, id string, profile user.Profile) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			position = COALESCE($4, position),
			department = COALESCE($5, department),
			password_hash = COALESCE($6, password_hash),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query,
		id,
		profile.FirstName,
		profile.LastName,
		profile.Position,
		profile.Department,
		profile.PasswordHash,
	))
	if err != nil {
		if isNotFound(err) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

// AdminUpdate implements user.UserRepository.
func (r *userRepositoryImpl) AdminUpdate(ctx context.Context, id string, changes user.AdminChanges) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	var role *string
	if changes.Role != nil {
		s := string(*changes.Role)
		role = &s
	}

	query := `
		UPDATE users
		SET role = COALESCE($2, role),
			is_active = COALESCE($3, is_active),
			position = COALESCE($4, position),
			department = COALESCE($5, department),
			rejected_at = CASE WHEN $3::boolean IS TRUE THEN NULL ELSE rejected_at END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query,
		id,
		role,
		changes.IsActive,
		changes.Position,
		changes.Department,
	))
	if err != nil {
		if isNotFound(err) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}

// Activate implements user.UserRepository.
func (r *userRepositoryImpl) Activate(ctx context.Context, id string, role user.Role) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET is_active = TRUE, role = $2, updated_at = NOW()
		WHERE id = $1 AND is_active = FALSE AND rejected_at IS NULL
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query, id, role))
	if err != nil {
		if isNotFound(err) {
			return user.User{}, r.missingOrProcessed(ctx, id)
		}
		return user.User{}, fmt.Errorf("failed to activate user: %w", err)
	}
	return updated, nil
}

// Reject implements user.UserRepository.
func (r *userRepositoryImpl) Reject(ctx context.Context, id string, at time.Time) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET rejected_at = $2, updated_at = NOW()
		WHERE id = $1 AND is_active = FALSE AND rejected_at IS NULL
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query, id, at))
	if err != nil {
		if isNotFound(err) {
			return user.User{}, r.missingOrProcessed(ctx, id)
		}
		return user.User{}, fmt.Errorf("failed to reject user: %w", err)
	}
	return updated, nil
}

func (r *userRepositoryImpl) missingOrProcessed(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return user.ErrRegistrationAlreadyProcessed
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `lr.id, lr.user_id, lr.start_date, lr.end_date, lr.reason, lr.status,
	lr.approved_by, lr.approved_at, lr.created_at, lr.updated_at,
	u.id, u.email, u.first_name, u.last_name`

const leaveReturning = `id, user_id, start_date, end_date, reason, status, approved_by, approved_at, created_at, updated_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveWithOwner(row pgx.Row) (leave.LeaveRequest, error) {
	var (
		lr    leave.LeaveRequest
		owner user.Summary
	)
	err := row.Scan(
		&lr.ID, &lr.UserID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status,
		&lr.ApprovedBy, &lr.ApprovedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&owner.ID, &owner.Email, &owner.FirstName, &owner.LastName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.Owner = &owner
	return lr, nil
}

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.UserID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status,
		&lr.ApprovedBy, &lr.ApprovedAt, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, whereClause string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		%s
		ORDER BY lr.created_at DESC
	`, leaveColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveWithOwner(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		id, err := newID()
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
		}
		req.ID = id
	}

	query := `
		INSERT INTO leave_requests (id, user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveReturning

	created, err := scanLeave(q.QueryRow(ctx, query, req.ID, req.UserID, req.StartDate, req.EndDate, req.Reason, leave.StatusPending))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1
	`

	found, err := scanLeaveWithOwner(q.QueryRow(ctx, query, id))
	if err != nil {
		if isNotFound(err) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return found, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	requests, err := r.list(ctx, "WHERE lr.user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	requests, err := r.list(ctx, "WHERE lr.status = $1", leave.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return requests, nil
}

// UpdatePending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdatePending(ctx context.Context, id string, userID string, changes leave.Changes) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET start_date = COALESCE($3, start_date),
			end_date = COALESCE($4, end_date),
			reason = COALESCE($5, reason),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND status = 'PENDING'
		RETURNING ` + leaveReturning

	updated, err := scanLeave(q.QueryRow(ctx, query, id, userID, changes.StartDate, changes.EndDate, changes.Reason))
	if err != nil {
		if isNotFound(err) {
			return leave.LeaveRequest{}, r.missingOrProcessed(ctx, id, &userID)
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return updated, nil
}

// DeletePending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) DeletePending(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1 AND user_id = $2 AND status = 'PENDING'`, id, userID)
	if err != nil {
		if isNotFound(err) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrProcessed(ctx, id, &userID)
	}
	return nil
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, status leave.Status, approverID string, at time.Time) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING ` + leaveReturning

	decided, err := scanLeave(q.QueryRow(ctx, query, id, status, approverID, at))
	if err != nil {
		if isNotFound(err) {
			return leave.LeaveRequest{}, r.missingOrProcessed(ctx, id, nil)
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to decide leave request: %w", err)
	}
	return decided, nil
}

// missingOrProcessed explains why a PENDING-guarded statement matched nothing.
func (r *leaveRequestRepositoryImpl) missingOrProcessed(ctx context.Context, id string, userID *string) error {
	found, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if userID != nil && found.UserID != *userID {
		return leave.ErrLeaveRequestNotFound
	}
	return leave.ErrRequestAlreadyProcessed
}

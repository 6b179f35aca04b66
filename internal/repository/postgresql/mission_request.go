package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const missionReturning = `id, user_id, title, description, start_date, end_date, status, approved_by, approved_at, created_at, updated_at`

type missionRequestRepositoryImpl struct {
	db *database.DB
}

func NewMissionRequestRepository(db *database.DB) mission.MissionRequestRepository {
	return &missionRequestRepositoryImpl{db: db}
}

func scanMission(row pgx.Row, withOwner bool) (mission.MissionRequest, error) {
	var (
		m     mission.MissionRequest
		owner user.Summary
	)
	dest := []any{
		&m.ID, &m.UserID, &m.Title, &m.Description, &m.StartDate, &m.EndDate, &m.Status,
		&m.ApprovedBy, &m.ApprovedAt, &m.CreatedAt, &m.UpdatedAt,
	}
	if withOwner {
		dest = append(dest, &owner.ID, &owner.Email, &owner.FirstName, &owner.LastName)
	}
	if err := row.Scan(dest...); err != nil {
		return mission.MissionRequest{}, err
	}
	if withOwner {
		m.Owner = &owner
	}
	return m, nil
}

func (r *missionRequestRepositoryImpl) selectWithOwner(whereClause string) string {
	return `
		SELECT mr.id, mr.user_id, mr.title, mr.description, mr.start_date, mr.end_date, mr.status,
			   mr.approved_by, mr.approved_at, mr.created_at, mr.updated_at,
			   u.id, u.email, u.first_name, u.last_name
		FROM mission_requests mr
		JOIN users u ON u.id = mr.user_id
		` + whereClause + `
		ORDER BY mr.created_at DESC
	`
}

func (r *missionRequestRepositoryImpl) list(ctx context.Context, whereClause string, args ...any) ([]mission.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, r.selectWithOwner(whereClause), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]mission.MissionRequest, 0)
	for rows.Next() {
		m, err := scanMission(rows, true)
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}

func (r *missionRequestRepositoryImpl) Create(ctx context.Context, req mission.MissionRequest) (mission.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		id, err := newID()
		if err != nil {
			return mission.MissionRequest{}, fmt.Errorf("failed to generate mission request id: %w", err)
		}
		req.ID = id
	}

	query := `
		INSERT INTO mission_requests (id, user_id, title, description, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + missionReturning

	created, err := scanMission(q.QueryRow(ctx, query,
		req.ID, req.UserID, req.Title, req.Description, req.StartDate, req.EndDate, mission.StatusPending,
	), false)
	if err != nil {
		return mission.MissionRequest{}, fmt.Errorf("failed to insert mission request: %w", err)
	}
	return created, nil
}

func (r *missionRequestRepositoryImpl) GetByID(ctx context.Context, id string) (mission.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanMission(q.QueryRow(ctx, r.selectWithOwner("WHERE mr.id = $1"), id), true)
	if err != nil {
		if isNotFound(err) {
			return mission.MissionRequest{}, mission.ErrMissionRequestNotFound
		}
		return mission.MissionRequest{}, fmt.Errorf("failed to get mission request: %w", err)
	}
	return found, nil
}

func (r *missionRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]mission.MissionRequest, error) {
	requests, err := r.list(ctx, "WHERE mr.user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mission requests: %w", err)
	}
	return requests, nil
}

func (r *missionRequestRepositoryImpl) ListPending(ctx context.Context) ([]mission.MissionRequest, error) {
	requests, err := r.list(ctx, "WHERE mr.status = $1", mission.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mission requests: %w", err)
	}
	return requests, nil
}

func (r *missionRequestRepositoryImpl) UpdatePending(ctx context.Context, id string, userID string, changes mission.Changes) (mission.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE mission_requests
		SET title = COALESCE($3, title),
			description = COALESCE($4, description),
			start_date = COALESCE($5, start_date),
			end_date = COALESCE($6, end_date),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND status = 'PENDING'
		RETURNING ` + missionReturning

	updated, err := scanMission(q.QueryRow(ctx, query,
		id, userID, changes.Title, changes.Description, changes.StartDate, changes.EndDate,
	), false)
	if err != nil {
		if isNotFound(err) {
			return mission.MissionRequest{}, r.missingOrProcessed(ctx, id, &userID)
		}
		return mission.MissionRequest{}, fmt.Errorf("failed to update mission request: %w", err)
	}
	return updated, nil
}

func (r *missionRequestRepositoryImpl) DeletePending(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM mission_requests WHERE id = $1 AND user_id = $2 AND status = 'PENDING'`, id, userID)
	if err != nil {
		if isNotFound(err) {
			return mission.ErrMissionRequestNotFound
		}
		return fmt.Errorf("failed to delete mission request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrProcessed(ctx, id, &userID)
	}
	return nil
}

func (r *missionRequestRepositoryImpl) Decide(ctx context.Context, id string, status mission.Status, approverID string, at time.Time) (mission.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE mission_requests
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING ` + missionReturning

	decided, err := scanMission(q.QueryRow(ctx, query, id, status, approverID, at), false)
	if err != nil {
		if isNotFound(err) {
			return mission.MissionRequest{}, r.missingOrProcessed(ctx, id, nil)
		}
		return mission.MissionRequest{}, fmt.Errorf("failed to decide mission request: %w", err)
	}
	return decided, nil
}

func (r *missionRequestRepositoryImpl) missingOrProcessed(ctx context.Context, id string, userID *string) error {
	found, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if userID != nil && found.UserID != *userID {
		return mission.ErrMissionRequestNotFound
	}
	return mission.ErrRequestAlreadyProcessed
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const workPlanColumns = `wp.id, wp.user_id, wp.title, wp.description, wp.due_date, wp.status, wp.progress,
	wp.achievement, wp.output, wp.submitted_at, wp.created_at, wp.updated_at,
	u.id, u.email, u.first_name, u.last_name`

const workPlanReturning = `id, user_id, title, description, due_date, status, progress,
	achievement, output, submitted_at, created_at, updated_at`

type workPlanRepositoryImpl struct {
	db *database.DB
}

func NewWorkPlanRepository(db *database.DB) workplan.WorkPlanRepository {
	return &workPlanRepositoryImpl{db: db}
}

func scanWorkPlan(row pgx.Row, withOwner bool) (workplan.WorkPlan, error) {
	var (
		wp    workplan.WorkPlan
		owner user.Summary
	)
	dest := []any{
		&wp.ID, &wp.UserID, &wp.Title, &wp.Description, &wp.DueDate, &wp.Status, &wp.Progress,
		&wp.Achievement, &wp.Output, &wp.SubmittedAt, &wp.CreatedAt, &wp.UpdatedAt,
	}
	if withOwner {
		dest = append(dest, &owner.ID, &owner.Email, &owner.FirstName, &owner.LastName)
	}
	if err := row.Scan(dest...); err != nil {
		return workplan.WorkPlan{}, err
	}
	if withOwner {
		wp.Owner = &owner
	}
	return wp, nil
}

// Create implements workplan.WorkPlanRepository.
func (r *workPlanRepositoryImpl) Create(ctx context.Context, plan workplan.WorkPlan) (workplan.WorkPlan, error) {
	q := GetQuerier(ctx, r.db)

	if plan.ID == "" {
		id, err := newID()
		if err != nil {
			return workplan.WorkPlan{}, fmt.Errorf("failed to generate work plan id: %w", err)
		}
		plan.ID = id
	}
	if plan.Status == "" {
		plan.Status = workplan.StatusDraft
	}

	query := `
		INSERT INTO work_plans (id, user_id, title, description, due_date, status, progress)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + workPlanReturning

	created, err := scanWorkPlan(q.QueryRow(ctx, query,
		plan.ID, plan.UserID, plan.Title, plan.Description, plan.DueDate, plan.Status, plan.Progress,
	), false)
	if err != nil {
		return workplan.WorkPlan{}, fmt.Errorf("failed to insert work plan: %w", err)
	}
	return created, nil
}

func (r *workPlanRepositoryImpl) get(ctx context.Context, id string, lock bool) (workplan.WorkPlan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workPlanColumns + `
		FROM work_plans wp
		JOIN users u ON u.id = wp.user_id
		WHERE wp.id = $1
	`
	if lock {
		query += " FOR UPDATE OF wp"
	}

	plan, err := scanWorkPlan(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if isNotFound(err) {
			return workplan.WorkPlan{}, workplan.ErrWorkPlanNotFound
		}
		return workplan.WorkPlan{}, fmt.Errorf("failed to get work plan: %w", err)
	}
	return plan, nil
}

// GetByID implements workplan.WorkPlanRepository.
func (r *workPlanRepositoryImpl) GetByID(ctx context.Context, id string) (workplan.WorkPlan, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate implements workplan.WorkPlanRepository.
func (r *workPlanRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (workplan.WorkPlan, error) {
	return r.get(ctx, id, true)
}

// Update implements workplan.WorkPlanRepository.
func (r *workPlanRepositoryImpl) Update(ctx context.Context, plan workplan.WorkPlan) (workplan.WorkPlan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_plans
		SET title = $2,
			description = $3,
			due_date = $4,
			status = $5,
			progress = $6,
			achievement = $7,
			output = $8,
			submitted_at = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + workPlanReturning

	updated, err := scanWorkPlan(q.QueryRow(ctx, query,
		plan.ID, plan.Title, plan.Description, plan.DueDate, plan.Status, plan.Progress,
		plan.Achievement, plan.Output, plan.SubmittedAt,
	), false)
	if err != nil {
		if isNotFound(err) {
			return workplan.WorkPlan{}, workplan.ErrWorkPlanNotFound
		}
		return workplan.WorkPlan{}, fmt.Errorf("failed to update work plan: %w", err)
	}
	updated.Owner = plan.Owner
	return updated, nil
}

// Delete implements workplan.WorkPlanRepository.
func (r *workPlanRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_plans WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return workplan.ErrWorkPlanNotFound
		}
		return fmt.Errorf("failed to delete work plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workplan.ErrWorkPlanNotFound
	}
	return nil
}

// List implements workplan.WorkPlanRepository.
func (r *workPlanRepositoryImpl) List(ctx context.Context, filter workplan.ListFilter) ([]workplan.WorkPlan, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.UserID != nil {
		whereClause += fmt.Sprintf(" AND wp.user_id = $%d", argIndex)
		args = append(args, *filter.UserID)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND wp.status = $%d", argIndex)
		args = append(args, *filter.Status)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_plans wp
		JOIN users u ON u.id = wp.user_id
		%s
		ORDER BY wp.created_at DESC
	`, workPlanColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if isNotFound(err) {
			return []workplan.WorkPlan{}, nil
		}
		return nil, fmt.Errorf("failed to list work plans: %w", err)
	}
	defer rows.Close()

	plans := make([]workplan.WorkPlan, 0)
	for rows.Next() {
		plan, err := scanWorkPlan(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work plan: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// AddComment implements workplan.WorkPlanRepository.
func (r *workPlanRepositoryImpl) AddComment(ctx context.Context, comment workplan.Comment) (workplan.Comment, error) {
	q := GetQuerier(ctx, r.db)

	if comment.ID == "" {
		id, err := newID()
		if err != nil {
			return workplan.Comment{}, fmt.Errorf("failed to generate comment id: %w", err)
		}
		comment.ID = id
	}

	query := `
		INSERT INTO work_plan_comments (id, work_plan_id, author_id, author_role, text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		comment.ID, comment.WorkPlanID, comment.AuthorID, comment.AuthorRole, comment.Text,
	).Scan(&comment.CreatedAt)
	if err != nil {
		return workplan.Comment{}, fmt.Errorf("failed to insert work plan comment: %w", err)
	}
	return comment, nil
}

// CommentsFor implements workplan.WorkPlanRepository.
func (r *workPlanRepositoryImpl) CommentsFor(ctx context.Context, workPlanIDs []string) (map[string][]workplan.Comment, error) {
	result := make(map[string][]workplan.Comment, len(workPlanIDs))
	if len(workPlanIDs) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, work_plan_id, author_id, author_role, text, created_at
		FROM work_plan_comments
		WHERE work_plan_id = ANY($1::uuid[])
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, workPlanIDs)
	if err != nil {
		if isNotFound(err) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to list work plan comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c workplan.Comment
		if err := rows.Scan(&c.ID, &c.WorkPlanID, &c.AuthorID, &c.AuthorRole, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work plan comment: %w", err)
		}
		result[c.WorkPlanID] = append(result[c.WorkPlanID], c)
	}
	return result, rows.Err()
}

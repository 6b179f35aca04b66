package postgresql

import (
	"context"
	"fmt"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/attendance"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/report"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// rangeClause filters column on the closed window. A nil bound is passed as
// NULL and disables that side of the filter.
func rangeClause(column string) string {
	return fmt.Sprintf("($1::timestamptz IS NULL OR %[1]s >= $1) AND ($2::timestamptz IS NULL OR %[1]s <= $2)", column)
}

// Counts implements report.ReportRepository.
func (r *reportRepositoryImpl) Counts(ctx context.Context, rng report.Range) (report.Counts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM attendance_records WHERE ` + rangeClause("timestamp") + `),
			(SELECT COUNT(*) FROM leave_requests WHERE ` + rangeClause("created_at") + `),
			(SELECT COUNT(*) FROM mission_requests WHERE ` + rangeClause("created_at") + `),
			(SELECT COUNT(*) FROM work_plans WHERE ` + rangeClause("created_at") + `),
			(SELECT COUNT(*) FROM users WHERE is_active = TRUE)
	`

	var c report.Counts
	err := q.QueryRow(ctx, query, rng.From, rng.To).Scan(
		&c.Attendance,
		&c.LeaveRequests,
		&c.MissionRequests,
		&c.WorkPlans,
		&c.ActiveUsers,
	)
	if err != nil {
		return report.Counts{}, fmt.Errorf("failed to count report totals: %w", err)
	}
	return c, nil
}

// Attendance implements report.ReportRepository.
func (r *reportRepositoryImpl) Attendance(ctx context.Context, rng report.Range) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.user_id, ar.office_id, ar.attendance_type, ar.latitude, ar.longitude, ar.status, ar.timestamp,
			   o.id, o.name, o.latitude, o.longitude, o.radius, o.is_active, o.created_at, o.updated_at,
			   u.id, u.email, u.first_name, u.last_name
		FROM attendance_records ar
		JOIN office_locations o ON o.id = ar.office_id
		JOIN users u ON u.id = ar.user_id
		WHERE ` + rangeClause("ar.timestamp") + `
		ORDER BY ar.timestamp DESC
	`

	rows, err := q.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var (
			rec   attendance.Record
			o     office.Office
			owner user.Summary
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.OfficeID, &rec.Type, &rec.Latitude, &rec.Longitude, &rec.Status, &rec.Timestamp,
			&o.ID, &o.Name, &o.Latitude, &o.Longitude, &o.Radius, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
			&owner.ID, &owner.Email, &owner.FirstName, &owner.LastName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		rec.Office = &o
		rec.Owner = &owner
		records = append(records, rec)
	}
	return records, rows.Err()
}

// LeaveRequests implements report.ReportRepository.
func (r *reportRepositoryImpl) LeaveRequests(ctx context.Context, rng report.Range) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE ` + rangeClause("lr.created_at") + `
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave report: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave report row: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// MissionRequests implements report.ReportRepository.
func (r *reportRepositoryImpl) MissionRequests(ctx context.Context, rng report.Range) ([]mission.MissionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT mr.id, mr.user_id, mr.title, mr.description, mr.start_date, mr.end_date, mr.status,
			   mr.approved_by, mr.approved_at, mr.created_at, mr.updated_at,
			   u.id, u.email, u.first_name, u.last_name
		FROM mission_requests mr
		JOIN users u ON u.id = mr.user_id
		WHERE ` + rangeClause("mr.created_at") + `
		ORDER BY mr.created_at DESC
	`

	rows, err := q.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query mission report: %w", err)
	}
	defer rows.Close()

	requests := make([]mission.MissionRequest, 0)
	for rows.Next() {
		m, err := scanMission(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission report row: %w", err)
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}

// WorkPlans implements report.ReportRepository.
func (r *reportRepositoryImpl) WorkPlans(ctx context.Context, rng report.Range) ([]workplan.WorkPlan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workPlanColumns + `
		FROM work_plans wp
		JOIN users u ON u.id = wp.user_id
		WHERE ` + rangeClause("wp.created_at") + `
		ORDER BY wp.created_at DESC
	`

	rows, err := q.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query work plan report: %w", err)
	}
	defer rows.Close()

	plans := make([]workplan.WorkPlan, 0)
	for rows.Next() {
		wp, err := scanWorkPlan(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work plan report row: %w", err)
		}
		plans = append(plans, wp)
	}
	return plans, rows.Err()
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/attendance"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if record.ID == "" {
		id, err := newID()
		if err != nil {
			return attendance.Record{}, fmt.Errorf("failed to generate attendance id: %w", err)
		}
		record.ID = id
	}

	query := `
		INSERT INTO attendance_records (id, user_id, office_id, attendance_type, latitude, longitude, status, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING timestamp
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.OfficeID,
		record.Type,
		record.Latitude,
		record.Longitude,
		record.Status,
		record.Timestamp,
	).Scan(&record.Timestamp)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return record, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	whereClause := "WHERE ar.user_id = $1"
	args := []interface{}{userID}
	argIndex := 2

	if from != nil {
		whereClause += fmt.Sprintf(" AND ar.timestamp >= $%d", argIndex)
		args = append(args, *from)
		argIndex++
	}
	if to != nil {
		whereClause += fmt.Sprintf(" AND ar.timestamp <= $%d", argIndex)
		args = append(args, *to)
	}

	query := fmt.Sprintf(`
		SELECT ar.id, ar.user_id, ar.office_id, ar.attendance_type, ar.latitude, ar.longitude, ar.status, ar.timestamp,
			   o.id, o.name, o.latitude, o.longitude, o.radius, o.is_active, o.created_at, o.updated_at
		FROM attendance_records ar
		JOIN office_locations o ON o.id = ar.office_id
		%s
		ORDER BY ar.timestamp DESC
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if isNotFound(err) {
			return []attendance.Record{}, nil
		}
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var (
			rec attendance.Record
			o   office.Office
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.OfficeID, &rec.Type, &rec.Latitude, &rec.Longitude, &rec.Status, &rec.Timestamp,
			&o.ID, &o.Name, &o.Latitude, &o.Longitude, &o.Radius, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.Office = &o
		records = append(records, rec)
	}
	return records, rows.Err()
}

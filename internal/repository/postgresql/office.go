package postgresql

import (
	"context"
	"fmt"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const officeColumns = `id, name, latitude, longitude, radius, is_active, created_at, updated_at`

type officeRepositoryImpl struct {
	db *database.DB
}

func NewOfficeRepository(db *database.DB) office.OfficeRepository {
	return &officeRepositoryImpl{db: db}
}

func scanOffice(row pgx.Row) (office.Office, error) {
	var o office.Office
	err := row.Scan(&o.ID, &o.Name, &o.Latitude, &o.Longitude, &o.Radius, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

// Create implements office.OfficeRepository.
func (r *officeRepositoryImpl) Create(ctx context.Context, newOffice office.Office) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	if newOffice.ID == "" {
		id, err := newID()
		if err != nil {
			return office.Office{}, fmt.Errorf("failed to generate office id: %w", err)
		}
		newOffice.ID = id
	}

	query := `
		INSERT INTO office_locations (id, name, latitude, longitude, radius, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + officeColumns

	created, err := scanOffice(q.QueryRow(ctx, query,
		newOffice.ID,
		newOffice.Name,
		newOffice.Latitude,
		newOffice.Longitude,
		newOffice.Radius,
		newOffice.IsActive,
	))
	if err != nil {
		return office.Office{}, fmt.Errorf("failed to insert office: %w", err)
	}
	return created, nil
}

// GetByID implements office.OfficeRepository.
func (r *officeRepositoryImpl) GetByID(ctx context.Context, id string) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanOffice(q.QueryRow(ctx, `SELECT `+officeColumns+` FROM office_locations WHERE id = $1`, id))
	if err != nil {
		if isNotFound(err) {
			return office.Office{}, office.ErrOfficeNotFound
		}
		return office.Office{}, fmt.Errorf("failed to get office: %w", err)
	}
	return found, nil
}

// ListActive implements office.OfficeRepository.
func (r *officeRepositoryImpl) ListActive(ctx context.Context) ([]office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + officeColumns + `
		FROM office_locations
		WHERE is_active = TRUE
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	defer rows.Close()

	offices := make([]office.Office, 0)
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan office: %w", err)
		}
		offices = append(offices, o)
	}
	return offices, rows.Err()
}

// Update implements office.OfficeRepository.
func (r *officeRepositoryImpl) Update(ctx context.Context, id string, changes office.Changes) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE office_locations
		SET name = COALESCE($2, name),
			latitude = COALESCE($3, latitude),
			longitude = COALESCE($4, longitude),
			radius = COALESCE($5, radius),
			is_active = COALESCE($6, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + officeColumns

	updated, err := scanOffice(q.QueryRow(ctx, query,
		id,
		changes.Name,
		changes.Latitude,
		changes.Longitude,
		changes.Radius,
		changes.IsActive,
	))
	if err != nil {
		if isNotFound(err) {
			return office.Office{}, office.ErrOfficeNotFound
		}
		return office.Office{}, fmt.Errorf("failed to update office: %w", err)
	}
	return updated, nil
}

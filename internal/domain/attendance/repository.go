package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	// ListByUser returns the user's records newest-first with the office
	// attached. A nil bound is open.
	ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]Record, error)
}

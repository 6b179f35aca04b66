package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	ListPending(ctx context.Context) ([]LeaveRequest, error)

	// UpdatePending, DeletePending and Decide only touch PENDING rows and
	// return ErrRequestAlreadyProcessed when the row exists but was decided.
	UpdatePending(ctx context.Context, id string, userID string, changes Changes) (LeaveRequest, error)
	DeletePending(ctx context.Context, id string, userID string) error
	Decide(ctx context.Context, id string, status Status, approverID string, at time.Time) (LeaveRequest, error)
}

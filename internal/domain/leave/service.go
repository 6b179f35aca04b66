package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, userID string) ([]LeaveResponse, error)
	Update(ctx context.Context, userID string, req UpdateLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, userID string, id string) error
}

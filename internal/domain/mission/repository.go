package mission

import (
	"context"
	"time"
)

type MissionRequestRepository interface {
	Create(ctx context.Context, req MissionRequest) (MissionRequest, error)
	GetByID(ctx context.Context, id string) (MissionRequest, error)
	ListByUser(ctx context.Context, userID string) ([]MissionRequest, error)
	ListPending(ctx context.Context) ([]MissionRequest, error)
	UpdatePending(ctx context.Context, id string, userID string, changes Changes) (MissionRequest, error)
	DeletePending(ctx context.Context, id string, userID string) error
	Decide(ctx context.Context, id string, status Status, approverID string, at time.Time) (MissionRequest, error)
}

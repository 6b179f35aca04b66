package mission

import "context"

type MissionService interface {
	Create(ctx context.Context, userID string, req CreateMissionRequest) (MissionResponse, error)
	ListMine(ctx context.Context, userID string) ([]MissionResponse, error)
	Update(ctx context.Context, userID string, req UpdateMissionRequest) (MissionResponse, error)
	Cancel(ctx context.Context, userID string, id string) error
}

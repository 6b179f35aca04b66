package workplan

import "context"

type WorkPlanService interface {
	Create(ctx context.Context, userID string, req CreateWorkPlanRequest) (WorkPlanResponse, error)
	List(ctx context.Context, userID string, query ListQuery) ([]WorkPlanResponse, error)
	Update(ctx context.Context, userID string, req UpdateWorkPlanRequest) (WorkPlanResponse, error)
	Delete(ctx context.Context, userID string, id string) error

	ListAll(ctx context.Context, query ListQuery) ([]WorkPlanResponse, error)
	AdminUpdate(ctx context.Context, adminID string, req AdminUpdateWorkPlanRequest) (WorkPlanResponse, error)
}

package workplan

import "context"

type WorkPlanRepository interface {
	Create(ctx context.Context, plan WorkPlan) (WorkPlan, error)
	GetByID(ctx context.Context, id string) (WorkPlan, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (WorkPlan, error)
	Update(ctx context.Context, plan WorkPlan) (WorkPlan, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]WorkPlan, error)

	AddComment(ctx context.Context, comment Comment) (Comment, error)
	// CommentsFor returns the comment logs of the given plans keyed by plan id.
	CommentsFor(ctx context.Context, workPlanIDs []string) (map[string][]Comment, error)
}

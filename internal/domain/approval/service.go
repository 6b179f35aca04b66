package approval

import (
	"context"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
)

// Actor is the authenticated caller as seen by the workflow.
type Actor struct {
	ID   string
	Role user.Role
}

type ApprovalService interface {
	// ListPending returns the response DTO slice of the kind's resource.
	ListPending(ctx context.Context, resource string) (any, error)
	Decide(ctx context.Context, actor Actor, resource string, req DecideRequest) (any, error)
}

package office

import "context"

type OfficeRepository interface {
	Create(ctx context.Context, newOffice Office) (Office, error)
	GetByID(ctx context.Context, id string) (Office, error)
	// ListActive returns active offices in creation order.
	ListActive(ctx context.Context) ([]Office, error)
	Update(ctx context.Context, id string, changes Changes) (Office, error)
}

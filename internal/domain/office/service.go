package office

import "context"

type OfficeService interface {
	ListActive(ctx context.Context) ([]OfficeResponse, error)
	Create(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error)
	Update(ctx context.Context, req UpdateOfficeRequest) (OfficeResponse, error)
	// Delete deactivates the office; attendance history keeps referencing it.
	Delete(ctx context.Context, id string) (OfficeResponse, error)
}

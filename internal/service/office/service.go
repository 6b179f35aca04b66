package office

import (
	"context"
	"fmt"
	"strings"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type OfficeServiceImpl struct {
	office.OfficeRepository
}

func NewOfficeService(officeRepository office.OfficeRepository) office.OfficeService {
	return &OfficeServiceImpl{OfficeRepository: officeRepository}
}

func (s *OfficeServiceImpl) ListActive(ctx context.Context) ([]office.OfficeResponse, error) {
	offices, err := s.OfficeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}

	resp := make([]office.OfficeResponse, 0, len(offices))
	for _, o := range offices {
		resp = append(resp, office.NewOfficeResponse(o))
	}
	return resp, nil
}

func (s *OfficeServiceImpl) Create(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	radius := office.DefaultRadius
	if req.Radius != nil {
		radius = *req.Radius
	}

	created, err := s.OfficeRepository.Create(ctx, office.Office{
		Name:      strings.TrimSpace(req.Name),
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Radius:    radius,
		IsActive:  true,
	})
	if err != nil {
		return office.OfficeResponse{}, fmt.Errorf("failed to create office: %w", err)
	}
	return office.NewOfficeResponse(created), nil
}

func (s *OfficeServiceImpl) Update(ctx context.Context, req office.UpdateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	updated, err := s.OfficeRepository.Update(ctx, req.ID, req.Changes())
	if err != nil {
		return office.OfficeResponse{}, fmt.Errorf("failed to update office: %w", err)
	}
	return office.NewOfficeResponse(updated), nil
}

func (s *OfficeServiceImpl) Delete(ctx context.Context, id string) (office.OfficeResponse, error) {
	if validator.IsEmpty(id) {
		return office.OfficeResponse{}, validator.Single("id", "id is required")
	}

	inactive := false
	updated, err := s.OfficeRepository.Update(ctx, id, office.Changes{IsActive: &inactive})
	if err != nil {
		return office.OfficeResponse{}, fmt.Errorf("failed to deactivate office: %w", err)
	}
	return office.NewOfficeResponse(updated), nil
}

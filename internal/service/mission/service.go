package mission

import (
	"context"
	"fmt"
	"strings"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type MissionServiceImpl struct {
	mission.MissionRequestRepository
}

func NewMissionService(missionRequestRepository mission.MissionRequestRepository) mission.MissionService {
	return &MissionServiceImpl{MissionRequestRepository: missionRequestRepository}
}

func (s *MissionServiceImpl) Create(ctx context.Context, userID string, req mission.CreateMissionRequest) (mission.MissionResponse, error) {
	if err := req.Validate(); err != nil {
		return mission.MissionResponse{}, err
	}

	start, end := req.Dates()
	created, err := s.MissionRequestRepository.Create(ctx, mission.MissionRequest{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		return mission.MissionResponse{}, fmt.Errorf("failed to create mission request: %w", err)
	}
	return mission.NewMissionResponse(created), nil
}

func (s *MissionServiceImpl) ListMine(ctx context.Context, userID string) ([]mission.MissionResponse, error) {
	requests, err := s.MissionRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mission requests: %w", err)
	}
	return mission.NewMissionResponses(requests), nil
}

func (s *MissionServiceImpl) Update(ctx context.Context, userID string, req mission.UpdateMissionRequest) (mission.MissionResponse, error) {
	if err := req.Validate(); err != nil {
		return mission.MissionResponse{}, err
	}

	existing, err := s.MissionRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return mission.MissionResponse{}, fmt.Errorf("failed to get mission request: %w", err)
	}
	if existing.UserID != userID {
		return mission.MissionResponse{}, mission.ErrMissionRequestNotFound
	}
	if existing.Status != mission.StatusPending {
		return mission.MissionResponse{}, mission.ErrRequestAlreadyProcessed
	}

	changes := req.Changes()
	start, end := existing.StartDate, existing.EndDate
	if changes.StartDate != nil {
		start = *changes.StartDate
	}
	if changes.EndDate != nil {
		end = *changes.EndDate
	}
	if start.After(end) {
		return mission.MissionResponse{}, validator.Single("endDate", "endDate must not be before startDate")
	}

	updated, err := s.MissionRequestRepository.UpdatePending(ctx, req.ID, userID, changes)
	if err != nil {
		return mission.MissionResponse{}, fmt.Errorf("failed to update mission request: %w", err)
	}
	return mission.NewMissionResponse(updated), nil
}

func (s *MissionServiceImpl) Cancel(ctx context.Context, userID string, id string) error {
	if validator.IsEmpty(id) {
		return validator.Single("id", "id is required")
	}
	if err := s.MissionRequestRepository.DeletePending(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to cancel mission request: %w", err)
	}
	return nil
}

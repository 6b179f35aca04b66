package leave

import (
	"context"
	"fmt"
	"strings"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRequestRepository: leaveRequestRepository}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, userID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, end := req.Dates()
	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    strings.TrimSpace(req.Reason),
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return leave.NewLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) ListMine(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewLeaveResponses(requests), nil
}

// Update edits a pending request owned by userID.
func (s *LeaveServiceImpl) Update(ctx context.Context, userID string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if existing.UserID != userID {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrRequestAlreadyProcessed
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
		return leave.LeaveResponse{}, validator.Single("endDate", "endDate must not be before startDate")
	}

	updated, err := s.LeaveRequestRepository.UpdatePending(ctx, req.ID, userID, changes)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return leave.NewLeaveResponse(updated), nil
}

// Cancel deletes a pending request owned by userID.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, userID string, id string) error {
	if validator.IsEmpty(id) {
		return validator.Single("id", "id is required")
	}
	if err := s.LeaveRequestRepository.DeletePending(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to cancel leave request: %w", err)
	}
	return nil
}

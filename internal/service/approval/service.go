package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/approval"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

// kindHandler is one row of the dispatch table.
type kindHandler struct {
	listPending func(ctx context.Context) (any, error)
	decide      func(ctx context.Context, actor approval.Actor, req approval.DecideRequest) (any, error)
}

type ApprovalServiceImpl struct {
	user.UserRepository
	leave.LeaveRequestRepository
	mission.MissionRequestRepository
	handlers map[approval.Kind]kindHandler
	now      func() time.Time
}

func NewApprovalService(userRepository user.UserRepository, leaveRequestRepository leave.LeaveRequestRepository, missionRequestRepository mission.MissionRequestRepository) approval.ApprovalService {
	s := &ApprovalServiceImpl{
		UserRepository:           userRepository,
		LeaveRequestRepository:   leaveRequestRepository,
		MissionRequestRepository: missionRequestRepository,
		now:                      time.Now,
	}
	s.handlers = map[approval.Kind]kindHandler{
		approval.KindUser:    {listPending: s.pendingUsers, decide: s.decideUser},
		approval.KindLeave:   {listPending: s.pendingLeave, decide: s.decideLeave},
		approval.KindMission: {listPending: s.pendingMissions, decide: s.decideMission},
	}
	return s
}

func (s *ApprovalServiceImpl) handler(resource string) (kindHandler, error) {
	kind, ok := approval.ParseKind(resource)
	if !ok {
		return kindHandler{}, validator.Single("resource", "resource must be one of user, leave, mission")
	}
	return s.handlers[kind], nil
}

// ListPending implements approval.ApprovalService.
func (s *ApprovalServiceImpl) ListPending(ctx context.Context, resource string) (any, error) {
	h, err := s.handler(resource)
	if err != nil {
		return nil, err
	}
	return h.listPending(ctx)
}

// Decide implements approval.ApprovalService.
func (s *ApprovalServiceImpl) Decide(ctx context.Context, actor approval.Actor, resource string, req approval.DecideRequest) (any, error) {
	if actor.Role != user.RoleAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}
	h, err := s.handler(resource)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return h.decide(ctx, actor, req)
}

func (s *ApprovalServiceImpl) pendingUsers(ctx context.Context) (any, error) {
	users, err := s.UserRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}
	return user.NewUserResponses(users), nil
}

func (s *ApprovalServiceImpl) pendingLeave(ctx context.Context) (any, error) {
	requests, err := s.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return leave.NewLeaveResponses(requests), nil
}

func (s *ApprovalServiceImpl) pendingMissions(ctx context.Context) (any, error) {
	requests, err := s.MissionRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mission requests: %w", err)
	}
	return mission.NewMissionResponses(requests), nil
}

// decideUser activates or rejects a pending registration. APPROVED grants
// STAFF unless a role is supplied; STAFF and ADMIN grant that role.
func (s *ApprovalServiceImpl) decideUser(ctx context.Context, _ approval.Actor, req approval.DecideRequest) (any, error) {
	var (
		updated user.User
		err     error
	)

	switch req.Status {
	case approval.DecisionRejected:
		updated, err = s.UserRepository.Reject(ctx, req.ID, s.now())
	case approval.DecisionApproved, approval.DecisionStaff, approval.DecisionAdmin:
		role := user.RoleStaff
		if req.Status == approval.DecisionAdmin {
			role = user.RoleAdmin
		}
		if req.Status == approval.DecisionApproved && req.Role != nil {
			role = user.Role(strings.ToUpper(strings.TrimSpace(*req.Role)))
			if !role.Valid() {
				return nil, validator.Single("role", "role must be one of STAFF, ADMIN")
			}
		}
		updated, err = s.UserRepository.Activate(ctx, req.ID, role)
	default:
		return nil, validator.Single("status", "status must be one of APPROVED, REJECTED, STAFF, ADMIN")
	}
	if err != nil {
		if errors.Is(err, user.ErrRegistrationAlreadyProcessed) {
			return nil, approval.ErrAlreadyProcessed
		}
		return nil, fmt.Errorf("failed to decide registration: %w", err)
	}
	return user.NewUserResponse(updated), nil
}

func (s *ApprovalServiceImpl) decideLeave(ctx context.Context, actor approval.Actor, req approval.DecideRequest) (any, error) {
	status := leave.Status(req.Status)
	if !status.IsDecision() {
		return nil, validator.Single("status", "status must be one of APPROVED, REJECTED")
	}

	decided, err := s.LeaveRequestRepository.Decide(ctx, req.ID, status, actor.ID, s.now())
	if err != nil {
		if errors.Is(err, leave.ErrRequestAlreadyProcessed) {
			return nil, approval.ErrAlreadyProcessed
		}
		return nil, fmt.Errorf("failed to decide leave request: %w", err)
	}
	return leave.NewLeaveResponse(decided), nil
}

func (s *ApprovalServiceImpl) decideMission(ctx context.Context, actor approval.Actor, req approval.DecideRequest) (any, error) {
	status := mission.Status(req.Status)
	if !status.IsDecision() {
		return nil, validator.Single("status", "status must be one of APPROVED, REJECTED")
	}

	decided, err := s.MissionRequestRepository.Decide(ctx, req.ID, status, actor.ID, s.now())
	if err != nil {
		if errors.Is(err, mission.ErrRequestAlreadyProcessed) {
			return nil, approval.ErrAlreadyProcessed
		}
		return nil, fmt.Errorf("failed to decide mission request: %w", err)
	}
	return mission.NewMissionResponse(decided), nil
}

package approval

import (
	"context"
	"testing"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/approval"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) ListPending(context.Context) ([]user.User, error) {
	out := []user.User{}
	for _, u := range f.users {
		if u.IsPending() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Activate(_ context.Context, id string, role user.Role) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if !u.IsPending() {
		return user.User{}, user.ErrRegistrationAlreadyProcessed
	}
	u.IsActive = true
	u.Role = role
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) Reject(_ context.Context, id string, at time.Time) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if !u.IsPending() {
		return user.User{}, user.ErrRegistrationAlreadyProcessed
	}
	u.RejectedAt = &at
	f.users[id] = u
	return u, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	items map[string]leave.LeaveRequest
}

func (f *fakeLeaveRepo) ListPending(context.Context) ([]leave.LeaveRequest, error) {
	out := []leave.LeaveRequest{}
	for _, r := range f.items {
		if r.Status == leave.StatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Decide(_ context.Context, id string, status leave.Status, approverID string, at time.Time) (leave.LeaveRequest, error) {
	r, ok := f.items[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if r.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrRequestAlreadyProcessed
	}
	r.Status = status
	r.ApprovedBy = &approverID
	r.ApprovedAt = &at
	f.items[id] = r
	return r, nil
}

type fakeMissionRepo struct {
	mission.MissionRequestRepository
}

func (fakeMissionRepo) ListPending(context.Context) ([]mission.MissionRequest, error) {
	return []mission.MissionRequest{}, nil
}

var admin = approval.Actor{ID: "admin-1", Role: user.RoleAdmin}

func newFixture() (*fakeUserRepo, *fakeLeaveRepo, approval.ApprovalService) {
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Email: "new@example.com", Role: user.RoleStaff},
	}}
	leaves := &fakeLeaveRepo{items: map[string]leave.LeaveRequest{
		"lr1": {ID: "lr1", UserID: "u2", Status: leave.StatusPending},
	}}
	return users, leaves, NewApprovalService(users, leaves, fakeMissionRepo{})
}

func TestApprovalService_UnknownResource(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.ListPending(context.Background(), "workplan")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestApprovalService_RequiresAdmin(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Decide(context.Background(), approval.Actor{ID: "u9", Role: user.RoleStaff}, "leave", approval.DecideRequest{ID: "lr1", Status: "APPROVED"})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestApprovalService_ApproveUserThenPendingListEmpty(t *testing.T) {
	users, _, svc := newFixture()

	pending, err := svc.ListPending(context.Background(), "user")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	resp, err := svc.Decide(context.Background(), admin, "user", approval.DecideRequest{ID: "u1", Status: "staff"})
	require.NoError(t, err)
	assert.True(t, resp.(user.UserResponse).IsActive)
	assert.Equal(t, user.RoleStaff, users.users["u1"].Role)

	pending, err = svc.ListPending(context.Background(), "user")
	require.NoError(t, err)
	assert.Len(t, pending, 0)

	_, err = svc.Decide(context.Background(), admin, "user", approval.DecideRequest{ID: "u1", Status: "ADMIN"})
	assert.ErrorIs(t, err, approval.ErrAlreadyProcessed)
}

func TestApprovalService_ApprovedWithExplicitRole(t *testing.T) {
	users, _, svc := newFixture()
	role := "admin"

	_, err := svc.Decide(context.Background(), admin, "users", approval.DecideRequest{ID: "u1", Status: "APPROVED", Role: &role})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, users.users["u1"].Role)
}

func TestApprovalService_RejectUserIsNotActivation(t *testing.T) {
	users, _, svc := newFixture()

	_, err := svc.Decide(context.Background(), admin, "user", approval.DecideRequest{ID: "u1", Status: "REJECTED"})
	require.NoError(t, err)
	assert.False(t, users.users["u1"].IsActive)
	assert.NotNil(t, users.users["u1"].RejectedAt)

	pending, err := svc.ListPending(context.Background(), "user")
	require.NoError(t, err)
	assert.Len(t, pending, 0)
}

func TestApprovalService_DecideLeaveTwice(t *testing.T) {
	_, leaves, svc := newFixture()

	resp, err := svc.Decide(context.Background(), admin, "leave", approval.DecideRequest{ID: "lr1", Status: "approved"})
	require.NoError(t, err)
	decided := resp.(leave.LeaveResponse)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, "admin-1", *decided.ApprovedBy)
	assert.NotNil(t, leaves.items["lr1"].ApprovedAt)

	_, err = svc.Decide(context.Background(), admin, "leave", approval.DecideRequest{ID: "lr1", Status: "REJECTED"})
	assert.ErrorIs(t, err, approval.ErrAlreadyProcessed)
	assert.Equal(t, leave.StatusApproved, leaves.items["lr1"].Status)
}

func TestApprovalService_DecideValidation(t *testing.T) {
	_, _, svc := newFixture()

	tests := []struct {
		resource string
		req      approval.DecideRequest
	}{
		{"leave", approval.DecideRequest{Status: "APPROVED"}},
		{"leave", approval.DecideRequest{ID: "lr1"}},
		{"leave", approval.DecideRequest{ID: "lr1", Status: "STAFF"}},
		{"user", approval.DecideRequest{ID: "u1", Status: "MAYBE"}},
	}
	for _, tt := range tests {
		_, err := svc.Decide(context.Background(), admin, tt.resource, tt.req)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "%+v", tt.req)
	}
}

func TestApprovalService_DecideMissingLeave(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Decide(context.Background(), admin, "leave", approval.DecideRequest{ID: "nope", Status: "APPROVED"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

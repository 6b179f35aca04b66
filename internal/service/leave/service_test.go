package leave

import (
	"context"
	"testing"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	items map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{items: map[string]leave.LeaveRequest{}}
}

func (f *fakeLeaveRepo) Create(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.ID = "lr-1"
	r.Status = leave.StatusPending
	f.items[r.ID] = r
	return r, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := f.items[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r, nil
}

func (f *fakeLeaveRepo) ListByUser(_ context.Context, userID string) ([]leave.LeaveRequest, error) {
	out := []leave.LeaveRequest{}
	for _, r := range f.items {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdatePending(_ context.Context, id, userID string, c leave.Changes) (leave.LeaveRequest, error) {
	r := f.items[id]
	if c.StartDate != nil {
		r.StartDate = *c.StartDate
	}
	if c.EndDate != nil {
		r.EndDate = *c.EndDate
	}
	if c.Reason != nil {
		r.Reason = *c.Reason
	}
	f.items[id] = r
	return r, nil
}

func (f *fakeLeaveRepo) DeletePending(_ context.Context, id, userID string) error {
	r, ok := f.items[id]
	if !ok || r.UserID != userID {
		return leave.ErrLeaveRequestNotFound
	}
	if r.Status != leave.StatusPending {
		return leave.ErrRequestAlreadyProcessed
	}
	delete(f.items, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestLeaveService_Create(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	resp, err := svc.Create(context.Background(), "u1", leave.CreateLeaveRequest{StartDate: "2026-03-01", EndDate: "2026-03-03", Reason: " family "})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, "family", resp.Reason)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.items["lr-1"].StartDate)
}

func TestLeaveService_Create_InvertedDates(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	_, err := svc.Create(context.Background(), "u1", leave.CreateLeaveRequest{StartDate: "2026-03-05", EndDate: "2026-03-03", Reason: "x"})
	assert.Error(t, err)
}

func TestLeaveService_Update(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)
	_, err := svc.Create(context.Background(), "u1", leave.CreateLeaveRequest{StartDate: "2026-03-01", EndDate: "2026-03-03", Reason: "family"})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), "u1", leave.UpdateLeaveRequest{ID: "lr-1", Reason: strPtr("medical")})
	require.NoError(t, err)
	assert.Equal(t, "medical", resp.Reason)

	// New start after the stored end.
	_, err = svc.Update(context.Background(), "u1", leave.UpdateLeaveRequest{ID: "lr-1", StartDate: strPtr("2026-03-10")})
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), "someone-else", leave.UpdateLeaveRequest{ID: "lr-1", Reason: strPtr("x")})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	r := repo.items["lr-1"]
	r.Status = leave.StatusApproved
	repo.items["lr-1"] = r

	_, err = svc.Update(context.Background(), "u1", leave.UpdateLeaveRequest{ID: "lr-1", Reason: strPtr("x")})
	assert.ErrorIs(t, err, leave.ErrRequestAlreadyProcessed)
}

func TestLeaveService_Cancel(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)
	_, err := svc.Create(context.Background(), "u1", leave.CreateLeaveRequest{StartDate: "2026-03-01", EndDate: "2026-03-01", Reason: "family"})
	require.NoError(t, err)

	assert.Error(t, svc.Cancel(context.Background(), "u1", ""))
	require.NoError(t, svc.Cancel(context.Background(), "u1", "lr-1"))

	mine, err := svc.ListMine(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

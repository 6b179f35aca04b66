package workplan

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeWorkPlanRepo struct {
	plans    map[string]workplan.WorkPlan
	comments map[string][]workplan.Comment
	seq      int
}

func newFakeRepo() *fakeWorkPlanRepo {
	return &fakeWorkPlanRepo{plans: map[string]workplan.WorkPlan{}, comments: map[string][]workplan.Comment{}}
}

func (f *fakeWorkPlanRepo) Create(_ context.Context, p workplan.WorkPlan) (workplan.WorkPlan, error) {
	f.seq++
	p.ID = fmt.Sprintf("wp-%d", f.seq)
	f.plans[p.ID] = p
	return p, nil
}

func (f *fakeWorkPlanRepo) GetByID(_ context.Context, id string) (workplan.WorkPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return workplan.WorkPlan{}, workplan.ErrWorkPlanNotFound
	}
	return p, nil
}

func (f *fakeWorkPlanRepo) GetByIDForUpdate(ctx context.Context, id string) (workplan.WorkPlan, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeWorkPlanRepo) Update(_ context.Context, p workplan.WorkPlan) (workplan.WorkPlan, error) {
	p.Comments = nil
	f.plans[p.ID] = p
	return p, nil
}

func (f *fakeWorkPlanRepo) Delete(_ context.Context, id string) error {
	delete(f.plans, id)
	return nil
}

func (f *fakeWorkPlanRepo) List(_ context.Context, filter workplan.ListFilter) ([]workplan.WorkPlan, error) {
	out := []workplan.WorkPlan{}
	for _, p := range f.plans {
		if filter.UserID != nil && p.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeWorkPlanRepo) AddComment(_ context.Context, c workplan.Comment) (workplan.Comment, error) {
	c.ID = fmt.Sprintf("c-%d", len(f.comments[c.WorkPlanID])+1)
	c.CreatedAt = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	f.comments[c.WorkPlanID] = append(f.comments[c.WorkPlanID], c)
	return c, nil
}

func (f *fakeWorkPlanRepo) CommentsFor(_ context.Context, ids []string) (map[string][]workplan.Comment, error) {
	out := map[string][]workplan.Comment{}
	for _, id := range ids {
		out[id] = f.comments[id]
	}
	return out, nil
}

func newService() (*fakeWorkPlanRepo, *WorkPlanServiceImpl) {
	repo := newFakeRepo()
	svc := NewWorkPlanService(fakeTx{}, repo).(*WorkPlanServiceImpl)
	return repo, svc
}

func strPtr(s string) *string { return &s }

func createPlan(t *testing.T, svc *WorkPlanServiceImpl, userID string) workplan.WorkPlanResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), userID, workplan.CreateWorkPlanRequest{Title: "Plan", Description: "Desc", DueDate: "2026-06-30"})
	require.NoError(t, err)
	return resp
}

func TestWorkPlanService_Create(t *testing.T) {
	_, svc := newService()

	resp := createPlan(t, svc, "u1")
	assert.Equal(t, workplan.StatusDraft, resp.Status)
	assert.Equal(t, 0, resp.Progress)

	_, err := svc.Create(context.Background(), "u1", workplan.CreateWorkPlanRequest{Title: "Plan"})
	assert.Error(t, err)
}

func TestWorkPlanService_SubmittedAtIsStampedOnce(t *testing.T) {
	repo, svc := newService()
	plan := createPlan(t, svc, "u1")

	first := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	_, err := svc.Update(context.Background(), "u1", workplan.UpdateWorkPlanRequest{ID: plan.ID, Status: strPtr("SUBMITTED")})
	require.NoError(t, err)

	svc.now = func() time.Time { return first.Add(48 * time.Hour) }
	_, err = svc.Update(context.Background(), "u1", workplan.UpdateWorkPlanRequest{ID: plan.ID, Status: strPtr("submitted")})
	require.NoError(t, err)

	require.NotNil(t, repo.plans[plan.ID].SubmittedAt)
	assert.Equal(t, first, *repo.plans[plan.ID].SubmittedAt)
}

func TestWorkPlanService_Update_Rules(t *testing.T) {
	repo, svc := newService()
	plan := createPlan(t, svc, "u1")

	_, err := svc.Update(context.Background(), "u2", workplan.UpdateWorkPlanRequest{ID: plan.ID, Title: strPtr("x")})
	assert.ErrorIs(t, err, workplan.ErrWorkPlanNotFound)

	_, err = svc.Update(context.Background(), "u1", workplan.UpdateWorkPlanRequest{ID: plan.ID, Status: strPtr("COMPLETED")})
	assert.ErrorIs(t, err, workplan.ErrInvalidStatusTransition)

	progress := 101
	_, err = svc.Update(context.Background(), "u1", workplan.UpdateWorkPlanRequest{ID: plan.ID, Progress: &progress})
	assert.Error(t, err)

	p := repo.plans[plan.ID]
	p.Status = workplan.StatusCompleted
	repo.plans[plan.ID] = p

	_, err = svc.Update(context.Background(), "u1", workplan.UpdateWorkPlanRequest{ID: plan.ID, Title: strPtr("x")})
	assert.ErrorIs(t, err, workplan.ErrWorkPlanLocked)
}

func TestWorkPlanService_OwnerCannotReject(t *testing.T) {
	repo, svc := newService()
	plan := createPlan(t, svc, "u1")
	p := repo.plans[plan.ID]
	p.Status = workplan.StatusSubmitted
	repo.plans[plan.ID] = p

	_, err := svc.Update(context.Background(), "u1", workplan.UpdateWorkPlanRequest{ID: plan.ID, Status: strPtr("REJECTED")})
	assert.ErrorIs(t, err, workplan.ErrInvalidStatusTransition)

	resp, err := svc.AdminUpdate(context.Background(), "admin", workplan.AdminUpdateWorkPlanRequest{ID: plan.ID, Status: strPtr("REJECTED")})
	require.NoError(t, err)
	assert.Equal(t, workplan.StatusRejected, resp.Status)
}

func TestWorkPlanService_AdminCommentsAppend(t *testing.T) {
	_, svc := newService()
	plan := createPlan(t, svc, "u1")

	_, err := svc.AdminUpdate(context.Background(), "admin", workplan.AdminUpdateWorkPlanRequest{ID: plan.ID, Comments: strPtr("needs detail")})
	require.NoError(t, err)
	resp, err := svc.AdminUpdate(context.Background(), "admin", workplan.AdminUpdateWorkPlanRequest{ID: plan.ID, Comments: strPtr("looks good")})
	require.NoError(t, err)

	require.Len(t, resp.Comments, 2)
	assert.Equal(t, user.RoleAdmin, resp.Comments[0].AuthorRole)
	assert.Equal(t, "Admin comment (2026-06-01): needs detail\nAdmin comment (2026-06-01): looks good", resp.CommentsText)
}

func TestWorkPlanService_Delete(t *testing.T) {
	repo, svc := newService()
	draft := createPlan(t, svc, "u1")
	completed := createPlan(t, svc, "u1")
	p := repo.plans[completed.ID]
	p.Status = workplan.StatusCompleted
	repo.plans[completed.ID] = p

	assert.ErrorIs(t, svc.Delete(context.Background(), "u1", completed.ID), workplan.ErrWorkPlanLocked)
	assert.ErrorIs(t, svc.Delete(context.Background(), "u2", draft.ID), workplan.ErrWorkPlanNotFound)
	require.NoError(t, svc.Delete(context.Background(), "u1", draft.ID))
	assert.NotContains(t, repo.plans, draft.ID)
}

func TestWorkPlanService_ListScopesToOwner(t *testing.T) {
	_, svc := newService()
	createPlan(t, svc, "u1")
	createPlan(t, svc, "u2")

	mine, err := svc.List(context.Background(), "u1", workplan.ListQuery{UserID: "u2"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "u1", mine[0].UserID)

	all, err := svc.ListAll(context.Background(), workplan.ListQuery{Status: "draft"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListAll(context.Background(), workplan.ListQuery{Status: "archived"})
	assert.Error(t, err)
}

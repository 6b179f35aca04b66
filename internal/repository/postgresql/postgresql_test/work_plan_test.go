package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkPlanRepository_UpdateAndComments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewWorkPlanRepository(db)

	staff := createTestUser(t, db, "staff@example.com", true)
	admin := createTestUser(t, db, "admin@example.com", true)

	created, err := repo.Create(ctx, workplan.WorkPlan{
		UserID:      staff.ID,
		Title:       "Quarterly plan",
		Description: "Visit schools",
		DueDate:     time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, workplan.StatusDraft, created.Status)

	err = postgresql.NewTxManager(db).WithinTx(ctx, func(ctx context.Context) error {
		plan, err := repo.GetByIDForUpdate(ctx, created.ID)
		if err != nil {
			return err
		}
		if err := plan.SetStatus(workplan.StatusSubmitted, false, time.Now()); err != nil {
			return err
		}
		plan.Progress = 40
		_, err = repo.Update(ctx, plan)
		return err
	})
	require.NoError(t, err)

	for _, text := range []string{"first", "second"} {
		_, err := repo.AddComment(ctx, workplan.Comment{
			WorkPlanID: created.ID,
			AuthorID:   admin.ID,
			AuthorRole: user.RoleAdmin,
			Text:       text,
		})
		require.NoError(t, err)
	}

	comments, err := repo.CommentsFor(ctx, []string{created.ID})
	require.NoError(t, err)
	require.Len(t, comments[created.ID], 2)
	assert.Equal(t, "first", comments[created.ID][0].Text)
	assert.Equal(t, "second", comments[created.ID][1].Text)

	status := workplan.StatusSubmitted
	plans, err := repo.List(ctx, workplan.ListFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 40, plans[0].Progress)
	assert.NotNil(t, plans[0].SubmittedAt)
	require.NotNil(t, plans[0].Owner)
	assert.Equal(t, staff.ID, plans[0].Owner.ID)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, workplan.ErrWorkPlanNotFound)
}

package mission

import (
	"context"
	"testing"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMissionRepo struct {
	mission.MissionRequestRepository
	items map[string]mission.MissionRequest
}

func (f *fakeMissionRepo) Create(_ context.Context, m mission.MissionRequest) (mission.MissionRequest, error) {
	m.ID = "mr-1"
	m.Status = mission.StatusPending
	f.items[m.ID] = m
	return m, nil
}

func (f *fakeMissionRepo) GetByID(_ context.Context, id string) (mission.MissionRequest, error) {
	m, ok := f.items[id]
	if !ok {
		return mission.MissionRequest{}, mission.ErrMissionRequestNotFound
	}
	return m, nil
}

func (f *fakeMissionRepo) UpdatePending(_ context.Context, id, _ string, c mission.Changes) (mission.MissionRequest, error) {
	m := f.items[id]
	if c.Title != nil {
		m.Title = *c.Title
	}
	if c.Description != nil {
		m.Description = *c.Description
	}
	f.items[id] = m
	return m, nil
}

func TestMissionService_CreateAndUpdate(t *testing.T) {
	repo := &fakeMissionRepo{items: map[string]mission.MissionRequest{}}
	svc := NewMissionService(repo)

	created, err := svc.Create(context.Background(), "u1", mission.CreateMissionRequest{
		Title:       "Field visit",
		Description: "Schools in Siem Reap",
		StartDate:   "2026-04-10",
		EndDate:     "2026-04-12",
	})
	require.NoError(t, err)
	assert.Equal(t, mission.StatusPending, created.Status)

	title := "Field visit (extended)"
	updated, err := svc.Update(context.Background(), "u1", mission.UpdateMissionRequest{ID: created.ID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	r := repo.items[created.ID]
	r.Status = mission.StatusRejected
	repo.items[created.ID] = r

	_, err = svc.Update(context.Background(), "u1", mission.UpdateMissionRequest{ID: created.ID, Title: &title})
	assert.ErrorIs(t, err, mission.ErrRequestAlreadyProcessed)
}

func TestMissionService_CreateValidation(t *testing.T) {
	svc := NewMissionService(&fakeMissionRepo{items: map[string]mission.MissionRequest{}})

	_, err := svc.Create(context.Background(), "u1", mission.CreateMissionRequest{StartDate: "2026-04-10", EndDate: "2026-04-12"})
	assert.Error(t, err)
}

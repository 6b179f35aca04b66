package http

import (
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

type MissionHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	UpdateRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
}

type MissionHandlerImpl struct {
	missionService mission.MissionService
}

func NewMissionHandler(missionService mission.MissionService) MissionHandler {
	return &MissionHandlerImpl{missionService: missionService}
}

func (m *MissionHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req mission.CreateMissionRequest
	if !decodeJSON(w, r, "CreateMissionRequest", &req) {
		return
	}

	created, err := m.missionService.Create(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("CreateMissionRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Mission request submitted successfully", created)
}

func (m *MissionHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	requests, err := m.missionService.ListMine(r.Context(), c.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (m *MissionHandlerImpl) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req mission.UpdateMissionRequest
	if !decodeJSON(w, r, "UpdateMissionRequest", &req) {
		return
	}

	updated, err := m.missionService.Update(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("UpdateMissionRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Mission request updated successfully", updated)
}

func (m *MissionHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	if err := m.missionService.Cancel(r.Context(), c.ID, r.URL.Query().Get("id")); err != nil {
		slog.Error("CancelMissionRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Mission request cancelled successfully", nil)
}

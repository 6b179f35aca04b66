package http

import (
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

type WorkPlanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Admin tracking
	ListAll(w http.ResponseWriter, r *http.Request)
	Track(w http.ResponseWriter, r *http.Request)
}

type WorkPlanHandlerImpl struct {
	workPlanService workplan.WorkPlanService
}

func NewWorkPlanHandler(workPlanService workplan.WorkPlanService) WorkPlanHandler {
	return &WorkPlanHandlerImpl{workPlanService: workPlanService}
}

func (h *WorkPlanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req workplan.CreateWorkPlanRequest
	if !decodeJSON(w, r, "CreateWorkPlan", &req) {
		return
	}

	plan, err := h.workPlanService.Create(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("CreateWorkPlan service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work plan created successfully", plan)
}

func (h *WorkPlanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	plans, err := h.workPlanService.List(r.Context(), c.ID, workplan.ListQuery{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, plans)
}

func (h *WorkPlanHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req workplan.UpdateWorkPlanRequest
	if !decodeJSON(w, r, "UpdateWorkPlan", &req) {
		return
	}

	plan, err := h.workPlanService.Update(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("UpdateWorkPlan service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work plan updated successfully", plan)
}

func (h *WorkPlanHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	if err := h.workPlanService.Delete(r.Context(), c.ID, r.URL.Query().Get("id")); err != nil {
		slog.Error("DeleteWorkPlan service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work plan deleted successfully", nil)
}

// ListAll implements WorkPlanHandler. Filters: ?userId=&status=
func (h *WorkPlanHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	plans, err := h.workPlanService.ListAll(r.Context(), workplan.ListQuery{
		UserID: r.URL.Query().Get("userId"),
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, plans)
}

// Track implements WorkPlanHandler. Admins move the status and leave comments.
func (h *WorkPlanHandlerImpl) Track(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req workplan.AdminUpdateWorkPlanRequest
	if !decodeJSON(w, r, "TrackWorkPlan", &req) {
		return
	}

	plan, err := h.workPlanService.AdminUpdate(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("TrackWorkPlan service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work plan updated successfully", plan)
}

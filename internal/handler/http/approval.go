package http

import (
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/approval"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

type ApprovalHandler interface {
	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandlerImpl struct {
	approvalService approval.ApprovalService
}

func NewApprovalHandler(approvalService approval.ApprovalService) ApprovalHandler {
	return &ApprovalHandlerImpl{approvalService: approvalService}
}

// ListPending implements ApprovalHandler. ?resource=user|leave|mission
func (h *ApprovalHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.approvalService.ListPending(r.Context(), r.URL.Query().Get("resource"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// Decide implements ApprovalHandler.
func (h *ApprovalHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req approval.DecideRequest
	if !decodeJSON(w, r, "Decide", &req) {
		return
	}

	resource := r.URL.Query().Get("resource")
	decided, err := h.approvalService.Decide(r.Context(), approval.Actor{ID: c.ID, Role: c.Role}, resource, req)
	if err != nil {
		slog.Error("Decide service error", "error", err, "resource", resource, "id", req.ID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Approval decided", "resource", resource, "id", req.ID, "status", req.Status, "admin_id", c.ID)
	response.SuccessWithMessage(w, "Decision recorded successfully", decided)
}

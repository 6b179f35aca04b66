package http

import (
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	UpdateRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req leave.CreateLeaveRequest
	if !decodeJSON(w, r, "CreateLeaveRequest", &req) {
		return
	}

	created, err := l.leaveService.Create(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("CreateLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted successfully", created)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	requests, err := l.leaveService.ListMine(r.Context(), c.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// UpdateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req leave.UpdateLeaveRequest
	if !decodeJSON(w, r, "UpdateLeaveRequest", &req) {
		return
	}

	updated, err := l.leaveService.Update(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("UpdateLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request updated successfully", updated)
}

// CancelRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	if err := l.leaveService.Cancel(r.Context(), c.ID, r.URL.Query().Get("id")); err != nil {
		slog.Error("CancelLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request cancelled successfully", nil)
}

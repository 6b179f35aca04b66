package http

import (
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/attendance"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckInOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckInOut records a check-in or check-out at the caller's position.
func (h *AttendanceHandlerImpl) CheckInOut(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req attendance.CheckInOutRequest
	if !decodeJSON(w, r, "CheckInOut", &req) {
		return
	}

	record, err := h.attendanceService.Record(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("CheckInOut service error", "error", err, "user_id", c.ID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", record)
}

// List returns the caller's records, optionally limited to ?date=YYYY-MM-DD.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	records, err := h.attendanceService.ListForUser(r.Context(), c.ID, attendance.ListQuery{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

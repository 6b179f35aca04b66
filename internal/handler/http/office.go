package http

import (
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

type OfficeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OfficeHandlerImpl struct {
	officeService office.OfficeService
}

func NewOfficeHandler(officeService office.OfficeService) OfficeHandler {
	return &OfficeHandlerImpl{officeService: officeService}
}

// List is public so the client can draw geofences before login.
func (h *OfficeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	offices, err := h.officeService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, offices)
}

func (h *OfficeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req office.CreateOfficeRequest
	if !decodeJSON(w, r, "CreateOffice", &req) {
		return
	}

	created, err := h.officeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateOffice service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Office location created successfully", created)
}

func (h *OfficeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req office.UpdateOfficeRequest
	if !decodeJSON(w, r, "UpdateOffice", &req) {
		return
	}

	updated, err := h.officeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateOffice service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Office location updated successfully", updated)
}

func (h *OfficeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	deactivated, err := h.officeService.Delete(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		slog.Error("DeleteOffice service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Office location deactivated successfully", deactivated)
}

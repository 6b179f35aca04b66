package http

import (
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)

	// Admin
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

func (h *UserHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), c.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

func (h *UserHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req user.UpdateProfileRequest
	if !decodeJSON(w, r, "UpdateProfile", &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}

func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := user.ListUsersQuery{
		Role:     r.URL.Query().Get("role"),
		IsActive: r.URL.Query().Get("isActive"),
	}

	users, err := h.userService.List(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	var req user.AdminUpdateUserRequest
	if !decodeJSON(w, r, "AdminUpdateUser", &req) {
		return
	}

	updated, err := h.userService.AdminUpdate(r.Context(), c.ID, req)
	if err != nil {
		slog.Error("AdminUpdateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User updated successfully", updated)
}

func (h *UserHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}

	deactivated, err := h.userService.Deactivate(r.Context(), c.ID, r.URL.Query().Get("id"))
	if err != nil {
		slog.Error("DeactivateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User deactivated successfully", deactivated)
}

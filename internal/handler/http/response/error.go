package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/approval"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/attendance"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/auth"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// 401
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// 403
	case errors.Is(err, auth.ErrAccountPendingApproval):
		Forbidden(w, "Account is pending admin approval")
	case errors.Is(err, auth.ErrAccountRejected):
		Forbidden(w, "Account registration was rejected")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// 404
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, office.ErrOfficeNotFound):
		NotFound(w, "Office location not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, mission.ErrMissionRequestNotFound):
		NotFound(w, "Mission request not found")
	case errors.Is(err, workplan.ErrWorkPlanNotFound):
		NotFound(w, "Work plan not found")

	// 409
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCannotDeactivateSelf):
		Conflict(w, "Admins cannot deactivate their own account")
	case errors.Is(err, approval.ErrAlreadyProcessed),
		errors.Is(err, user.ErrRegistrationAlreadyProcessed):
		Conflict(w, "Item has already been processed")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, mission.ErrRequestAlreadyProcessed):
		Conflict(w, "Mission request already processed")
	case errors.Is(err, workplan.ErrWorkPlanLocked):
		Conflict(w, "Work plan can no longer be modified in its current status")
	case errors.Is(err, workplan.ErrInvalidStatusTransition):
		Conflict(w, "Invalid work plan status transition")

	// 400
	case errors.Is(err, attendance.ErrNoOfficeConfigured):
		ConfigurationError(w, "No office locations configured")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

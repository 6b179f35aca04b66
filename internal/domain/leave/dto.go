package leave

import (
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`

	startDate time.Time
	endDate   time.Time
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	r.startDate, errs = parseRequiredDate("startDate", r.StartDate, errs)
	r.endDate, errs = parseRequiredDate("endDate", r.EndDate, errs)

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) == 0 && r.startDate.After(r.endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the values parsed by Validate.
func (r *CreateLeaveRequest) Dates() (time.Time, time.Time) {
	return r.startDate, r.endDate
}

type UpdateLeaveRequest struct {
	ID        string  `json:"id"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Reason    *string `json:"reason,omitempty"`

	changes Changes
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	r.changes = Changes{Reason: r.Reason}
	if r.StartDate != nil {
		var t time.Time
		t, errs = parseRequiredDate("startDate", *r.StartDate, errs)
		r.changes.StartDate = &t
	}
	if r.EndDate != nil {
		var t time.Time
		t, errs = parseRequiredDate("endDate", *r.EndDate, errs)
		r.changes.EndDate = &t
	}
	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Changes returns the values parsed by Validate.
func (r *UpdateLeaveRequest) Changes() Changes {
	return r.changes
}

type LeaveResponse struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Reason     string        `json:"reason"`
	Status     Status        `json:"status"`
	ApprovedBy *string       `json:"approved_by"`
	ApprovedAt *string       `json:"approved_at"`
	CreatedAt  string        `json:"created_at"`
	UpdatedAt  string        `json:"updated_at"`
	User       *user.Summary `json:"user,omitempty"`
}

func NewLeaveResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		StartDate:  l.StartDate.Format(time.RFC3339),
		EndDate:    l.EndDate.Format(time.RFC3339),
		Reason:     l.Reason,
		Status:     l.Status,
		ApprovedBy: l.ApprovedBy,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  l.UpdatedAt.Format(time.RFC3339),
		User:       l.Owner,
	}
	if l.ApprovedAt != nil {
		s := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}

func NewLeaveResponses(items []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(items))
	for _, l := range items {
		out = append(out, NewLeaveResponse(l))
	}
	return out
}

func parseRequiredDate(field, value string, errs validator.ValidationErrors) (time.Time, validator.ValidationErrors) {
	if validator.IsEmpty(value) {
		return time.Time{}, append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		})
	}
	t, _, ok := validator.ParseDateOrDateTime(value, time.UTC)
	if !ok {
		return time.Time{}, append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be YYYY-MM-DD or an RFC3339 timestamp",
		})
	}
	return t, errs
}

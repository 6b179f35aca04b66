package mission

import (
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type CreateMissionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`

	startDate time.Time
	endDate   time.Time
}

func (r *CreateMissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	r.startDate, errs = parseDate("startDate", r.StartDate, errs)
	r.endDate, errs = parseDate("endDate", r.EndDate, errs)

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

func (r *CreateMissionRequest) Dates() (time.Time, time.Time) {
	return r.startDate, r.endDate
}

type UpdateMissionRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`

	changes Changes
}

func (r *UpdateMissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}
	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not be empty",
		})
	}

	r.changes = Changes{Title: r.Title, Description: r.Description}
	if r.StartDate != nil {
		var t time.Time
		t, errs = parseDate("startDate", *r.StartDate, errs)
		r.changes.StartDate = &t
	}
	if r.EndDate != nil {
		var t time.Time
		t, errs = parseDate("endDate", *r.EndDate, errs)
		r.changes.EndDate = &t
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateMissionRequest) Changes() Changes {
	return r.changes
}

type MissionResponse struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Status      Status        `json:"status"`
	ApprovedBy  *string       `json:"approved_by"`
	ApprovedAt  *string       `json:"approved_at"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	User        *user.Summary `json:"user,omitempty"`
}

func NewMissionResponse(m MissionRequest) MissionResponse {
	resp := MissionResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		StartDate:   m.StartDate.Format(time.RFC3339),
		EndDate:     m.EndDate.Format(time.RFC3339),
		Status:      m.Status,
		ApprovedBy:  m.ApprovedBy,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
		User:        m.Owner,
	}
	if m.ApprovedAt != nil {
		s := m.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}

func NewMissionResponses(items []MissionRequest) []MissionResponse {
	out := make([]MissionResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMissionResponse(m))
	}
	return out
}

func parseDate(field, value string, errs validator.ValidationErrors) (time.Time, validator.ValidationErrors) {
	if validator.IsEmpty(value) {
		return time.Time{}, append(errs, validator.ValidationError{Field: field, Message: field + " is required"})
	}
	t, _, ok := validator.ParseDateOrDateTime(value, time.UTC)
	if !ok {
		return time.Time{}, append(errs, validator.ValidationError{Field: field, Message: field + " must be YYYY-MM-DD or an RFC3339 timestamp"})
	}
	return t, errs
}

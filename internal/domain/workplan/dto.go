package workplan

import (
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type CreateWorkPlanRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`

	dueDate time.Time
}

func (r *CreateWorkPlanRequest) Validate() error {
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
	r.dueDate, errs = parseDueDate(r.DueDate, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateWorkPlanRequest) ParsedDueDate() time.Time {
	return r.dueDate
}

// UpdateWorkPlanRequest is the owner's partial update.
type UpdateWorkPlanRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Status      *string `json:"status,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	Achievement *string `json:"achievement,omitempty"`
	Output      *string `json:"output,omitempty"`
	Comments    *string `json:"comments,omitempty"`

	dueDate *time.Time
}

func (r *UpdateWorkPlanRequest) Validate() error {
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
	if r.DueDate != nil {
		var t time.Time
		t, errs = parseDueDate(*r.DueDate, errs)
		r.dueDate = &t
	}
	errs = append(errs, validateStatus(r.Status)...)
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateWorkPlanRequest) ParsedDueDate() *time.Time {
	return r.dueDate
}

// AdminUpdateWorkPlanRequest is the admin tracking update: status and a comment.
type AdminUpdateWorkPlanRequest struct {
	ID       string  `json:"id"`
	Status   *string `json:"status,omitempty"`
	Comments *string `json:"comments,omitempty"`
}

func (r *AdminUpdateWorkPlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	errs = append(errs, validateStatus(r.Status)...)
	if r.Status == nil && (r.Comments == nil || validator.IsEmpty(*r.Comments)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status or comments is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListQuery is parsed from ?status= (and ?userId= for admins).
type ListQuery struct {
	UserID string
	Status string
}

func (q ListQuery) Filter() (ListFilter, error) {
	var filter ListFilter
	if q.UserID != "" {
		if !validator.IsValidUUID(q.UserID) {
			return ListFilter{}, validator.Single("userId", "userId must be a valid id")
		}
		id := q.UserID
		filter.UserID = &id
	}
	if q.Status != "" {
		status := Status(strings.ToUpper(q.Status))
		if !validator.IsInSlice(string(status), Statuses) {
			return ListFilter{}, validator.Single("status", "status must be one of "+strings.Join(Statuses, ", "))
		}
		filter.Status = &status
	}
	return filter, nil
}

type CommentResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorRole user.Role `json:"author_role"`
	Text       string    `json:"text"`
	CreatedAt  string    `json:"created_at"`
}

type WorkPlanResponse struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	DueDate      string            `json:"due_date"`
	Status       Status            `json:"status"`
	Progress     int               `json:"progress"`
	Achievement  *string           `json:"achievement"`
	Output       *string           `json:"output"`
	SubmittedAt  *string           `json:"submitted_at"`
	Comments     []CommentResponse `json:"comments"`
	CommentsText string            `json:"comments_text"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
	User         *user.Summary     `json:"user,omitempty"`
}

func NewWorkPlanResponse(w WorkPlan) WorkPlanResponse {
	resp := WorkPlanResponse{
		ID:           w.ID,
		UserID:       w.UserID,
		Title:        w.Title,
		Description:  w.Description,
		DueDate:      w.DueDate.Format(time.RFC3339),
		Status:       w.Status,
		Progress:     w.Progress,
		Achievement:  w.Achievement,
		Output:       w.Output,
		Comments:     make([]CommentResponse, 0, len(w.Comments)),
		CommentsText: CommentsText(w.Comments),
		CreatedAt:    w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    w.UpdatedAt.Format(time.RFC3339),
		User:         w.Owner,
	}
	if w.SubmittedAt != nil {
		s := w.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &s
	}
	for _, c := range w.Comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:         c.ID,
			AuthorID:   c.AuthorID,
			AuthorRole: c.AuthorRole,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

func NewWorkPlanResponses(plans []WorkPlan) []WorkPlanResponse {
	out := make([]WorkPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, NewWorkPlanResponse(p))
	}
	return out
}

func validateStatus(status *string) validator.ValidationErrors {
	if status == nil {
		return nil
	}
	if !validator.IsInSlice(strings.ToUpper(*status), Statuses) {
		return validator.Single("status", "status must be one of "+strings.Join(Statuses, ", "))
	}
	return nil
}

func parseDueDate(value string, errs validator.ValidationErrors) (time.Time, validator.ValidationErrors) {
	if validator.IsEmpty(value) {
		return time.Time{}, append(errs, validator.ValidationError{Field: "dueDate", Message: "dueDate is required"})
	}
	t, _, ok := validator.ParseDateOrDateTime(value, time.UTC)
	if !ok {
		return time.Time{}, append(errs, validator.ValidationError{Field: "dueDate", Message: "dueDate must be YYYY-MM-DD or an RFC3339 timestamp"})
	}
	return t, errs
}

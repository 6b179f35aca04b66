package workplan

import (
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
)

type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusSubmitted  Status = "SUBMITTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusRejected   Status = "REJECTED"
)

var Statuses = []string{
	string(StatusDraft),
	string(StatusSubmitted),
	string(StatusInProgress),
	string(StatusCompleted),
	string(StatusRejected),
}

type edge struct {
	from Status
	to   Status
}

// transitions maps every allowed edge to whether it needs an admin.
var transitions = map[edge]bool{
	{StatusDraft, StatusSubmitted}:      false,
	{StatusSubmitted, StatusInProgress}: false,
	{StatusInProgress, StatusCompleted}: false,
	{StatusSubmitted, StatusRejected}:   true,
	{StatusInProgress, StatusRejected}:  true,
	{StatusRejected, StatusDraft}:       false,
}

// CanTransition reports whether from -> to is allowed for the actor.
// Writing the current status again is always allowed.
func CanTransition(from, to Status, admin bool) bool {
	if from == to {
		return true
	}
	adminOnly, ok := transitions[edge{from, to}]
	if !ok {
		return false
	}
	return admin || !adminOnly
}

type WorkPlan struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DueDate     time.Time
	Status      Status
	Progress    int
	Achievement *string
	Output      *string
	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	Comments []Comment
	Owner    *user.Summary
}

// IsLocked reports whether the owner may no longer edit the plan.
func (w *WorkPlan) IsLocked() bool {
	return w.Status == StatusCompleted
}

// IsDeletable reports whether the owner may delete the plan.
func (w *WorkPlan) IsDeletable() bool {
	return w.Status != StatusSubmitted && w.Status != StatusCompleted
}

// SetStatus moves the plan and stamps SubmittedAt on the first submission.
func (w *WorkPlan) SetStatus(to Status, admin bool, now time.Time) error {
	if !CanTransition(w.Status, to, admin) {
		return ErrInvalidStatusTransition
	}
	w.Status = to
	if to == StatusSubmitted && w.SubmittedAt == nil {
		at := now
		w.SubmittedAt = &at
	}
	return nil
}

type Comment struct {
	ID         string
	WorkPlanID string
	AuthorID   string
	AuthorRole user.Role
	Text       string
	CreatedAt  time.Time
}

func (c Comment) Render() string {
	label := "Comment"
	if c.AuthorRole == user.RoleAdmin {
		label = "Admin comment"
	}
	return label + " (" + c.CreatedAt.Format("2006-01-02") + "): " + c.Text
}

// CommentsText renders the comment log one entry per line, oldest first.
func CommentsText(comments []Comment) string {
	lines := make([]string, 0, len(comments))
	for _, c := range comments {
		lines = append(lines, c.Render())
	}
	return strings.Join(lines, "\n")
}

type ListFilter struct {
	UserID *string
	Status *Status
}

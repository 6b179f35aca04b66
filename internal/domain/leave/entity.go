package leave

import (
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveRequest struct {
	ID         string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	Owner *user.Summary
}

// Changes holds the owner-editable fields. Nil means unchanged.
type Changes struct {
	StartDate *time.Time
	EndDate   *time.Time
	Reason    *string
}

package workplan

import "errors"

var (
	ErrWorkPlanNotFound        = errors.New("work plan not found")
	ErrWorkPlanLocked          = errors.New("work plan can no longer be modified in its current status")
	ErrInvalidStatusTransition = errors.New("invalid work plan status transition")
)

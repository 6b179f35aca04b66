package mission

import "errors"

var (
	ErrMissionRequestNotFound  = errors.New("mission request not found")
	ErrRequestAlreadyProcessed = errors.New("mission request already processed")
)

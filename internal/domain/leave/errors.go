package leave

import "errors"

var (
	ErrLeaveRequestNotFound    = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request already processed")
)

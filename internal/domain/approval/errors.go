package approval

import "errors"

var ErrAlreadyProcessed = errors.New("item has already been processed")

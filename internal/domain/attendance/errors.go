package attendance

import "errors"

var ErrNoOfficeConfigured = errors.New("no office locations configured")

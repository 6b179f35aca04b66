package approval

import (
	"strings"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type DecideRequest struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Role   *string `json:"role,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	return nil
}

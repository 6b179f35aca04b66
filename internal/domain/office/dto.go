package office

import (
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type OfficeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewOfficeResponse(o Office) OfficeResponse {
	return OfficeResponse{
		ID:        o.ID,
		Name:      o.Name,
		Latitude:  o.Latitude,
		Longitude: o.Longitude,
		Radius:    o.Radius,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.Format(time.RFC3339),
	}
}

type CreateOfficeRequest struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    *float64 `json:"radius,omitempty"`
}

func (r *CreateOfficeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	errs = append(errs, validateCoordinates(r.Latitude, r.Longitude, true)...)
	if r.Radius != nil && *r.Radius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius",
			Message: "radius must be greater than 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOfficeRequest struct {
	ID        string   `json:"id"`
	Name      *string  `json:"name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
}

func (r *UpdateOfficeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	errs = append(errs, validateCoordinates(r.Latitude, r.Longitude, false)...)
	if r.Radius != nil && *r.Radius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius",
			Message: "radius must be greater than 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateOfficeRequest) Changes() Changes {
	return Changes{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Radius:    r.Radius,
		IsActive:  r.IsActive,
	}
}

func validateCoordinates(lat, lon *float64, required bool) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if lat == nil {
		if required {
			errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude is required"})
		}
	} else if !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}

	if lon == nil {
		if required {
			errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude is required"})
		}
	} else if !validator.IsValidLongitude(*lon) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	return errs
}

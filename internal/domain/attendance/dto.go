package attendance

import (
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type CheckInOutRequest struct {
	AttendanceType string   `json:"attendanceType"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

func (r *CheckInOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendanceType",
			Message: "attendanceType is required",
		})
	} else if !validator.IsInSlice(r.AttendanceType, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendanceType",
			Message: "attendanceType must be one of CHECK_IN_AM, CHECK_OUT_AM, CHECK_IN_PM, CHECK_OUT_PM",
		})
	}

	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListQuery struct {
	Date string
}

type OfficeSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

type RecordResponse struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	OfficeID           string         `json:"office_id"`
	AttendanceType     Type           `json:"attendance_type"`
	Latitude           float64        `json:"latitude"`
	Longitude          float64        `json:"longitude"`
	Status             Status         `json:"status"`
	Timestamp          string         `json:"timestamp"`
	Office             *OfficeSummary `json:"office,omitempty"`
	User               *user.Summary  `json:"user,omitempty"`
	WithinGeofence     *bool          `json:"within_geofence,omitempty"`
	DistanceFromOffice *float64       `json:"distance_from_office,omitempty"`
}

func NewRecordResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		OfficeID:       r.OfficeID,
		AttendanceType: r.Type,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Status:         r.Status,
		Timestamp:      r.Timestamp.Format(time.RFC3339Nano),
		User:           r.Owner,
	}
	if r.Office != nil {
		resp.Office = &OfficeSummary{
			ID:        r.Office.ID,
			Name:      r.Office.Name,
			Latitude:  r.Office.Latitude,
			Longitude: r.Office.Longitude,
			Radius:    r.Office.Radius,
		}
	}
	return resp
}

package attendance

import (
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
)

type Type string

const (
	TypeCheckInAM  Type = "CHECK_IN_AM"
	TypeCheckOutAM Type = "CHECK_OUT_AM"
	TypeCheckInPM  Type = "CHECK_IN_PM"
	TypeCheckOutPM Type = "CHECK_OUT_PM"
)

var Types = []string{
	string(TypeCheckInAM),
	string(TypeCheckOutAM),
	string(TypeCheckInPM),
	string(TypeCheckOutPM),
}

type Status string

const (
	StatusValidated       Status = "Validated"
	StatusOutsideGeofence Status = "Outside Geofence"
)

// Record is immutable once written.
type Record struct {
	ID        string
	UserID    string
	OfficeID  string
	Type      Type
	Latitude  float64
	Longitude float64
	Status    Status
	Timestamp time.Time

	// Join
	Office *office.Office
	Owner  *user.Summary
}

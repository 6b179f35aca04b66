package report

import (
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type Type string

const (
	TypeAttendance Type = "attendance"
	TypeLeave      Type = "leave"
	TypeMission    Type = "mission"
	TypeWorkPlan   Type = "workplan"
	TypeDaily      Type = "daily"
)

// IsListing reports whether the report returns rows rather than counts.
func (t Type) IsListing() bool {
	switch t {
	case TypeAttendance, TypeLeave, TypeMission, TypeWorkPlan:
		return true
	}
	return false
}

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Range is a closed time window. A nil bound is open.
type Range struct {
	From *time.Time
	To   *time.Time
}

// ========================================
// REQUEST
// ========================================

// SummaryRequest is read from ?reportType=&startDate=&endDate=&format=
type SummaryRequest struct {
	ReportType string
	StartDate  string
	EndDate    string
	Format     string
}

type Query struct {
	Type   Type
	Range  Range
	Format string
}

// Parse validates the request. Unknown report types fall back to daily
// counts. A date-only end bound covers the whole day in loc.
func (r SummaryRequest) Parse(loc *time.Location) (Query, error) {
	var (
		errs validator.ValidationErrors
		q    Query
	)

	q.Type = Type(strings.ToLower(strings.TrimSpace(r.ReportType)))
	if !q.Type.IsListing() {
		q.Type = TypeDaily
	}

	if r.StartDate != "" {
		from, _, ok := validator.ParseDateOrDateTime(r.StartDate, loc)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be YYYY-MM-DD or an RFC3339 timestamp",
			})
		} else {
			q.Range.From = &from
		}
	}

	if r.EndDate != "" {
		to, dateOnly, ok := validator.ParseDateOrDateTime(r.EndDate, loc)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be YYYY-MM-DD or an RFC3339 timestamp",
			})
		} else {
			if dateOnly {
				_, to = validator.DayBounds(to, loc)
			}
			q.Range.To = &to
		}
	}

	if q.Range.From != nil && q.Range.To != nil && q.Range.From.After(*q.Range.To) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	switch strings.ToLower(r.Format) {
	case "", FormatJSON:
		q.Format = FormatJSON
	case FormatXLSX:
		q.Format = FormatXLSX
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be json or xlsx",
		})
	}

	if len(errs) > 0 {
		return Query{}, errs
	}
	return q, nil
}

// ========================================
// RESPONSE
// ========================================

type Counts struct {
	Attendance      int64 `json:"attendance"`
	LeaveRequests   int64 `json:"leave_requests"`
	MissionRequests int64 `json:"mission_requests"`
	WorkPlans       int64 `json:"work_plans"`
	ActiveUsers     int64 `json:"active_users"`
}

type Report struct {
	ReportType  Type    `json:"report_type"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	GeneratedAt string  `json:"generated_at"`

	// Counts is set for daily reports, Items for listings.
	Counts *Counts `json:"counts,omitempty"`
	Items  any     `json:"items,omitempty"`
}

package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/attendance"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/geo"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	office.OfficeRepository
	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, officeRepository office.OfficeRepository, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		OfficeRepository:     officeRepository,
		loc:                  loc,
		now:                  time.Now,
	}
}

// Record implements attendance.AttendanceService. Check-ins outside every
// geofence are stored and flagged, never refused.
func (a *AttendanceServiceImpl) Record(ctx context.Context, userID string, req attendance.CheckInOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	offices, err := a.OfficeRepository.ListActive(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to list active offices: %w", err)
	}

	sites := make([]geo.Site, 0, len(offices))
	for _, o := range offices {
		sites = append(sites, o.Site())
	}

	match, ok := geo.FindClosest(geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}, sites)
	if !ok {
		return attendance.RecordResponse{}, attendance.ErrNoOfficeConfigured
	}
	nearest := offices[match.Index]

	status := attendance.StatusOutsideGeofence
	if match.WithinGeofence {
		status = attendance.StatusValidated
	}

	record, err := a.AttendanceRepository.Create(ctx, attendance.Record{
		UserID:    userID,
		OfficeID:  nearest.ID,
		Type:      attendance.Type(req.AttendanceType),
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Status:    status,
		Timestamp: a.now().UTC(),
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	record.Office = &nearest

	resp := attendance.NewRecordResponse(record)
	within := match.WithinGeofence
	distance := match.Distance
	resp.WithinGeofence = &within
	resp.DistanceFromOffice = &distance
	return resp, nil
}

// ListForUser implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListForUser(ctx context.Context, userID string, query attendance.ListQuery) ([]attendance.RecordResponse, error) {
	var from, to *time.Time
	if query.Date != "" {
		day, _, ok := validator.ParseDateOrDateTime(query.Date, a.loc)
		if !ok {
			return nil, validator.Single("date", "date must be YYYY-MM-DD")
		}
		start, end := validator.DayBounds(day, a.loc)
		from, to = &start, &end
	}

	records, err := a.AttendanceRepository.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, attendance.NewRecordResponse(r))
	}
	return resp, nil
}

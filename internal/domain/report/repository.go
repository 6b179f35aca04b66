package report

import (
	"context"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/attendance"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
)

// ReportRepository defines the interface for report data access. Listings
// come back newest-first with the owner attached.
type ReportRepository interface {
	// Counts filters on record time; ActiveUsers ignores the range.
	Counts(ctx context.Context, r Range) (Counts, error)

	Attendance(ctx context.Context, r Range) ([]attendance.Record, error)
	LeaveRequests(ctx context.Context, r Range) ([]leave.LeaveRequest, error)
	MissionRequests(ctx context.Context, r Range) ([]mission.MissionRequest, error)
	WorkPlans(ctx context.Context, r Range) ([]workplan.WorkPlan, error)
}

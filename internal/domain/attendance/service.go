package attendance

import "context"

type AttendanceService interface {
	Record(ctx context.Context, userID string, req CheckInOutRequest) (RecordResponse, error)
	ListForUser(ctx context.Context, userID string, query ListQuery) ([]RecordResponse, error)
}

package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/attendance"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/leave"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/mission"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/report"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/workplan"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/export"
)

const dateLayout = "2006-01-02"

type ReportServiceImpl struct {
	reportRepo   report.ReportRepository
	workPlanRepo workplan.WorkPlanRepository
	loc          *time.Location
	now          func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, workPlanRepo workplan.WorkPlanRepository, loc *time.Location) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportServiceImpl{
		reportRepo:   reportRepo,
		workPlanRepo: workPlanRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// rows is the raw data behind a report before it is shaped for JSON or XLSX.
type rows struct {
	counts     *report.Counts
	attendance []attendance.Record
	leave      []leave.LeaveRequest
	missions   []mission.MissionRequest
	workPlans  []workplan.WorkPlan
}

func (s *ReportServiceImpl) load(ctx context.Context, q report.Query) (rows, error) {
	var (
		data rows
		err  error
	)

	switch q.Type {
	case report.TypeAttendance:
		data.attendance, err = s.reportRepo.Attendance(ctx, q.Range)
	case report.TypeLeave:
		data.leave, err = s.reportRepo.LeaveRequests(ctx, q.Range)
	case report.TypeMission:
		data.missions, err = s.reportRepo.MissionRequests(ctx, q.Range)
	case report.TypeWorkPlan:
		data.workPlans, err = s.reportRepo.WorkPlans(ctx, q.Range)
		if err == nil {
			err = s.attachComments(ctx, data.workPlans)
		}
	default:
		var counts report.Counts
		counts, err = s.reportRepo.Counts(ctx, q.Range)
		data.counts = &counts
	}
	if err != nil {
		return rows{}, fmt.Errorf("failed to load %s report: %w", q.Type, err)
	}
	return data, nil
}

func (s *ReportServiceImpl) attachComments(ctx context.Context, plans []workplan.WorkPlan) error {
	ids := make([]string, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
	}
	comments, err := s.workPlanRepo.CommentsFor(ctx, ids)
	if err != nil {
		return err
	}
	for i := range plans {
		plans[i].Comments = comments[plans[i].ID]
	}
	return nil
}

// Summarize implements report.ReportService.
func (s *ReportServiceImpl) Summarize(ctx context.Context, req report.SummaryRequest) (report.Report, error) {
	q, err := req.Parse(s.loc)
	if err != nil {
		return report.Report{}, err
	}

	data, err := s.load(ctx, q)
	if err != nil {
		return report.Report{}, err
	}

	result := report.Report{
		ReportType:  q.Type,
		GeneratedAt: s.now().In(s.loc).Format(time.RFC3339),
		Counts:      data.counts,
	}
	if q.Range.From != nil {
		v := q.Range.From.In(s.loc).Format(time.RFC3339)
		result.StartDate = &v
	}
	if q.Range.To != nil {
		v := q.Range.To.In(s.loc).Format(time.RFC3339)
		result.EndDate = &v
	}

	switch q.Type {
	case report.TypeAttendance:
		items := make([]attendance.RecordResponse, 0, len(data.attendance))
		for _, r := range data.attendance {
			items = append(items, attendance.NewRecordResponse(r))
		}
		result.Items = items
	case report.TypeLeave:
		result.Items = leave.NewLeaveResponses(data.leave)
	case report.TypeMission:
		result.Items = mission.NewMissionResponses(data.missions)
	case report.TypeWorkPlan:
		result.Items = workplan.NewWorkPlanResponses(data.workPlans)
	}

	return result, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.SummaryRequest, w io.Writer) (string, error) {
	q, err := req.Parse(s.loc)
	if err != nil {
		return "", err
	}

	data, err := s.load(ctx, q)
	if err != nil {
		return "", err
	}

	if err := export.WriteXLSX(w, s.sheet(q.Type, data)); err != nil {
		return "", fmt.Errorf("failed to write %s report: %w", q.Type, err)
	}

	return fmt.Sprintf("%s-report-%s.xlsx", q.Type, s.now().In(s.loc).Format("20060102-150405")), nil
}

func (s *ReportServiceImpl) sheet(t report.Type, data rows) export.Sheet {
	switch t {
	case report.TypeAttendance:
		sheet := export.Sheet{
			Name:    "Attendance",
			Headers: []string{"Timestamp", "Employee", "Email", "Type", "Status", "Office", "Latitude", "Longitude"},
		}
		for _, r := range data.attendance {
			officeName := ""
			if r.Office != nil {
				officeName = r.Office.Name
			}
			name, email := owner(r.Owner)
			sheet.Rows = append(sheet.Rows, []any{
				s.format(r.Timestamp, time.RFC3339), name, email, string(r.Type), string(r.Status), officeName, r.Latitude, r.Longitude,
			})
		}
		return sheet

	case report.TypeLeave:
		sheet := export.Sheet{
			Name:    "Leave Requests",
			Headers: []string{"Employee", "Email", "Start Date", "End Date", "Reason", "Status", "Approved At", "Created At"},
		}
		for _, r := range data.leave {
			name, email := owner(r.Owner)
			sheet.Rows = append(sheet.Rows, []any{
				name, email, s.format(r.StartDate, dateLayout), s.format(r.EndDate, dateLayout), r.Reason, string(r.Status),
				s.formatPtr(r.ApprovedAt), s.format(r.CreatedAt, time.RFC3339),
			})
		}
		return sheet

	case report.TypeMission:
		sheet := export.Sheet{
			Name:    "Mission Requests",
			Headers: []string{"Employee", "Email", "Title", "Description", "Start Date", "End Date", "Status", "Approved At"},
		}
		for _, r := range data.missions {
			name, email := owner(r.Owner)
			sheet.Rows = append(sheet.Rows, []any{
				name, email, r.Title, r.Description, s.format(r.StartDate, dateLayout), s.format(r.EndDate, dateLayout), string(r.Status),
				s.formatPtr(r.ApprovedAt),
			})
		}
		return sheet

	case report.TypeWorkPlan:
		sheet := export.Sheet{
			Name:    "Work Plans",
			Headers: []string{"Employee", "Email", "Title", "Due Date", "Status", "Progress", "Submitted At", "Comments"},
		}
		for _, p := range data.workPlans {
			name, email := owner(p.Owner)
			sheet.Rows = append(sheet.Rows, []any{
				name, email, p.Title, s.format(p.DueDate, dateLayout), string(p.Status), p.Progress,
				s.formatPtr(p.SubmittedAt), workplan.CommentsText(p.Comments),
			})
		}
		return sheet
	}

	sheet := export.Sheet{Name: "Summary", Headers: []string{"Metric", "Count"}}
	if c := data.counts; c != nil {
		sheet.Rows = [][]any{
			{"Attendance", c.Attendance},
			{"Leave Requests", c.LeaveRequests},
			{"Mission Requests", c.MissionRequests},
			{"Work Plans", c.WorkPlans},
			{"Active Users", c.ActiveUsers},
		}
	}
	return sheet
}

func (s *ReportServiceImpl) format(t time.Time, layout string) string {
	return t.In(s.loc).Format(layout)
}

func (s *ReportServiceImpl) formatPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return s.format(*t, time.RFC3339)
}

func owner(u *user.Summary) (string, string) {
	if u == nil {
		return "", ""
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName), u.Email
}

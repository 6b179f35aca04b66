package report

import (
	"context"
	"io"
)

// ReportService defines the interface for report generation
type ReportService interface {
	Summarize(ctx context.Context, req SummaryRequest) (Report, error)

	// Export writes the report as an XLSX workbook and returns a file name.
	Export(ctx context.Context, req SummaryRequest, w io.Writer) (string, error)
}

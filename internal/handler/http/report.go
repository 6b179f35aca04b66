package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/report"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Get implements ReportHandler. ?reportType=&startDate=&endDate=&format=
func (h *ReportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.SummaryRequest{
		ReportType: q.Get("reportType"),
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
		Format:     q.Get("format"),
	}

	if strings.EqualFold(req.Format, report.FormatXLSX) {
		h.export(w, r, req)
		return
	}

	result, err := h.reportService.Summarize(r.Context(), req)
	if err != nil {
		slog.Error("Report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// export buffers the workbook so a failure can still produce a JSON error.
func (h *ReportHandlerImpl) export(w http.ResponseWriter, r *http.Request, req report.SummaryRequest) {
	var buf bytes.Buffer
	fileName, err := h.reportService.Export(r.Context(), req, &buf)
	if err != nil {
		slog.Error("Report export error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Report export write error", "error", err)
	}
}

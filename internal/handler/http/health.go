package http

import (
	"net/http"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

func HealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Raw(w, http.StatusOK, HealthResponse{
			Status:    "OK",
			Message:   "Attendance tracking API is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   version,
		})
	}
}

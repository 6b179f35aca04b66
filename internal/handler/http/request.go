package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/middleware"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// caller resolves the authenticated user or writes a 401.
func caller(w http.ResponseWriter, r *http.Request) (middleware.Caller, bool) {
	c, err := middleware.CallerFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return middleware.Caller{}, false
	}
	return c, true
}

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/auth"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
)

// AccountLookup loads the stored account behind a token.
type AccountLookup interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}

// AdminOnly lets through callers whose token carries the ADMIN role and whose
// stored account is still an active admin. A demoted or deactivated admin is
// refused even while the access token has not expired.
func AdminOnly(accounts AccountLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := CallerFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if !caller.IsAdmin() {
				response.HandleError(w, user.ErrAdminPrivilegeRequired)
				return
			}

			account, err := accounts.GetByID(r.Context(), caller.ID)
			switch {
			case errors.Is(err, user.ErrUserNotFound):
				response.HandleError(w, auth.ErrInvalidToken)
				return
			case err != nil:
				slog.Error("AdminOnly account lookup failed", "user_id", caller.ID, "error", err)
				response.HandleError(w, err)
				return
			case !account.IsActive:
				response.HandleError(w, user.ErrAccountInactive)
				return
			case !account.IsAdmin():
				response.HandleError(w, user.ErrAdminPrivilegeRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/config"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/middleware"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http/response"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Mission    MissionHandler
	WorkPlan   WorkPlanHandler
	Office     OfficeHandler
	Approval   ApprovalHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, accounts middleware.AccountLookup, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sa-tracking"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", HealthHandler(cfg.App.Version))

		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/refresh", h.Auth.RefreshToken)

		r.Get("/office/location", h.Office.List)

		// Requires authentication. Only the Authorization header is read so
		// the token that was verified is the one checked for revocation.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)

			r.Get("/profile", h.User.GetProfile)
			r.Put("/profile", h.User.UpdateProfile)

			r.Post("/attendance/check-in-out", h.Attendance.CheckInOut)
			r.Get("/attendance/check-in-out", h.Attendance.List)

			r.Post("/leave/request", h.Leave.CreateRequest)
			r.Get("/leave/request", h.Leave.GetMyRequests)
			r.Put("/leave/request", h.Leave.UpdateRequest)
			r.Delete("/leave/request", h.Leave.CancelRequest)

			r.Post("/mission/request", h.Mission.CreateRequest)
			r.Get("/mission/request", h.Mission.GetMyRequests)
			r.Put("/mission/request", h.Mission.UpdateRequest)
			r.Delete("/mission/request", h.Mission.CancelRequest)

			r.Post("/workplan/manage", h.WorkPlan.Create)
			r.Get("/workplan/manage", h.WorkPlan.List)
			r.Put("/workplan/manage", h.WorkPlan.Update)
			r.Delete("/workplan/manage", h.WorkPlan.Delete)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly(accounts))

				r.Post("/office/location", h.Office.Create)
				r.Put("/office/location", h.Office.Update)
				r.Delete("/office/location", h.Office.Delete)

				r.Get("/admin/approvals", h.Approval.ListPending)
				r.Put("/admin/approvals", h.Approval.Decide)

				r.Get("/admin/reports", h.Report.Get)

				r.Get("/admin/users", h.User.List)
				r.Put("/admin/users", h.User.Update)
				r.Delete("/admin/users", h.User.Deactivate)

				r.Get("/admin/workplan-tracking", h.WorkPlan.ListAll)
				r.Put("/admin/workplan-tracking", h.WorkPlan.Track)
			})
		})
	})
	return r
}

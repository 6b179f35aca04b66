package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/config"
	appHTTP "github.com/chhinhsovath/next-native-sa-tracking/internal/handler/http"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/cron"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/database"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/jwt"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/repository/postgresql"
	approvalService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/approval"
	attendanceService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/attendance"
	authService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/auth"
	leaveService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/leave"
	missionService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/mission"
	officeService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/office"
	reportService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/report"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/service/seed"
	userService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/user"
	workPlanService "github.com/chhinhsovath/next-native-sa-tracking/internal/service/workplan"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}
	}

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	officeRepo := postgresql.NewOfficeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	missionRequestRepo := postgresql.NewMissionRequestRepository(db)
	workPlanRepo := postgresql.NewWorkPlanRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	if cfg.Seed.OnStart {
		if err := seed.NewSeeder(txManager, officeRepo, userRepo, cfg.Seed).Run(ctx); err != nil {
			return fmt.Errorf("error seeding database: %w", err)
		}
	}

	loc := cfg.Location()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService.NewAuthService(txManager, userRepo, JWTRepository, JWTService)),
		User:       appHTTP.NewUserHandler(userService.NewUserService(userRepo)),
		Attendance: appHTTP.NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, officeRepo, loc)),
		Leave:      appHTTP.NewLeaveHandler(leaveService.NewLeaveService(leaveRequestRepo)),
		Mission:    appHTTP.NewMissionHandler(missionService.NewMissionService(missionRequestRepo)),
		WorkPlan:   appHTTP.NewWorkPlanHandler(workPlanService.NewWorkPlanService(txManager, workPlanRepo)),
		Office:     appHTTP.NewOfficeHandler(officeService.NewOfficeService(officeRepo)),
		Approval:   appHTTP.NewApprovalHandler(approvalService.NewApprovalService(userRepo, leaveRequestRepo, missionRequestRepo)),
		Report:     appHTTP.NewReportHandler(reportService.NewReportService(reportRepo, workPlanRepo, loc)),
	}
	router := appHTTP.NewRouter(cfg, JWTService, userRepo, handlers)

	scheduler := cron.NewSchedulerWithContext(ctx)
	cron.NewTokenJobs(JWTService, JWTRepository).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", server.Addr, "env", cfg.App.Env, "version", cfg.App.Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

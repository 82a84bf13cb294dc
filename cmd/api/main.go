package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/config"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/hr-portal-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-portal-go/internal/repository/mongodb"
	"github.com/cmlabs-hris/hr-portal-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hr-portal-go/internal/service/attendance"
	authService "github.com/cmlabs-hris/hr-portal-go/internal/service/auth"
	chatbotService "github.com/cmlabs-hris/hr-portal-go/internal/service/chatbot"
	dashboardService "github.com/cmlabs-hris/hr-portal-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hr-portal-go/internal/service/employee"
	grievanceService "github.com/cmlabs-hris/hr-portal-go/internal/service/grievance"
	hiringService "github.com/cmlabs-hris/hr-portal-go/internal/service/hiring"
	leaveService "github.com/cmlabs-hris/hr-portal-go/internal/service/leave"
)

const chatLogPurgeInterval = 24 * time.Hour

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

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	var attendanceRepo attendance.AttendanceRepository
	switch cfg.Attendance.Store {
	case config.StoreMongoDB:
		mongoDB, err := database.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoDB.Close(closeCtx); err != nil {
				slog.Error("Failed to disconnect mongodb", "error", err)
			}
		}()
		if err := mongodb.EnsureAttendanceIndexes(ctx, mongoDB); err != nil {
			return err
		}
		attendanceRepo = mongodb.NewAttendanceRepository(mongoDB)
	default:
		attendanceRepo = postgresql.NewAttendanceRepository(db)
	}
	slog.Info("Attendance ledger store selected", "store", cfg.Attendance.Store, "timezone", cfg.Attendance.Timezone)

	accessExpiration, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("invalid access token expiration: %w", err)
	}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, accessExpiration)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	grievanceRepo := postgresql.NewGrievanceRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)
	jobPostingRepo := postgresql.NewJobPostingRepository(db)
	chatLogRepo := postgresql.NewChatLogRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.Location())
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, adminRepo, JWTService)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	grievanceSvc := grievanceService.NewGrievanceService(grievanceRepo)
	hiringSvc := hiringService.NewHiringService(feedbackRepo, jobPostingRepo)
	chatbotSvc := chatbotService.NewChatbotService(chatLogRepo, cfg.Chat.LogRetention)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, attendanceRepo, cfg.Location())

	if cfg.Admin.BootstrapID != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.Admin.BootstrapID, cfg.Admin.BootstrapPassword); err != nil {
			return fmt.Errorf("failed to bootstrap admin: %w", err)
		}
	}

	scheduler := cron.NewScheduler()
	cron.RegisterChatLogPurge(scheduler, chatbotSvc, chatLogPurgeInterval)
	scheduler.Start()
	defer scheduler.Stop()

	hub := sse.NewHub()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Env:            cfg.App.Env,
		LogLevel:       logLevel,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, hub),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc, hub),
		Grievance:  appHTTP.NewGrievanceHandler(grievanceSvc, hub),
		Hiring:     appHTTP.NewHiringHandler(hiringSvc),
		Chatbot:    appHTTP.NewChatbotHandler(chatbotSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Events:     appHTTP.NewEventsHandler(hub, JWTService),
	})

	// Request contexts derive from baseCtx so open event streams end on shutdown.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancelBase)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

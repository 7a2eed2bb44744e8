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

	"github.com/cmlabs-hris/weekly-payroll-go/internal/config"
	appHTTP "github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/weekly-payroll-go/internal/service/attendance"
	payrollService "github.com/cmlabs-hris/weekly-payroll-go/internal/service/payroll"
	workerService "github.com/cmlabs-hris/weekly-payroll-go/internal/service/worker"
	"github.com/go-chi/httplog/v3"
	"github.com/shopspring/decimal"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "weekly-payroll"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	// Money goes over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.App.AutoMigrate {
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			return fmt.Errorf("error applying schema: %w", err)
		}
		logger.Info("database schema applied")
	}

	transactor := postgresql.NewTransactor(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	summaryRepo := postgresql.NewWeeklySummaryRepository(db)
	adjustmentRepo := postgresql.NewSalaryAdjustmentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	workerSvc := workerService.NewWorkerService(workerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(transactor, attendanceRepo)
	summarySvc := payrollService.NewWeeklySummaryService(
		transactor,
		summaryRepo,
		adjustmentRepo,
		workerRepo,
		attendanceRepo,
		cfg.Payroll.FanoutLimit,
	)
	adjustmentSvc := payrollService.NewSalaryAdjustmentService(adjustmentRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
		},
		JWTService,
		appHTTP.Handlers{
			Worker:           appHTTP.NewWorkerHandler(workerSvc),
			Attendance:       appHTTP.NewAttendanceHandler(attendanceSvc),
			WeeklySummary:    appHTTP.NewWeeklySummaryHandler(summarySvc),
			SalaryAdjustment: appHTTP.NewSalaryAdjustmentHandler(adjustmentSvc),
		},
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package http

import (
	"log/slog"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

type Handlers struct {
	Worker           WorkerHandler
	Attendance       AttendanceHandler
	WeeklySummary    WeeklySummaryHandler
	SalaryAdjustment SalaryAdjustmentHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		// Every payroll route requires an admin access token
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)
		r.Use(middleware.AdminOnly)

		r.Route("/workers", func(r chi.Router) {
			r.Post("/", h.Worker.Create)
			r.Get("/", h.Worker.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Worker.Get)
				r.Put("/", h.Worker.Update)
				r.Delete("/", h.Worker.Delete)
				r.Delete("/hard", h.Worker.HardDelete)
			})
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Post("/", h.Attendance.Create)
			r.Get("/", h.Attendance.List)
			r.Post("/bulk", h.Attendance.BulkUpsert)
			r.Get("/date/{date}", h.Attendance.ListByDate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Attendance.Get)
				r.Put("/", h.Attendance.Update)
				r.Delete("/", h.Attendance.Delete)
			})
		})

		r.Route("/weekly-summaries", func(r chi.Router) {
			r.Post("/", h.WeeklySummary.CreateWeeklySummaries)
			r.Get("/", h.WeeklySummary.List)
			r.Post("/report", h.WeeklySummary.GenerateReport)
			r.Get("/report", h.WeeklySummary.GetReport)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.WeeklySummary.Get)
				r.Patch("/", h.WeeklySummary.Update)
				r.Delete("/", h.WeeklySummary.Delete)
			})
		})

		r.Route("/salary-adjustments", func(r chi.Router) {
			r.Post("/", h.SalaryAdjustment.Create)
			r.Get("/", h.SalaryAdjustment.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.SalaryAdjustment.Get)
				r.Put("/", h.SalaryAdjustment.Update)
				r.Delete("/", h.SalaryAdjustment.Delete)
			})
		})
	})
	return r
}

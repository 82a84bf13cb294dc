package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Grievance  GrievanceHandler
	Hiring     HiringHandler
	Chatbot    ChatbotHandler
	Dashboard  DashboardHandler
	Events     EventsHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", h.Auth.Signup)
		r.Post("/login", h.Auth.Login)
		r.Get("/jobs", h.Hiring.ListJobPostings)
		r.Post("/chatbot", h.Chatbot.Ask)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/logout", h.Auth.Logout)

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequireEmployee)
				r.Post("/checkin", h.Attendance.CheckIn)
				r.Post("/checkout", h.Attendance.CheckOut)
				r.Post("/today", h.Attendance.Today)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/apply", h.Leave.Apply)
				r.Get("/history/{empId}", h.Leave.History)
				r.Get("/balance/{empId}", h.Leave.Balance)
			})

			r.Post("/grievance", h.Grievance.Submit)
			r.Post("/hiring/feedback", h.Hiring.SubmitFeedback)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Auth.AdminLogin)
			// Authenticated by the short-lived SSE token in the query string.
			r.Get("/events", h.Events.Stream)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Use(middleware.AdminOnly)

				r.Post("/events/token", h.Events.Token)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/{id}", h.Employee.GetEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})

				r.Get("/leaves", h.Leave.List)
				r.Put("/leaves/{id}", h.Leave.Review)

				r.Get("/attendance", h.Attendance.List)
				r.Get("/attendance/export", h.Attendance.Export)

				r.Get("/grievances", h.Grievance.List)
				r.Put("/grievances/{id}", h.Grievance.Update)

				r.Get("/analytics", h.Dashboard.Analytics)

				r.Get("/hiring", h.Hiring.ListFeedback)
				r.Post("/jobs", h.Hiring.CreateJobPosting)
			})
		})
	})
	return r
}

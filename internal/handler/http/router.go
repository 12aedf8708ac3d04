package http

import (
	"log/slog"
	"os"

	"github.com/edupoint/edupoint-backend-go/internal/config"
	"github.com/edupoint/edupoint-backend-go/internal/handler/http/middleware"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Student    StudentHandler
	Teacher    TeacherHandler
	Class      ClassHandler
	Attendance AttendanceHandler
	Billing    BillingHandler
	Payroll    PayrollHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "edupoint-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/students", func(r chi.Router) {
				r.Get("/", h.Student.List)
				r.Post("/", h.Student.Create)
				r.Get("/{id}", h.Student.Get)
				r.Put("/{id}", h.Student.Update)
				r.Get("/{id}/statement", h.Billing.StudentStatement)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Student.Delete)
				})
			})

			r.Route("/teachers", func(r chi.Router) {
				r.Get("/", h.Teacher.List)
				r.Post("/", h.Teacher.Create)
				r.Get("/{id}", h.Teacher.Get)
				r.Put("/{id}", h.Teacher.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Teacher.Delete)
				})
			})

			r.Route("/classes", func(r chi.Router) {
				r.Get("/", h.Class.List)
				r.Post("/", h.Class.Create)
				r.Get("/{id}", h.Class.Get)
				r.Put("/{id}", h.Class.Update)
				r.Post("/{id}/students/{studentID}", h.Class.Enroll)
				r.Delete("/{id}/students/{studentID}", h.Class.Unenroll)
				r.Post("/{id}/teachers/{teacherID}", h.Class.AssignTeacher)
				r.Delete("/{id}/teachers/{teacherID}", h.Class.UnassignTeacher)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Class.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Set)
				r.Get("/classes/{classID}", h.Attendance.ListForClassDate)

				// Bulk deletes are destructive
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/classes/{classID}", h.Attendance.DeleteForDate)
					r.Delete("/month", h.Attendance.DeleteForMonth)
				})
			})

			r.Route("/billing", func(r chi.Router) {
				r.Get("/provisional", h.Billing.ProvisionalTuition)

				r.Route("/invoices", func(r chi.Router) {
					r.Get("/", h.Billing.ListInvoices)
					r.Get("/{id}", h.Billing.GetInvoice)
					r.Patch("/{id}/status", h.Billing.UpdateInvoiceStatus)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/generate", h.Billing.GenerateInvoices)
						r.Post("/{id}/cancel", h.Billing.CancelInvoice)
					})
				})

				r.Route("/transactions", func(r chi.Router) {
					r.Get("/", h.Billing.ListTransactions)
					r.Post("/", h.Billing.RecordTransaction)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/{id}", h.Billing.UpdateTransaction)
						r.Delete("/{id}", h.Billing.DeleteTransaction)
						r.Delete("/", h.Billing.ClearAllTransactions)
					})
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", h.Payroll.ListForMonth)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/generate", h.Payroll.Generate)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/revenue", h.Report.Revenue)
				r.Get("/outstanding", h.Report.OutstandingBalances)
				r.Get("/dashboard", h.Report.Dashboard)
			})
		})
	})

	return r
}

package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type Handlers struct {
	State      StateHandler
	Worker     WorkerHandler
	Project    ProjectHandler
	Vendor     VendorHandler
	Holiday    HolidayHandler
	Attendance AttendanceHandler
	Purchase   PurchaseHandler
	Master     MasterHandler
	Schedule   ScheduleHandler
	Report     ReportHandler
}

func NewRouter(logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		r.Get("/state", h.State.GetState)
		r.Post("/refresh", h.State.Refresh)
		r.Get("/ledger", h.State.Ledger)

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", h.Worker.List)
			r.Post("/", h.Worker.Create)
			r.Put("/{id}", h.Worker.Update)
			r.Delete("/{id}", h.Worker.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Project.List)
			r.Post("/", h.Project.Create)
			r.Put("/{id}", h.Project.Update)
			r.Delete("/{id}", h.Project.Delete)
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", h.Vendor.List)
			r.Post("/", h.Vendor.Create)
			r.Put("/{id}", h.Vendor.Update)
			r.Delete("/{id}", h.Vendor.Delete)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Holiday.List)
			r.Post("/", h.Holiday.Create)
			r.Put("/{id}", h.Holiday.Update)
			r.Delete("/{id}", h.Holiday.Delete)
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Post("/", h.Attendance.Create)
			r.Put("/{id}", h.Attendance.Update)
			r.Delete("/{id}", h.Attendance.Delete)
		})

		r.Route("/purchases", func(r chi.Router) {
			r.Get("/", h.Purchase.List)
			r.Post("/", h.Purchase.Create)
			r.Get("/{id}", h.Purchase.Get)
			r.Put("/{id}", h.Purchase.Update)
			r.Delete("/{id}", h.Purchase.Delete)
			r.Post("/{id}/pay", h.Purchase.Pay)
		})

		r.Route("/pay-grades", func(r chi.Router) {
			r.Get("/", h.Master.ListPayGrades)
			r.Post("/", h.Master.CreatePayGrade)
			r.Put("/{id}", h.Master.UpdatePayGrade)
			r.Delete("/{id}", h.Master.DeletePayGrade)
		})

		r.Route("/positions", func(r chi.Router) {
			r.Get("/", h.Master.ListPositions)
			r.Post("/", h.Master.CreatePosition)
			r.Put("/{id}", h.Master.UpdatePosition)
			r.Delete("/{id}", h.Master.DeletePosition)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", h.Schedule.List)
			r.Post("/", h.Schedule.Create)
			r.Put("/{id}", h.Schedule.Update)
			r.Delete("/{id}", h.Schedule.Delete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", h.Report.Dashboard)
			r.Get("/projects/{id}/costs", h.Report.ProjectCosts)
			r.Get("/payroll", h.Report.Payroll)
			r.Get("/debts", h.Report.Debts)
		})
	})

	return r
}

package main

import (
	"net/http"

	"staffdesk/config"
	"staffdesk/database"
	"staffdesk/handlers"
	"staffdesk/middleware"
	"staffdesk/models"
	"staffdesk/service"
	"staffdesk/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Stores
	employeeStore := store.NewGormEmployeeStore(db)
	attendanceStore := store.NewGormAttendanceStore(db)
	taskStore := store.NewGormTaskStore(db)
	leaveStore := store.NewGormLeaveStore(db)

	// Services
	attendanceService := service.NewAttendanceService(attendanceStore, employeeStore)
	statsService := service.NewStatsService(attendanceStore, employeeStore, taskStore, leaveStore)

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, employeeStore)
	employeeHandler := handlers.NewEmployeeHandler(employeeStore)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, statsService)
	taskHandler := handlers.NewTaskHandler(taskStore)
	leaveHandler := handlers.NewLeaveHandler(leaveStore)
	analyticsHandler := handlers.NewAnalyticsHandler(statsService)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	// Public routes
	router.Post("/api/auth/login", authHandler.Login)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(employeeStore))

		r.Get("/api/auth/me", authHandler.Me)

		// Attendance: self-scoped operations
		r.Post("/api/attendance/login", attendanceHandler.CheckIn)
		r.Post("/api/attendance/logout", attendanceHandler.CheckOut)
		r.Get("/api/attendance/today", attendanceHandler.Today)
		r.Get("/api/attendance/working-days", attendanceHandler.WorkingDays)

		// Listing is self-or-admin; the handler enforces the scoping.
		r.Get("/api/attendance", attendanceHandler.List)

		// Tasks and leave requests scope themselves to the caller
		r.Get("/api/tasks", taskHandler.List)
		r.Patch("/api/tasks/{id}", taskHandler.UpdateStatus)
		r.Get("/api/leave-requests", leaveHandler.List)
		r.Post("/api/leave-requests", leaveHandler.Create)

		// Admin only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))

			r.Get("/api/employees", employeeHandler.List)
			r.Post("/api/employees", employeeHandler.Create)
			r.Put("/api/employees/{id}", employeeHandler.Update)
			r.Delete("/api/employees/{id}", employeeHandler.Delete)

			r.Get("/api/attendance/stats", attendanceHandler.Stats)
			r.Get("/api/attendance/export/csv", attendanceHandler.ExportCSV)
			r.Get("/api/attendance/export/excel", attendanceHandler.ExportExcel)

			r.Post("/api/tasks", taskHandler.Create)
			r.Patch("/api/leave-requests/{id}", leaveHandler.UpdateStatus)

			r.Get("/api/analytics", analyticsHandler.Get)
		})
	})

	logrus.Infof("Server starting on port %s", cfg.ServerPort)
	logrus.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}

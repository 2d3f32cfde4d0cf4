package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/bengali-calendar-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/today
//	GET    /api/v1/convert/{date}
//	GET    /api/v1/months/{year}/{month}
//	GET    /api/v1/months/{year}/{month}/festivals.ics
//	GET    /api/v1/months/{year}/{month}/{direction}   (prev | next)
//	GET    /api/v1/festivals
//	PUT    /api/v1/festivals/{month}/{day}              (admin)
//	DELETE /api/v1/festivals/{month}/{day}              (admin)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP,
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/today", handlers.GetToday)
		r.Get("/convert/{date}", handlers.Convert)

		r.Get("/months/{year}/{month}", handlers.GetMonth)
		r.Get("/months/{year}/{month}/festivals.ics", handlers.GetMonthICS)
		r.Get("/months/{year}/{month}/{direction}", handlers.NavigateMonth)

		r.Get("/festivals", handlers.ListFestivals)

		r.Group(func(r chi.Router) {
			r.Use(AdminMiddleware(cfg, logger))
			r.Put("/festivals/{month}/{day}", handlers.PutFestival)
			r.Delete("/festivals/{month}/{day}", handlers.DeleteFestival)
		})
	})

	return r
}

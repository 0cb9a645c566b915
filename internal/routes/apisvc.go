package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"deploystack/base-services/internal/api"
	"deploystack/base-services/internal/config"
	"deploystack/base-services/internal/logging"
	"deploystack/base-services/internal/metrics"
	"deploystack/base-services/internal/middleware"
	"deploystack/base-services/internal/probe"
)

// NewAPIRouter assembles the api template's route table.
func NewAPIRouter(cfg *config.Config, reg *metrics.Registry, runner *probe.Runner, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics(reg))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", api.RootHandler(cfg.AppName))
	r.Get("/health", api.HealthHandler(cfg.AppName))
	r.Get("/ready", api.ReadyHandler(cfg.AppName, runner, reg))
	r.Get("/api/v1/status", api.StatusHandler(cfg.AppName, cfg.Version, upSince))

	logging.Info("Router initialized", "service", cfg.Service)
	return r
}

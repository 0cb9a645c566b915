package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"deploystack/base-services/internal/api"
	"deploystack/base-services/internal/config"
	"deploystack/base-services/internal/logging"
	"deploystack/base-services/internal/metrics"
	"deploystack/base-services/internal/middleware"
)

// NewNexusRouter assembles the app-nexus template's route table.
func NewNexusRouter(cfg *config.Config, reg *metrics.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics(reg))
	r.Use(middleware.NewRateLimiter(5, 10).Handler)

	r.Get("/api/v1/info", api.InfoHandler(cfg))
	r.Get("/api/v1/healthz", api.HealthzHandler())

	logging.Info("Router initialized", "service", cfg.Service)
	return r
}

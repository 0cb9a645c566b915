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

// NewWebRouter assembles the web template's route table.
func NewWebRouter(cfg *config.Config, reg *metrics.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics(reg))

	r.Get("/", api.HomeHandler())
	r.Get("/health/", api.WebHealthHandler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(cfg.AdminSecret))
		r.Get("/admin/", api.AdminHandler(cfg.AppName))
	})

	logging.Info("Router initialized", "service", cfg.Service)
	return r
}

package api

import (
	"net/http"
	"time"

	"deploystack/base-services/internal/metrics"
	"deploystack/base-services/internal/models/entities"
	"deploystack/base-services/internal/probe"
)

// RootHandler handles GET /
//
// @Summary Welcome
// @Description Points a fresh deployment at its docs and health endpoints.
// @Tags Root
// @Success 200 {object} entities.Welcome
// @Router / [get]
func RootHandler(appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, entities.Welcome{
			Message: "Welcome to " + appName,
			Docs:    "/docs",
			Health:  "/health",
		})
	}
}

// HealthHandler handles GET /health
//
// @Summary Liveness probe
// @Description Reports process-up only; never consults dependencies.
// @Tags Health
// @Success 200 {object} entities.HealthStatus
// @Router /health [get]
func HealthHandler(appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, entities.HealthStatus{
			Status: "healthy",
			App:    appName,
		})
	}
}

// ReadyHandler handles GET /ready
//
// @Summary Readiness probe
// @Description Runs the configured dependency checks; 503 when any is down.
// @Tags Health
// @Success 200 {object} entities.ReadyStatus
// @Failure 503 {object} entities.ReadyStatus
// @Router /ready [get]
func ReadyHandler(appName string, runner *probe.Runner, reg *metrics.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overall, checks := runner.Run(r.Context())

		for name, result := range checks {
			reg.ProbeChecksTotal.WithLabelValues(name, result.Status).Inc()
		}

		code := http.StatusOK
		if overall != probe.StatusReady {
			code = http.StatusServiceUnavailable
		}

		WriteJSON(w, code, entities.ReadyStatus{
			Status: overall,
			App:    appName,
			Checks: checks,
		})
	}
}

// StatusHandler handles GET /api/v1/status
//
// @Summary Application status
// @Description Reports the running app's name, version, and uptime.
// @Tags Status
// @Success 200 {object} entities.StatusInfo
// @Router /api/v1/status [get]
func StatusHandler(appName, version string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := time.Since(upSince).Round(time.Second).String()

		WriteJSON(w, http.StatusOK, entities.StatusInfo{
			Status:  "running",
			App:     appName,
			Version: version,
			Uptime:  uptime,
		})
	}
}

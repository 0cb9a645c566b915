package api

import (
	"net/http"
	"os"
	"time"

	"deploystack/base-services/internal/config"
	"deploystack/base-services/internal/models/entities"
)

// infoTimeLayout is the human-readable stamp the info payload carries,
// e.g. "03:04:05PM on January 02, 2006".
const infoTimeLayout = "03:04:05PM on January 02, 2006"

// InfoHandler handles GET /api/v1/info
//
// @Summary Deployment info
// @Description Reports where and as what this instance is running.
// @Tags Info
// @Success 200 {object} entities.InfoPayload
// @Router /api/v1/info [get]
func InfoHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}

		WriteJSON(w, http.StatusOK, entities.InfoPayload{
			Time:       time.Now().Format(infoTimeLayout),
			Hostname:   hostname,
			Message:    "You are doing great, human!!! XOX111O",
			DeployedOn: cfg.DeployedOn,
			Env:        cfg.AppEnv,
			AppName:    cfg.AppName,
		})
	}
}

// HealthzHandler handles GET /api/v1/healthz
//
// @Summary Liveness probe
// @Tags Health
// @Success 200 {object} entities.HealthStatus
// @Router /api/v1/healthz [get]
func HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, entities.HealthStatus{Status: "up"})
	}
}

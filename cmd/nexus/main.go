package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deploystack/base-services/internal/config"
	"deploystack/base-services/internal/logging"
	"deploystack/base-services/internal/metrics"
	"deploystack/base-services/internal/routes"
	"deploystack/base-services/internal/server"
)

func main() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	cfg := config.Load("nexus", "8081")
	logging.Info("Application startup",
		"app", cfg.AppName,
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	reg := metrics.NewRegistry(cfg.Service)
	router := routes.NewNexusRouter(cfg, reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg.Registry, promhttp.HandlerOpts{}))
	mux.Handle("/", router)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: mux}
	if err := server.Run(srv); err != nil {
		logging.Error("Server exited with error", "error", err.Error())
		log.Fatalf("Server exited with error: %v", err)
	}

	logging.Info("Application shutdown", "app", cfg.AppName)
}

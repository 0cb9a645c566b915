package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deploystack/base-services/internal/cache"
	"deploystack/base-services/internal/config"
	"deploystack/base-services/internal/db"
	"deploystack/base-services/internal/logging"
	"deploystack/base-services/internal/metrics"
	"deploystack/base-services/internal/probe"
	"deploystack/base-services/internal/routes"
	"deploystack/base-services/internal/server"
)

// @title API Service Template
// @version 1.0
// @description Base API service skeleton with probe and status endpoints.
// @BasePath /
func main() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	cfg := config.Load("apisvc", "8080")
	logging.Info("Application startup",
		"app", cfg.AppName,
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	reg := metrics.NewRegistry(cfg.Service)

	var checks []probe.Check

	// Starter ORM handle: sqlite locally, postgres when DATABASE_URL is set.
	orm, err := db.OpenORM(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logging.Error("Failed to open database", "error", err.Error())
		log.Fatalf("Failed to open database: %v", err)
	}
	checks = append(checks, db.ORMCheck(orm))

	if cfg.DatabaseURL != "" {
		conn, err := db.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
			log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
		}
		checks = append(checks, db.PostgresCheck(conn))
		logging.Info("Connected to Postgres (sqlx)")
	}

	if cfg.RedisHost != "" {
		client := cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPass)
		checks = append(checks, cache.RedisCheck(client))
	}

	runner := probe.NewRunner(cfg.ProbeCacheTTL, cfg.ProbeTimeout, checks...)
	router := routes.NewAPIRouter(cfg, reg, runner, time.Now())

	// Metrics endpoint lives outside the chi router.
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

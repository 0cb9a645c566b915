package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"deploystack/base-services/internal/logging"
)

// Config carries the runtime settings for one template service. Scaffolding
// placeholders from the project skeleton (app name, environment) arrive here
// as APP_NAME / APP_ENV after substitution.
type Config struct {
	Service string
	AppName string
	AppEnv  string
	Port    string
	Version string

	// Info endpoint fields
	DeployedOn string

	// Optional dependencies, wired into readiness when set
	DatabaseURL string
	SQLitePath  string
	RedisHost   string
	RedisPort   string
	RedisPass   string

	// Admin surface
	AdminSecret string

	ProbeCacheTTL time.Duration
	ProbeTimeout  time.Duration
}

// Load reads the environment into a Config for the named service. A .env
// file in the working directory is merged in first when present.
func Load(service, defaultPort string) *Config {
	if err := godotenv.Load(); err == nil {
		logging.Debug("Loaded environment from .env file", "service", service)
	}

	return &Config{
		Service:       service,
		AppName:       getEnv("APP_NAME", service),
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", defaultPort),
		Version:       getEnv("APP_VERSION", "1.0.0"),
		DeployedOn:    getEnv("DEPLOYED_ON", "kubernetes"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", service+".db"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		AdminSecret:   os.Getenv("ADMIN_TOKEN_SECRET"),
		ProbeCacheTTL: getEnvDuration("PROBE_CACHE_TTL_SECONDS", 5*time.Second),
		ProbeTimeout:  getEnvDuration("PROBE_TIMEOUT_SECONDS", 3*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		logging.Warn("Invalid duration in environment, using fallback",
			"key", key, "value", v)
		return fallback
	}
	return time.Duration(secs) * time.Second
}

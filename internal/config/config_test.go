package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load("apisvc", "8080")

	if cfg.AppName != "apisvc" {
		t.Errorf("Expected app name apisvc, got %s", cfg.AppName)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("Expected env development, got %s", cfg.AppEnv)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Port)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", cfg.Version)
	}
	if cfg.DeployedOn != "kubernetes" {
		t.Errorf("Expected deployed_on kubernetes, got %s", cfg.DeployedOn)
	}
	if cfg.ProbeCacheTTL != 5*time.Second {
		t.Errorf("Expected 5s probe cache TTL, got %s", cfg.ProbeCacheTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "payments-api")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("PROBE_TIMEOUT_SECONDS", "7")

	cfg := Load("apisvc", "8080")

	if cfg.AppName != "payments-api" {
		t.Errorf("Expected app name payments-api, got %s", cfg.AppName)
	}
	if cfg.AppEnv != "production" {
		t.Errorf("Expected env production, got %s", cfg.AppEnv)
	}
	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
	if cfg.ProbeTimeout != 7*time.Second {
		t.Errorf("Expected 7s probe timeout, got %s", cfg.ProbeTimeout)
	}
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("PROBE_CACHE_TTL_SECONDS", "soon")

	cfg := Load("apisvc", "8080")
	if cfg.ProbeCacheTTL != 5*time.Second {
		t.Errorf("Expected fallback 5s TTL, got %s", cfg.ProbeCacheTTL)
	}
}

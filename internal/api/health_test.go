package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deploystack/base-services/internal/metrics"
	"deploystack/base-services/internal/models/entities"
	"deploystack/base-services/internal/probe"
)

func TestHealthHandler(t *testing.T) {
	handler := HealthHandler("my-api")

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var body entities.HealthStatus
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("Expected status healthy, got %s", body.Status)
	}
	if body.App != "my-api" {
		t.Errorf("Expected app my-api, got %s", body.App)
	}
}

func TestStatusHandler(t *testing.T) {
	handler := StatusHandler("my-api", "1.0.0", time.Now().Add(-90*time.Second))

	req := httptest.NewRequest("GET", "/api/v1/status", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var body entities.StatusInfo
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Status != "running" {
		t.Errorf("Expected status running, got %s", body.Status)
	}
	if body.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", body.Version)
	}
	if body.Uptime == "" {
		t.Error("Expected non-empty uptime")
	}
}

func TestReadyHandler_NoChecks(t *testing.T) {
	runner := probe.NewRunner(time.Minute, time.Second)
	handler := ReadyHandler("my-api", runner, metrics.NewRegistry("test_ready_none"))

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var body entities.ReadyStatus
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Status != "ready" {
		t.Errorf("Expected status ready, got %s", body.Status)
	}
	if len(body.Checks) != 0 {
		t.Errorf("Expected no checks, got %d", len(body.Checks))
	}
}

func TestReadyHandler_FailingCheck(t *testing.T) {
	failing := probe.Check{
		Name: "postgres",
		Run: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}
	runner := probe.NewRunner(time.Minute, time.Second, failing)
	handler := ReadyHandler("my-api", runner, metrics.NewRegistry("test_ready_fail"))

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rr.Code)
	}

	var body entities.ReadyStatus
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Status != "down" {
		t.Errorf("Expected status down, got %s", body.Status)
	}
	if body.Checks["postgres"].Status != "down" {
		t.Errorf("Expected postgres check down, got %s", body.Checks["postgres"].Status)
	}
}

func TestRootHandler(t *testing.T) {
	handler := RootHandler("my-api")

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var body entities.Welcome
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Message != "Welcome to my-api" {
		t.Errorf("Unexpected welcome message: %s", body.Message)
	}
	if body.Health != "/health" {
		t.Errorf("Expected health pointer /health, got %s", body.Health)
	}
}

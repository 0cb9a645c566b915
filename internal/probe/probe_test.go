package probe

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunner_NoChecks(t *testing.T) {
	runner := NewRunner(time.Minute, time.Second)

	status, checks := runner.Run(context.Background())
	if status != StatusReady {
		t.Errorf("Expected ready, got %s", status)
	}
	if len(checks) != 0 {
		t.Errorf("Expected no check results, got %d", len(checks))
	}
}

func TestRunner_AllPassing(t *testing.T) {
	runner := NewRunner(time.Minute, time.Second,
		Check{Name: "postgres", Run: func(ctx context.Context) error { return nil }},
		Check{Name: "redis", Run: func(ctx context.Context) error { return nil }},
	)

	status, checks := runner.Run(context.Background())
	if status != StatusReady {
		t.Errorf("Expected ready, got %s", status)
	}
	if len(checks) != 2 {
		t.Fatalf("Expected 2 check results, got %d", len(checks))
	}
	if checks["postgres"].Status != "ok" || checks["redis"].Status != "ok" {
		t.Errorf("Expected both checks ok, got %+v", checks)
	}
}

func TestRunner_OneFailing(t *testing.T) {
	runner := NewRunner(time.Minute, time.Second,
		Check{Name: "postgres", Run: func(ctx context.Context) error { return nil }},
		Check{Name: "redis", Run: func(ctx context.Context) error { return errors.New("connection refused") }},
	)

	status, checks := runner.Run(context.Background())
	if status != StatusDown {
		t.Errorf("Expected down, got %s", status)
	}
	if checks["postgres"].Status != "ok" {
		t.Errorf("Expected postgres ok, got %s", checks["postgres"].Status)
	}
	if checks["redis"].Details != "connection refused" {
		t.Errorf("Expected failure details, got %s", checks["redis"].Details)
	}
}

func TestRunner_CachesResults(t *testing.T) {
	var calls atomic.Int32
	runner := NewRunner(time.Minute, time.Second,
		Check{Name: "postgres", Run: func(ctx context.Context) error {
			calls.Add(1)
			return nil
		}},
	)

	runner.Run(context.Background())
	runner.Run(context.Background())
	runner.Run(context.Background())

	if got := calls.Load(); got != 1 {
		t.Errorf("Expected 1 check execution within TTL, got %d", got)
	}
}

func TestRunner_CheckTimeout(t *testing.T) {
	runner := NewRunner(time.Minute, 20*time.Millisecond,
		Check{Name: "slow", Run: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}},
	)

	status, checks := runner.Run(context.Background())
	if status != StatusDown {
		t.Errorf("Expected down, got %s", status)
	}
	if checks["slow"].Status != "down" {
		t.Errorf("Expected slow check down, got %s", checks["slow"].Status)
	}
}

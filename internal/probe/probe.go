package probe

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"deploystack/base-services/internal/logging"
	"deploystack/base-services/internal/models/entities"
)

const (
	StatusReady = "ready"
	StatusDown  = "down"

	checkOK   = "ok"
	checkDown = "down"

	resultsKey = "probe:results"
)

// Check is a named readiness dependency check.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes readiness checks concurrently and memoizes the folded
// result so probe traffic doesn't hammer dependencies.
type Runner struct {
	checks  []Check
	timeout time.Duration
	ttl     time.Duration
	results *cache.Cache
}

type snapshot struct {
	status string
	checks map[string]entities.CheckResult
}

// NewRunner builds a Runner. A zero-check Runner reports ready.
func NewRunner(ttl, timeout time.Duration, checks ...Check) *Runner {
	return &Runner{
		checks:  checks,
		timeout: timeout,
		ttl:     ttl,
		results: cache.New(ttl, 2*ttl),
	}
}

// Run returns the overall status and per-check results, reusing a cached
// snapshot when one is still fresh.
func (r *Runner) Run(ctx context.Context) (string, map[string]entities.CheckResult) {
	if cached, found := r.results.Get(resultsKey); found {
		snap := cached.(snapshot)
		return snap.status, snap.checks
	}

	checks := make(map[string]entities.CheckResult, len(r.checks))
	outcomes := make([]entities.CheckResult, len(r.checks))

	var g errgroup.Group
	for i, c := range r.checks {
		i, c := i, c
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			if err := c.Run(checkCtx); err != nil {
				logging.Warn("Readiness check failed", "check", c.Name, "error", err.Error())
				outcomes[i] = entities.CheckResult{Status: checkDown, Details: err.Error()}
				return nil
			}
			outcomes[i] = entities.CheckResult{Status: checkOK, Details: c.Name + " connected"}
			return nil
		})
	}
	_ = g.Wait()

	overall := StatusReady
	for i, c := range r.checks {
		checks[c.Name] = outcomes[i]
		if outcomes[i].Status != checkOK {
			overall = StatusDown
		}
	}

	r.results.Set(resultsKey, snapshot{status: overall, checks: checks}, r.ttl)
	return overall, checks
}

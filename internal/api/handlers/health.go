package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// HealthReport is the detailed health check response
type HealthReport struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	GitCommit string                 `json:"git_commit"`
	Checks    map[string]CheckResult `json:"checks"`
	Timestamp string                 `json:"timestamp"`
}

// CheckResult is the outcome of a single health check
type CheckResult struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type HealthChecker struct {
	pool      *pgxpool.Pool
	version   string
	gitCommit string
}

func NewHealthChecker(pool *pgxpool.Pool, version, gitCommit string) *HealthChecker {
	return &HealthChecker{pool: pool, version: version, gitCommit: gitCommit}
}

// Health runs all checks concurrently and reports pass/fail per check plus
// an overall status.
func (h *HealthChecker) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var mu sync.Mutex
		checks := make(map[string]CheckResult)
		record := func(name string, result CheckResult) {
			mu.Lock()
			checks[name] = result
			mu.Unlock()
		}

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			record("database", h.checkDatabase(groupCtx))
			return nil
		})
		group.Go(func() error {
			record("migrations", h.checkMigrations(groupCtx))
			return nil
		})
		_ = group.Wait()

		status := "healthy"
		httpStatus := http.StatusOK
		for _, result := range checks {
			if result.Status == "fail" {
				status = "unhealthy"
				httpStatus = http.StatusServiceUnavailable
				break
			}
		}

		report := HealthReport{
			Status:    status,
			Version:   h.version,
			GitCommit: h.gitCommit,
			Checks:    checks,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(httpStatus)
		_ = json.NewEncoder(w).Encode(report)
	}
}

func (h *HealthChecker) checkDatabase(ctx context.Context) CheckResult {
	if h.pool == nil {
		return CheckResult{Status: "fail", Message: "no database pool"}
	}

	start := time.Now()
	if err := h.pool.Ping(ctx); err != nil {
		return CheckResult{Status: "fail", Message: err.Error(), LatencyMs: time.Since(start).Milliseconds()}
	}
	return CheckResult{Status: "pass", LatencyMs: time.Since(start).Milliseconds()}
}

func (h *HealthChecker) checkMigrations(ctx context.Context) CheckResult {
	if h.pool == nil {
		return CheckResult{Status: "fail", Message: "no database pool"}
	}

	start := time.Now()
	var dirty bool
	err := h.pool.QueryRow(ctx, `SELECT dirty FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&dirty)
	if err != nil {
		return CheckResult{Status: "fail", Message: fmt.Sprintf("schema_migrations: %v", err), LatencyMs: time.Since(start).Milliseconds()}
	}
	if dirty {
		return CheckResult{Status: "fail", Message: "last migration is dirty", LatencyMs: time.Since(start).Milliseconds()}
	}
	return CheckResult{Status: "pass", LatencyMs: time.Since(start).Milliseconds()}
}

// Healthz is the liveness probe: the process is up.
func Healthz() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}

// Readyz is the readiness probe: the database answers.
func Readyz(pool *pgxpool.Pool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if pool == nil || pool.Ping(ctx) != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})
}

package httpx

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 2 * time.Second

// HealthChecker is anything with a Ping: the pgx pool, RedisClient,
// EventBus and TemporalClient.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks lists the dependencies GET /health probes. A nil Temporal
// is reported as "disabled". Providers names the outbound integrations
// (amazon, walmart, llm) and whether each has credentials; they are
// informational and never degrade the status.
type HealthChecks struct {
	Database  HealthChecker
	Redis     HealthChecker
	EventBus  HealthChecker
	Temporal  HealthChecker
	Providers map[string]bool
}

type healthResponse struct {
	Status    string            `json:"status"`
	Database  string            `json:"database"`
	Redis     string            `json:"redis"`
	EventBus  string            `json:"event_bus"`
	Temporal  string            `json:"temporal"`
	Providers map[string]string `json:"providers,omitempty"`
}

// HealthHandler probes every dependency concurrently under one 2s budget
// and answers 503 "degraded" if any probe fails.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	providers := make(map[string]string, len(checks.Providers))
	for name, configured := range checks.Providers {
		providers[name] = "disabled"
		if configured {
			providers[name] = "configured"
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Providers: providers}
		targets := []struct {
			checker HealthChecker
			result  *string
		}{
			{checks.Database, &resp.Database},
			{checks.Redis, &resp.Redis},
			{checks.EventBus, &resp.EventBus},
			{checks.Temporal, &resp.Temporal},
		}

		// Probes never return an error to the group; each writes its own field.
		var g errgroup.Group
		for _, t := range targets {
			g.Go(func() error {
				*t.result = probe(ctx, t.checker)
				return nil
			})
		}
		_ = g.Wait()

		status := http.StatusOK
		for _, t := range targets {
			if *t.result == "unreachable" {
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		JSON(w, status, resp)
	}
}

func probe(ctx context.Context, c HealthChecker) string {
	if c == nil {
		return "disabled"
	}
	if err := c.Ping(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}

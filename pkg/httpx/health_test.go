package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ghuser/packstack/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

var (
	up   = &stubChecker{}
	down = &stubChecker{err: errors.New("conn refused")}
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		checks httpx.HealthChecks
		code   int
		want   map[string]string
	}{
		{
			name:   "all healthy, temporal off",
			checks: httpx.HealthChecks{Database: up, Redis: up, EventBus: up},
			code:   http.StatusOK,
			want:   map[string]string{"status": "ok", "database": "ok", "temporal": "disabled"},
		},
		{
			name:   "all healthy, temporal on",
			checks: httpx.HealthChecks{Database: up, Redis: up, EventBus: up, Temporal: up},
			code:   http.StatusOK,
			want:   map[string]string{"status": "ok", "temporal": "ok"},
		},
		{
			name:   "database down",
			checks: httpx.HealthChecks{Database: down, Redis: up, EventBus: up},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "database": "unreachable", "redis": "ok"},
		},
		{
			name:   "redis down",
			checks: httpx.HealthChecks{Database: up, Redis: down, EventBus: up},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "redis": "unreachable"},
		},
		{
			name:   "event bus down",
			checks: httpx.HealthChecks{Database: up, Redis: up, EventBus: down},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "event_bus": "unreachable"},
		},
		{
			name:   "temporal down",
			checks: httpx.HealthChecks{Database: up, Redis: up, EventBus: up, Temporal: down},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "temporal": "unreachable", "database": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpx.HealthHandler(tt.checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

			if rr.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Errorf("Content-Type: got %q", ct)
			}
			var resp map[string]any
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			for k, v := range tt.want {
				if resp[k] != v {
					t.Errorf("%s: got %v, want %q", k, resp[k], v)
				}
			}
		})
	}
}

type slowChecker struct{}

func (slowChecker) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestHealthHandler_ProbesShareOneDeadline(t *testing.T) {
	checks := httpx.HealthChecks{Database: slowChecker{}, Redis: slowChecker{}, EventBus: slowChecker{}, Temporal: slowChecker{}}

	start := time.Now()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("probes ran sequentially: took %v", elapsed)
	}
}

func TestHealthHandler_Providers(t *testing.T) {
	checks := httpx.HealthChecks{
		Database: up, Redis: up, EventBus: up,
		Providers: map[string]bool{"amazon": true, "walmart": false},
	}
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	var resp struct {
		Status    string            `json:"status"`
		Providers map[string]string `json:"providers"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rr.Code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("a disabled provider must not degrade health: %d %s", rr.Code, resp.Status)
	}
	if resp.Providers["amazon"] != "configured" || resp.Providers["walmart"] != "disabled" {
		t.Errorf("providers = %v", resp.Providers)
	}
}

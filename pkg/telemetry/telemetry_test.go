package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ghuser/packstack/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "packstack",
		ServiceVersion: "test",
		Environment:    config.EnvTesting,
	}
}

func TestSetup(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	t.Run("metrics handler serves prometheus format", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/plain") {
			t.Errorf("expected text/plain content-type, got %q", ct)
		}
	})

	t.Run("trace context propagates", func(t *testing.T) {
		ctx, span := otel.Tracer("test").Start(context.Background(), "publish")
		defer span.End()

		carrier := propagation.MapCarrier{}
		otel.GetTextMapPropagator().Inject(ctx, carrier)
		if carrier.Get("traceparent") == "" {
			t.Fatal("expected a traceparent header")
		}
	})
}

func TestSampler(t *testing.T) {
	cfg := baseConfig()
	if got := sampler(cfg).Description(); got != sdktrace.AlwaysSample().Description() {
		t.Errorf("non-production sampler: %s", got)
	}
	cfg.Environment = config.EnvProduction
	if got := sampler(cfg).Description(); !strings.Contains(got, "ParentBased") {
		t.Errorf("production sampler: %s", got)
	}
}

func TestSentryOptions_ScrubsCredentials(t *testing.T) {
	cfg := baseConfig()
	cfg.SentryDSN = "https://key@sentry.example/1"
	opts := sentryOptions(cfg)
	if opts.Release != "packstack@test" || opts.TracesSampleRate != 1.0 {
		t.Fatalf("unexpected options: %+v", opts)
	}

	event := &sentry.Event{Request: &sentry.Request{
		Cookies: "packstack_session=abc",
		Headers: map[string]string{"Authorization": "Bearer x", "Cookie": "packstack_session=abc", "Accept": "application/json"},
	}}
	got := opts.BeforeSend(event, nil)
	if got.Request.Cookies != "" || got.Request.Headers["Authorization"] != "" || got.Request.Headers["Cookie"] != "" {
		t.Fatalf("credentials not scrubbed: %+v", got.Request)
	}
	if got.Request.Headers["Accept"] == "" {
		t.Fatal("unrelated headers should survive")
	}
}

// Package upstream holds the HTTP plumbing shared by the catalog clients.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/packstack/services/catalog/domain"
)

const (
	maxAttempts  = 3
	maxErrorBody = 512
)

// NewHTTPClient returns a traced client for outbound catalog calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Metrics counts outbound catalog requests by source and outcome.
type Metrics struct {
	requests metric.Int64Counter
}

// NewMetrics registers the catalog.requests counter on the global meter provider.
func NewMetrics() *Metrics {
	counter, err := otel.Meter("packstack/catalog").Int64Counter(
		"catalog.requests",
		metric.WithDescription("Outbound catalog API requests"),
	)
	if err != nil {
		otel.Handle(err)
	}
	return &Metrics{requests: counter}
}

func (m *Metrics) record(ctx context.Context, source, op, outcome string) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}

// Doer sends one catalog request with retries on transport errors and 5xx
// responses. A fresh request is built per attempt so signatures carry a current
// timestamp.
type Doer struct {
	Client  *http.Client
	Metrics *Metrics
	Source  string
	Backoff time.Duration
}

// Do returns the body of a 2xx response. 404 maps to domain.ErrProductNotFound,
// everything else to domain.ErrUpstream.
func (d *Doer) Do(ctx context.Context, op string, build func(context.Context) (*http.Request, error)) ([]byte, error) {
	var lastErr error
	for attempt := range maxAttempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrUpstream, d.Source, op, ctx.Err())
			case <-time.After(d.Backoff << (attempt - 1)):
			}
		}

		body, retry, err := d.once(ctx, op, build)
		if err == nil {
			d.Metrics.record(ctx, d.Source, op, "ok")
			return body, nil
		}
		lastErr = err
		if !retry {
			break
		}
	}
	d.Metrics.record(ctx, d.Source, op, "error")
	return nil, lastErr
}

func (d *Doer) once(ctx context.Context, op string, build func(context.Context) (*http.Request, error)) ([]byte, bool, error) {
	req, err := build(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s %s: build request: %w", domain.ErrUpstream, d.Source, op, err)
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("%w: %s %s: %w", domain.ErrUpstream, d.Source, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %s %s: read body: %w", domain.ErrUpstream, d.Source, op, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, false, nil
	case resp.StatusCode == http.StatusNotFound:
		return body, false, fmt.Errorf("%w: %s %s", domain.ErrProductNotFound, d.Source, op)
	default:
		return nil, resp.StatusCode >= 500, fmt.Errorf("%w: %s %s: status %d: %s",
			domain.ErrUpstream, d.Source, op, resp.StatusCode, truncate(body))
	}
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return string(b)
}

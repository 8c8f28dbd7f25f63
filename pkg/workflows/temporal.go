package workflows

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	"go.temporal.io/sdk/interceptor"
	temporallog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/logger"
)

// TemporalClient wraps the Temporal SDK client with the interceptor shared by
// the client and every worker built from it.
type TemporalClient struct {
	Client    client.Client
	Namespace string
	tracing   interceptor.Interceptor
	log       logger.Logger
}

// NewTemporalClient dials TEMPORAL_HOST_PORT with OTel tracing.
// Call Close() when the application shuts down.
func NewTemporalClient(ctx context.Context, cfg *config.Config, log logger.Logger) (*TemporalClient, error) {
	tracing, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: otel.Tracer("temporal"),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal otel interceptor: %w", err)
	}

	c, err := client.DialContext(ctx, client.Options{
		HostPort:     cfg.TemporalHostPort,
		Namespace:    cfg.TemporalNamespace,
		Logger:       NewLogger(log),
		Interceptors: []interceptor.ClientInterceptor{tracing},
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal server at %s: %w", cfg.TemporalHostPort, err)
	}

	log.Info("temporal client connected", "host_port", cfg.TemporalHostPort, "namespace", cfg.TemporalNamespace)

	return &TemporalClient{
		Client:    c,
		Namespace: cfg.TemporalNamespace,
		tracing:   tracing,
		log:       log,
	}, nil
}

// Ping reports whether the frontend service answers a health check.
func (tc *TemporalClient) Ping(ctx context.Context) error {
	_, err := tc.Client.CheckHealth(ctx, &client.CheckHealthRequest{})
	return err
}

// NewWorker creates a worker polling taskQueue. Register workflows and
// activities on it before calling Run.
func (tc *TemporalClient) NewWorker(taskQueue string) worker.Worker {
	return worker.New(tc.Client, taskQueue, worker.Options{
		Interceptors: []interceptor.WorkerInterceptor{tc.tracing},
	})
}

// RunWorker starts w and blocks until ctx is cancelled, then stops it.
func (tc *TemporalClient) RunWorker(ctx context.Context, w worker.Worker, taskQueue string) error {
	if err := w.Start(); err != nil {
		return fmt.Errorf("start temporal worker on %s: %w", taskQueue, err)
	}
	tc.log.Info("temporal worker started", "task_queue", taskQueue)

	<-ctx.Done()
	w.Stop()
	tc.log.Info("temporal worker stopped", "task_queue", taskQueue)
	return nil
}

// Close gracefully shuts down the Temporal client connection.
func (tc *TemporalClient) Close() {
	tc.Client.Close()
	tc.log.Info("temporal client closed")
}

// temporalLogger adapts logger.Logger to Temporal's log.Logger interface.
type temporalLogger struct {
	log logger.Logger
}

// NewLogger adapts log for the Temporal SDK.
func NewLogger(log logger.Logger) temporallog.Logger {
	return &temporalLogger{log: log.With("component", "temporal")}
}

func (l *temporalLogger) Debug(msg string, keyvals ...any) { l.log.Debug(msg, keyvals...) }
func (l *temporalLogger) Info(msg string, keyvals ...any)  { l.log.Info(msg, keyvals...) }
func (l *temporalLogger) Warn(msg string, keyvals ...any)  { l.log.Warn(msg, keyvals...) }
func (l *temporalLogger) Error(msg string, keyvals ...any) { l.log.Error(msg, keyvals...) }

package cache

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/packstack/pkg/config"
)

// keyNamespace prefixes every key this application writes, so a shared
// Redis instance can host other tenants.
const keyNamespace = "packstack"

// Key joins parts under the application namespace: Key("item", "42")
// returns "packstack:item:42".
func Key(parts ...string) string {
	return keyNamespace + ":" + strings.Join(parts, ":")
}

// RedisClient wraps redis.Client. Every command is traced.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient connects to cfg.RedisURL and verifies the connection.
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	rdb.AddHook(newTracingHook(opts.DB))

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisClient{client: rdb}, nil
}

func redisOptions(cfg *config.Config) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	opts.ClientName = cfg.ServiceName
	opts.PoolSize = cfg.RedisPoolSize
	if opts.PoolSize <= 0 {
		opts.PoolSize = 10
	}
	opts.MinIdleConns = max(1, opts.PoolSize/5)
	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	// Plan updates hold a WATCH connection for a whole read-modify-write.
	opts.PoolTimeout = opts.ReadTimeout + time.Second
	return opts, nil
}

// Ping checks the Redis connection health.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client returns the underlying redis.Client.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// tracingHook opens a client span per command or pipeline. Key arguments
// are never recorded since they embed owner ids.
type tracingHook struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

func newTracingHook(db int) tracingHook {
	return tracingHook{
		tracer: otel.Tracer("packstack/cache"),
		attrs: []attribute.KeyValue{
			attribute.String("db.system", "redis"),
			attribute.Int("db.redis.database_index", db),
		},
	}
}

func (h tracingHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		ctx, span := h.start(ctx, "redis.dial")
		defer span.End()
		conn, err := next(ctx, network, addr)
		h.end(span, err)
		return conn, err
	}
}

func (h tracingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		ctx, span := h.start(ctx, "redis "+cmd.Name(), attribute.String("db.operation", cmd.Name()))
		defer span.End()
		err := next(ctx, cmd)
		h.end(span, err)
		return err
	}
}

func (h tracingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		names := make([]string, len(cmds))
		for i, cmd := range cmds {
			names[i] = cmd.Name()
		}
		ctx, span := h.start(ctx, "redis.pipeline",
			attribute.StringSlice("db.redis.commands", names),
			attribute.Int("db.redis.num_cmd", len(cmds)),
		)
		defer span.End()
		err := next(ctx, cmds)
		h.end(span, err)
		return err
	}
}

func (h tracingHook) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return h.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(h.attrs...),
		trace.WithAttributes(attrs...),
	)
}

// end marks the span failed unless err is a cache miss.
func (h tracingHook) end(span trace.Span, err error) {
	if err == nil || err == redis.Nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// Package events is the PostgreSQL-backed event bus built on Watermill.
//
// Producers publish inside their write transaction (PublishTx); with the
// forwarder enabled the message lands in an outbox topic and a daemon moves
// it to its real topic, so an event exists if and only if the write commits.
//
// Consumers register handlers with Handle and block in Run. All instances
// sharing SERVICE_NAME form one consumer group, so each message is handled
// once. A failing handler is retried with exponential backoff; after the
// last retry the message goes to PoisonTopic instead of blocking the topic.
// Handlers must be idempotent.
//
// Trace context travels in message metadata, so a handler span continues the
// trace of the request that published the event.
package events

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/logger"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	maxRetryDelay   = 10 * time.Second
	shutdownTimeout = 30 * time.Second
	forwarderTopic  = "_forwarder_queue"

	// PoisonTopic receives messages whose handler kept failing.
	PoisonTopic = "events.poison"
)

// EventBus publishes to and consumes from Watermill's SQL transport, which
// uses FOR UPDATE SKIP LOCKED for concurrent-safe delivery.
type EventBus struct {
	publisher  message.Publisher // direct SQL publisher or forwarder-decorated
	subscriber message.Subscriber
	router     *message.Router
	fwd        *forwarder.Forwarder
	db         *sql.DB
	log        logger.Logger
	metrics    *handlerMetrics
	retryDelay time.Duration
	wg         sync.WaitGroup

	useForwarder bool
}

// NewEventBus opens cfg.DatabaseURL and publishes directly to topics.
// Used by the worker, which consumes events.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, false)
}

// NewEventBusWithForwarder publishes through the outbox topic. Call
// StartForwarder to begin moving messages to their target topics.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, true)
}

func newEventBus(cfg *config.Config, log logger.Logger, useForwarder bool) (*EventBus, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	wlog := &slogAdapter{log: log}

	pub, err := newSQLPublisher(db, true, wlog)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}

	sub, err := newSQLSubscriber(db, cfg.ServiceName+"-consumer", wlog)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}

	var publisher message.Publisher = pub
	if useForwarder {
		publisher = forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic})
	}

	bus, err := newBus(publisher, sub, log)
	if err != nil {
		_ = sub.Close()
		_ = pub.Close()
		_ = db.Close()
		return nil, err
	}
	bus.db = db
	bus.useForwarder = useForwarder
	return bus, nil
}

// newBus assembles an EventBus over any Watermill transport.
func newBus(pub message.Publisher, sub message.Subscriber, log logger.Logger) (*EventBus, error) {
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: shutdownTimeout}, &slogAdapter{log: log})
	if err != nil {
		return nil, fmt.Errorf("events: new router: %w", err)
	}
	metrics, err := newHandlerMetrics()
	if err != nil {
		return nil, err
	}
	return &EventBus{
		publisher:  pub,
		subscriber: sub,
		router:     router,
		log:        log,
		metrics:    metrics,
		retryDelay: retryBaseDelay,
	}, nil
}

func newSQLPublisher(db watermillsql.ContextExecutor, initSchema bool, wlog watermill.LoggerAdapter) (*watermillsql.Publisher, error) {
	return watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: initSchema,
	}, wlog)
}

func newSQLSubscriber(db *sql.DB, group string, wlog watermill.LoggerAdapter) (*watermillsql.Subscriber, error) {
	return watermillsql.NewSubscriber(db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}, wlog)
}

// DB returns the underlying *sql.DB.
func (q *EventBus) DB() *sql.DB {
	return q.db
}

// Ping checks the EventBus database connection health.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the router (waiting up to 30s for in-flight handlers), the
// forwarder and the subscriber, then closes the publisher and database.
func (q *EventBus) Close() error {
	if err := q.router.Close(); err != nil {
		return fmt.Errorf("events: close router: %w", err)
	}
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for the forwarder to stop")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	if q.db == nil {
		return nil
	}
	return q.db.Close()
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Handler processes one message. ctx carries the publisher's trace.
type Handler func(ctx context.Context, msg *message.Message) error

// Handle registers h for topic under a unique name. Call before Run.
func (q *EventBus) Handle(name, topic string, h Handler) {
	q.router.AddNoPublisherHandler(name, topic, q.subscriber, func(msg *message.Message) error {
		return h(msg.Context(), msg)
	})
}

// Run consumes every registered topic until ctx is cancelled or the bus is
// closed. Failing handlers are retried maxRetries times with exponential
// backoff, then the message moves to PoisonTopic.
func (q *EventBus) Run(ctx context.Context) error {
	poison, err := middleware.PoisonQueue(q.publisher, PoisonTopic)
	if err != nil {
		return fmt.Errorf("events: poison queue: %w", err)
	}
	q.router.AddMiddleware(
		poison,
		middleware.Retry{
			MaxRetries:      maxRetries,
			InitialInterval: q.retryDelay,
			MaxInterval:     maxRetryDelay,
			Multiplier:      2,
			Logger:          &slogAdapter{log: q.log},
		}.Middleware,
		q.observe,
		middleware.Recoverer,
	)
	if err := q.router.Run(ctx); err != nil {
		return fmt.Errorf("events: router: %w", err)
	}
	return nil
}

// Running is closed once Run has started every handler.
func (q *EventBus) Running() chan struct{} {
	return q.router.Running()
}

// observe restores the publisher's trace context, wraps each attempt in a
// consumer span and counts the outcome.
func (q *EventBus) observe(h message.HandlerFunc) message.HandlerFunc {
	tracer := otel.Tracer("packstack/events")
	return func(msg *message.Message) ([]*message.Message, error) {
		topic := message.SubscribeTopicFromCtx(msg.Context())
		handler := message.HandlerNameFromCtx(msg.Context())

		ctx := otel.GetTextMapPropagator().Extract(msg.Context(), propagation.MapCarrier(msg.Metadata))
		ctx, span := tracer.Start(ctx, "handle "+topic,
			trace.WithSpanKind(trace.SpanKindConsumer),
			trace.WithAttributes(
				attribute.String("messaging.destination.name", topic),
				attribute.String("messaging.message.id", msg.UUID),
				attribute.String("packstack.event_id", msg.Metadata.Get(MetadataEventID)),
			),
		)
		defer span.End()
		msg.SetContext(ctx)

		produced, err := h(msg)
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		q.metrics.handled.Add(ctx, 1, metric.WithAttributes(
			attribute.String("handler", handler),
			attribute.String("topic", topic),
			attribute.String("outcome", outcome),
		))
		return produced, err
	}
}

type handlerMetrics struct {
	handled metric.Int64Counter
}

func newHandlerMetrics() (*handlerMetrics, error) {
	handled, err := otel.Meter("packstack/events").Int64Counter("events.handled",
		metric.WithDescription("Event handler attempts by handler, topic and outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("events: handled counter: %w", err)
	}
	return &handlerMetrics{handled: handled}, nil
}

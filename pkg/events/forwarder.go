package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// StartForwarder launches the outbox relay: it drains forwarderTopic and
// republishes each enveloped message to the topic it was addressed to.
// It returns once the relay is consuming. Valid only on a bus built with
// NewEventBusWithForwarder.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	switch {
	case !q.useForwarder:
		return errors.New("events: StartForwarder called on non-forwarder EventBus")
	case q.fwd != nil:
		return errors.New("events: forwarder already started")
	}

	fwd, err := q.newForwarder()
	if err != nil {
		return err
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: outbox relay stopped", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: outbox relay stopped")
	}()

	select {
	case <-fwd.Running():
		q.log.InfoContext(ctx, "events: outbox relay running", "topic", forwarderTopic)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for outbox relay: %w", ctx.Err())
	}
}

// newForwarder reads the outbox with its own consumer group and writes to
// target topics without a transaction. A republish that keeps failing is
// retried, then parked on PoisonTopic so one bad envelope cannot stall the
// outbox. Envelopes that cannot be decoded are acked and dropped.
func (q *EventBus) newForwarder() (*forwarder.Forwarder, error) {
	wlog := &slogAdapter{log: q.log.With("component", "outbox")}

	outbox, err := newSQLSubscriber(q.db, "outbox-relay", wlog)
	if err != nil {
		return nil, fmt.Errorf("events: outbox subscriber: %w", err)
	}
	target, err := newSQLPublisher(q.db, true, wlog)
	if err != nil {
		_ = outbox.Close()
		return nil, fmt.Errorf("events: outbox target publisher: %w", err)
	}

	poison, err := middleware.PoisonQueue(target, PoisonTopic)
	if err != nil {
		_ = target.Close()
		_ = outbox.Close()
		return nil, fmt.Errorf("events: outbox poison queue: %w", err)
	}

	fwd, err := forwarder.NewForwarder(outbox, target, wlog, forwarder.Config{
		ForwarderTopic: forwarderTopic,
		Middlewares: []message.HandlerMiddleware{
			poison,
			middleware.Retry{
				MaxRetries:      maxRetries,
				InitialInterval: q.retryDelay,
				MaxInterval:     maxRetryDelay,
				Multiplier:      2,
				Logger:          wlog,
			}.Middleware,
		},
		CloseTimeout:        shutdownTimeout,
		AckWhenCannotUnwrap: true,
	})
	if err != nil {
		_ = target.Close()
		_ = outbox.Close()
		return nil, fmt.Errorf("events: outbox relay: %w", err)
	}
	return fwd, nil
}

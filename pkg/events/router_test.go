package events

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const testTopic = "item.created"

// runBus starts an in-memory bus with the given handler and returns its
// transport so tests can publish and watch the poison topic.
func runBus(t *testing.T, h Handler) (*EventBus, *gochannel.GoChannel) {
	t.Helper()

	pubsub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	bus, err := newBus(pubsub, pubsub, nopLogger())
	if err != nil {
		t.Fatalf("newBus: %v", err)
	}
	bus.retryDelay = time.Millisecond
	bus.Handle("test.handler", testTopic, h)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bus.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		_ = bus.Close()
		<-done
	})

	select {
	case <-bus.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}
	return bus, pubsub
}

func publishSnapshot(t *testing.T, ctx context.Context, bus *EventBus) {
	t.Helper()
	msg, err := NewJSONMessage(uuid.New(), 1, snapshot{ItemID: 7, Name: "Stove"})
	if err != nil {
		t.Fatal(err)
	}
	if err := bus.Publish(ctx, testTopic, msg); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func wait(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler")
	}
}

func TestHandle_DeliversWithTrace(t *testing.T) {
	setupTracer(t)

	type delivery struct {
		payload snapshot
		traceID trace.TraceID
	}
	got := make(chan delivery, 1)
	bus, _ := runBus(t, func(ctx context.Context, msg *message.Message) error {
		p, err := DecodeJSON[snapshot](msg)
		if err != nil {
			return err
		}
		got <- delivery{payload: p, traceID: trace.SpanContextFromContext(ctx).TraceID()}
		return nil
	})

	ctx, span := otel.Tracer("test").Start(context.Background(), "create item")
	defer span.End()
	publishSnapshot(t, ctx, bus)

	select {
	case d := <-got:
		if d.payload.ItemID != 7 || d.payload.Name != "Stove" {
			t.Errorf("payload: %+v", d.payload)
		}
		if d.traceID != span.SpanContext().TraceID() {
			t.Errorf("handler trace %s, want publisher trace %s", d.traceID, span.SpanContext().TraceID())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestHandle_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{})
	bus, _ := runBus(t, func(context.Context, *message.Message) error {
		if calls.Add(1) < 3 {
			return errors.New("redis unavailable")
		}
		close(done)
		return nil
	})

	publishSnapshot(t, context.Background(), bus)
	wait(t, done)

	if n := calls.Load(); n != 3 {
		t.Errorf("handler calls = %d, want 3", n)
	}
}

func TestHandle_RecoversPanic(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{})
	bus, _ := runBus(t, func(context.Context, *message.Message) error {
		if calls.Add(1) == 1 {
			panic("nil cache")
		}
		close(done)
		return nil
	})

	publishSnapshot(t, context.Background(), bus)
	wait(t, done)
}

func TestHandle_PoisonsAfterRetries(t *testing.T) {
	var calls atomic.Int32
	bus, pubsub := runBus(t, func(context.Context, *message.Message) error {
		calls.Add(1)
		return errors.New("evict failed")
	})

	poisoned, err := pubsub.Subscribe(context.Background(), PoisonTopic)
	if err != nil {
		t.Fatalf("subscribe poison: %v", err)
	}

	publishSnapshot(t, context.Background(), bus)

	select {
	case msg := <-poisoned:
		msg.Ack()
		if reason := msg.Metadata.Get(middleware.ReasonForPoisonedKey); !strings.Contains(reason, "evict failed") {
			t.Errorf("poison reason = %q", reason)
		}
		if msg.Metadata.Get(MetadataEventID) == "" {
			t.Error("poisoned message lost its event_id")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("message never reached the poison topic")
	}

	if n := calls.Load(); n != maxRetries+1 {
		t.Errorf("handler calls = %d, want %d", n, maxRetries+1)
	}
}

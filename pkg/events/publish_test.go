package events

import (
	"context"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/logger"
)

func setupTracer(t *testing.T) {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
}

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{useForwarder: false}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

func TestInjectTrace(t *testing.T) {
	setupTracer(t)

	ctx, span := otel.Tracer("test").Start(context.Background(), "create item")
	defer span.End()

	msgs := []*message.Message{message.NewMessage("a", nil), message.NewMessage("b", nil)}
	injectTrace(ctx, msgs...)

	for _, msg := range msgs {
		got := otel.GetTextMapPropagator().Extract(context.Background(), propagation.MapCarrier(msg.Metadata))
		sc := trace.SpanContextFromContext(got)
		if !sc.IsValid() {
			t.Fatalf("message %s: no trace context in metadata %v", msg.UUID, msg.Metadata)
		}
		if sc.TraceID() != span.SpanContext().TraceID() {
			t.Errorf("message %s: trace %s, want %s", msg.UUID, sc.TraceID(), span.SpanContext().TraceID())
		}
	}
}

func TestInjectTrace_NoSpan(t *testing.T) {
	setupTracer(t)

	msg := message.NewMessage("id", nil)
	injectTrace(context.Background(), msg)
	if _, ok := msg.Metadata["traceparent"]; ok {
		t.Fatalf("unexpected traceparent without an active span: %v", msg.Metadata)
	}
}

type snapshot struct {
	ItemID int64  `json:"item_id"`
	Name   string `json:"name"`
}

func TestNewJSONMessage(t *testing.T) {
	eventID := uuid.New()
	msg, err := NewJSONMessage(eventID, 2, snapshot{ItemID: 12, Name: "Bear Canister"})
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}
	if got := msg.Metadata.Get(MetadataEventID); got != eventID.String() {
		t.Errorf("event_id metadata: got %q", got)
	}
	if got := msg.Metadata.Get(MetadataEventVersion); got != "2" {
		t.Errorf("event_version metadata: got %q", got)
	}
	if msg.UUID == "" || msg.UUID == eventID.String() {
		t.Errorf("message UUID should be fresh, got %q", msg.UUID)
	}

	got, err := DecodeJSON[snapshot](msg)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if got.ItemID != 12 || got.Name != "Bear Canister" {
		t.Errorf("decoded payload mismatch: %+v", got)
	}
}

func TestNewJSONMessage_Unmarshalable(t *testing.T) {
	if _, err := NewJSONMessage(uuid.New(), 1, map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	msg := message.NewMessage("id", []byte("{not json"))
	if _, err := DecodeJSON[snapshot](msg); err == nil {
		t.Fatal("expected decode error")
	}
}

package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Metadata keys set on every message built by NewJSONMessage.
const (
	MetadataEventID      = "event_id"
	MetadataEventVersion = "event_version"
)

// NewJSONMessage marshals payload into a message tagged with the event ID and
// schema version so consumers can deduplicate and check compatibility.
func NewJSONMessage(eventID uuid.UUID, version int, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(MetadataEventID, eventID.String())
	msg.Metadata.Set(MetadataEventVersion, strconv.Itoa(version))
	return msg, nil
}

// DecodeJSON unmarshals a message payload into T.
func DecodeJSON[T any](msg *message.Message) (T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("events: decode %s: %w", msg.UUID, err)
	}
	return v, nil
}

// NewTxPublisher returns a Publisher whose writes join tx. In forwarder mode
// messages are enveloped for the outbox daemon. Schema tables already exist
// once the bus is constructed, so none are created here.
func (q *EventBus) NewTxPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := newSQLPublisher(tx, false, &slogAdapter{log: q.log})
	if err != nil {
		return nil, fmt.Errorf("events: new tx publisher: %w", err)
	}
	if q.useForwarder {
		return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic}), nil
	}
	return pub, nil
}

// PublishTx publishes payload to topic inside tx, so the event is stored if
// and only if the surrounding write commits.
func (q *EventBus) PublishTx(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, version int, payload any) error {
	msg, err := NewJSONMessage(eventID, version, payload)
	if err != nil {
		return err
	}
	injectTrace(ctx, msg)

	pub, err := q.NewTxPublisher(tx)
	if err != nil {
		return err
	}
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("events: publish to %s in tx: %w", topic, err)
	}
	return nil
}

// Publish sends msgs to topic outside any transaction, carrying ctx's trace.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	injectTrace(ctx, msgs...)
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

func injectTrace(ctx context.Context, msgs ...*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

package producer

import (
	"context"

	"go-workforce/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafkago.Writer the relay needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// toMessage keys by aggregate so events of one period or session stay on
// one partition, in order.
func toMessage(e kafka.OutboxEvent) kafkago.Message {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(e.EventType)},
		{Key: "aggregate_type", Value: []byte(e.AggregateType)},
		{Key: "outbox_id", Value: []byte(e.ID)},
	}
	if e.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(e.RequestID)})
	}
	return kafkago.Message{
		Topic:   e.Topic,
		Key:     []byte(e.AggregateID),
		Value:   e.Payload,
		Headers: headers,
	}
}

// Package kafka publishes order integration events to a Kafka broker.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"atelier/internal/core/ports"
	"atelier/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher writes order change events to a Kafka topic using
// segmentio/kafka-go. Messages are keyed by order ID so all events of one
// order land on the same partition and keep their relative order.
type OrderEventPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher for the given broker and topic.
func NewOrderEventPublisher(brokerHost, topic string, logger *slog.Logger) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerHost),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
		logger: logger.With("component", "order_event_publisher"),
	}
}

// PublishOrderChanged sends a single order change event. Failures are logged
// and returned; the caller decides whether they matter.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		metrics.EventsPublishFailedTotal.Inc()
		p.logger.ErrorContext(ctx, "Failed to publish order change event",
			"order_id", event.OrderID, "step", event.Step, "error", err)
		return err
	}

	return nil
}

// Close releases the underlying broker connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NopOrderEventPublisher discards all events. Used when no broker is
// configured.
type NopOrderEventPublisher struct{}

// PublishOrderChanged discards the event.
func (NopOrderEventPublisher) PublishOrderChanged(context.Context, ports.OrderChangedEvent) error {
	return nil
}

// Close is a no-op.
func (NopOrderEventPublisher) Close() error { return nil }

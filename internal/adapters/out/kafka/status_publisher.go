// Package kafka publishes order notifications to the message broker.
// The relay job drains the outbox through this adapter; a failed publish
// leaves the entry pending and is retried on the next run.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"coffeeshop/internal/core/domain/model/notification"

	kafkago "github.com/segmentio/kafka-go"
)

// StatusChangedEvent is the wire format of a relayed notification.
type StatusChangedEvent struct {
	OrderID       string    `json:"order_id"`
	CustomerID    string    `json:"customer_id"`
	Status        string    `json:"status"`
	StatusDisplay string    `json:"status_display"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// StatusChangedPublisher writes notification events to a Kafka topic.
// Messages are keyed by order ID so all events of one order land on the
// same partition and keep their relative order.
type StatusChangedPublisher struct {
	writer *kafkago.Writer
}

// NewStatusChangedPublisher creates a publisher for the given broker host
// and topic.
func NewStatusChangedPublisher(host string, topic string) *StatusChangedPublisher {
	return &StatusChangedPublisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(host),
			Topic:    topic,
			Balancer: &kafkago.LeastBytes{},
		},
	}
}

// Publish serializes the notification and writes it to the topic.
func (p *StatusChangedPublisher) Publish(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	event := StatusChangedEvent{
		OrderID:       n.OrderID().String(),
		CustomerID:    n.CustomerID().String(),
		Status:        n.Status().String(),
		StatusDisplay: n.Status().Display(),
		Title:         n.Title(),
		Message:       n.Message(),
		OccurredAt:    n.CreatedAt(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
}

// Close closes the underlying Kafka writer.
func (p *StatusChangedPublisher) Close() error {
	return p.writer.Close()
}

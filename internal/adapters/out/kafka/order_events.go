// Package kafka implements the outbound order event stream using franz-go.
// Downstream systems (analytics, partner integrations) consume the status
// change topic; fulfillment handlers treat publish failures as best-effort
// and never roll a committed status change back over them.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/twmb/franz-go/pkg/kgo"
)

var _ ports.OrderEventPublisher = (*OrderStatusChangedProducer)(nil)

// statusChangedEvent is the wire format of a status change record. Statuses
// travel as their snake_case wire strings.
type statusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderStatusChangedProducer publishes order status changes to a Kafka topic,
// keyed by order identifier so one order's changes stay in partition order.
type OrderStatusChangedProducer struct {
	client *kgo.Client
	topic  string
}

// NewOrderStatusChangedProducer creates a producer connected to the given
// brokers. Acks from all in-sync replicas are required before a publish is
// considered done.
func NewOrderStatusChangedProducer(brokers []string, topic string) (*OrderStatusChangedProducer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &OrderStatusChangedProducer{
		client: client,
		topic:  topic,
	}, nil
}

// PublishStatusChanged emits a status change record and waits for the broker
// acknowledgement.
func (p *OrderStatusChangedProducer) PublishStatusChanged(
	ctx context.Context,
	orderID kernel.UUID,
	from order.Status,
	to order.Status,
	occurredAt time.Time,
) error {
	event := statusChangedEvent{
		OrderID:    orderID.String(),
		OldStatus:  from.String(),
		NewStatus:  to.String(),
		OccurredAt: occurredAt.UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status change for order %s: %w", orderID, err)
	}

	record := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(event.OrderID),
		Value:     data,
		Timestamp: event.OccurredAt,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte("order_status_changed")},
		},
	}

	if err = p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("publish status change for order %s: %w", orderID, err)
	}

	return nil
}

// Close flushes buffered records and releases the connection.
func (p *OrderStatusChangedProducer) Close() {
	p.client.Close()
}

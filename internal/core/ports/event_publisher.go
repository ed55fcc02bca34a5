package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderEventPublisher defines the outbound stream of order status changes,
// consumed by downstream systems (analytics, partner integrations). Publishes
// are best-effort, the same way NotificationSink writes are.
type OrderEventPublisher interface {
	// PublishStatusChanged emits an event recording that the order moved
	// from one status to another at the given moment.
	PublishStatusChanged(ctx context.Context, orderID kernel.UUID,
		from order.Status, to order.Status, occurredAt time.Time) error

	// Close flushes buffered events and releases the underlying connection.
	Close()
}

// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS architecture.
//
// All commands follow a consistent pattern: validation, a single conditional
// write that both persists the transition and arbitrates concurrent requests,
// then best-effort side effects. Once the conditional write committed, a
// failing side effect is logged and swallowed; it never rolls the status
// change back.
package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"
)

// sideEffects bundles the follow-up actions every committed status change
// triggers: the durable ledger row, the customer notification and the
// outbound stream event. Each is individually failable.
type sideEffects struct {
	ledger        ports.TrackingLedger
	notifications ports.NotificationSink
	publisher     ports.OrderEventPublisher
	logger        *slog.Logger
}

func newSideEffects(
	ledger ports.TrackingLedger,
	notifications ports.NotificationSink,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) sideEffects {
	return sideEffects{
		ledger:        ledger,
		notifications: notifications,
		publisher:     publisher,
		logger:        logger,
	}
}

// recordStatusChange runs the side effects for an order that just moved from
// the given status to its current one. The event is the same observation
// already appended to the order's tracking document. A non-empty
// customMessage replaces the notification body from the per-status table.
func (s sideEffects) recordStatusChange(
	ctx context.Context,
	aggregate *order.Order,
	from order.Status,
	event tracking.Event,
	at time.Time,
	customMessage string,
) {
	if err := s.ledger.Append(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Tracking ledger append failed",
			"orderId", aggregate.ID().String(), "error", err)
	}

	if n, ok := notification.ForStatusChange(aggregate.ID(), aggregate.UserID(), aggregate.Status(), at); ok {
		if err := s.notifications.Notify(ctx, n.WithBody(customMessage)); err != nil {
			s.logger.WarnContext(ctx, "Notification write failed",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}

	if err := s.publisher.PublishStatusChanged(ctx, aggregate.ID(), from, aggregate.Status(), at); err != nil {
		s.logger.WarnContext(ctx, "Order event publish failed",
			"orderId", aggregate.ID().String(), "error", err)
	}
}

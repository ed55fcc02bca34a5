package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler diverts an in-flight order to its terminal
// cancelled status and releases the assigned rider.
type CancelOrderCommandHandler struct {
	orders  ports.OrderRepository
	effects sideEffects
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orders ports.OrderRepository,
	ledger ports.TrackingLedger,
	notifications ports.NotificationSink,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders:  orders,
		effects: newSideEffects(ledger, notifications, publisher, logger.With("component", "cancel_order_handler")),
	}
}

// Handle processes the cancellation command. The conditional write states
// the status the order was read in, so two concurrent cancellations, or a
// cancellation racing a delivery, resolve to exactly one winner.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	now := time.Now().UTC()

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	event, err := tracking.NewEvent(aggregate.ID(), aggregate.Status().String(),
		"Order cancelled", "", tracking.LocationTypeWarehouse, now)
	if err != nil {
		return err
	}
	if err = aggregate.AppendTrackingEvent(event); err != nil {
		return err
	}

	if err = h.orders.TransitionStatus(ctx, aggregate, from); err != nil {
		return err
	}

	h.effects.recordStatusChange(ctx, aggregate, from, event, now, cmd.Reason())

	return nil
}

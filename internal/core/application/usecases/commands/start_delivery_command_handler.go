package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"
)

// StartDeliveryCommandHandler moves a dispatched order out for delivery,
// assigning the rider and stamping the optional courier details onto the
// tracking document.
type StartDeliveryCommandHandler struct {
	orders  ports.OrderRepository
	effects sideEffects
}

// NewStartDeliveryCommandHandler creates a handler for delivery-start
// operations.
func NewStartDeliveryCommandHandler(
	orders ports.OrderRepository,
	ledger ports.TrackingLedger,
	notifications ports.NotificationSink,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		orders:  orders,
		effects: newSideEffects(ledger, notifications, publisher, logger.With("component", "start_delivery_handler")),
	}
}

// Handle processes the delivery-start command. Only a dispatched order can
// go out for delivery; any other status yields
// *errs.PreconditionFailedError, either from the domain check or from the
// conditional write when a concurrent request won the race.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	now := time.Now().UTC()

	var driver *order.Driver
	if info := cmd.Driver(); info != nil {
		driver = &order.Driver{
			ID:    cmd.RiderID(),
			Name:  info.Name,
			Phone: info.Phone,
			Photo: info.Photo,
		}
	}

	if err = aggregate.StartDelivery(cmd.RiderID(), driver, now); err != nil {
		return err
	}

	event, err := tracking.NewEvent(aggregate.ID(), aggregate.Status().String(),
		"Out for delivery", aggregate.Tracking().RegionalHub, tracking.LocationTypeDelivery, now)
	if err != nil {
		return err
	}
	if err = aggregate.AppendTrackingEvent(event); err != nil {
		return err
	}

	if err = h.orders.TransitionStatus(ctx, aggregate, order.Dispatched); err != nil {
		return err
	}

	h.effects.recordStatusChange(ctx, aggregate, from, event, now, "")

	return nil
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CompleteDeliveryCommandHandler moves an order out for delivery into its
// terminal delivered status, recording the doorstep handoff on the tracking
// timeline.
type CompleteDeliveryCommandHandler struct {
	orders   ports.OrderRepository
	barcodes services.BarcodeService
	effects  sideEffects
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery-complete
// operations.
func NewCompleteDeliveryCommandHandler(
	orders ports.OrderRepository,
	barcodes services.BarcodeService,
	ledger ports.TrackingLedger,
	notifications ports.NotificationSink,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		orders:   orders,
		barcodes: barcodes,
		effects:  newSideEffects(ledger, notifications, publisher, logger.With("component", "complete_delivery_handler")),
	}
}

// Handle processes the delivery-complete command. A supplied barcode is
// verified before anything is touched; a mismatch returns
// *errs.VerificationFailedError with zero mutation.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	verified := false
	if cmd.ScannedBarcode() != "" {
		if err = h.barcodes.Verify(aggregate, cmd.ScannedBarcode()); err != nil {
			return err
		}
		verified = true
	}

	from := aggregate.Status()
	now := time.Now().UTC()

	if err = aggregate.CompleteDelivery(cmd.Signature(), now, verified); err != nil {
		return err
	}

	event, err := tracking.NewEvent(aggregate.ID(), aggregate.Status().String(),
		"Delivered", aggregate.Address().String(), tracking.LocationTypeCustomer, now)
	if err != nil {
		return err
	}
	if err = aggregate.AppendTrackingEvent(event); err != nil {
		return err
	}

	if err = h.orders.TransitionStatus(ctx, aggregate, order.OutForDelivery); err != nil {
		return err
	}

	h.effects.recordStatusChange(ctx, aggregate, from, event, now, "")

	return nil
}

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

// StartPackingResult carries the outcome of a pack-start operation back to
// the caller. The barcode is printed on the package and scanned at every
// later checkpoint.
type StartPackingResult struct {
	Barcode string
}

// StartPackingCommandHandler moves a pending order into processing: it stamps
// the packer, mints the handoff barcode and records the first packing
// observation on the tracking timeline.
type StartPackingCommandHandler struct {
	orders   ports.OrderRepository
	barcodes services.BarcodeService
	effects  sideEffects
}

// NewStartPackingCommandHandler creates a handler for pack-start operations.
func NewStartPackingCommandHandler(
	orders ports.OrderRepository,
	barcodes services.BarcodeService,
	ledger ports.TrackingLedger,
	notifications ports.NotificationSink,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) StartPackingCommandHandler {
	return StartPackingCommandHandler{
		orders:   orders,
		barcodes: barcodes,
		effects:  newSideEffects(ledger, notifications, publisher, logger.With("component", "start_packing_handler")),
	}
}

// Handle processes the pack-start command. The status change is persisted
// through a conditional write: if a concurrent request already moved the
// order out of pending, *errs.PreconditionFailedError is returned and
// nothing was modified.
func (h *StartPackingCommandHandler) Handle(ctx context.Context, cmd StartPackingCommand) (StartPackingResult, error) {
	if err := cmd.Validate(); err != nil {
		return StartPackingResult{}, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return StartPackingResult{}, err
	}

	from := aggregate.Status()
	now := time.Now().UTC()
	barcode := h.barcodes.Generate(aggregate.ID())

	if err = aggregate.StartPacking(cmd.PackerID(), barcode, now); err != nil {
		return StartPackingResult{}, err
	}

	event, err := tracking.NewEvent(aggregate.ID(), aggregate.Status().String(),
		"Packing started", "", tracking.LocationTypeWarehouse, now)
	if err != nil {
		return StartPackingResult{}, err
	}
	if err = aggregate.AppendTrackingEvent(event); err != nil {
		return StartPackingResult{}, err
	}

	if err = h.orders.TransitionStatus(ctx, aggregate, order.Pending); err != nil {
		return StartPackingResult{}, err
	}

	h.effects.recordStatusChange(ctx, aggregate, from, event, now, "")

	return StartPackingResult{Barcode: aggregate.Barcode()}, nil
}

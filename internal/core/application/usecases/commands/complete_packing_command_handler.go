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

// CompletePackingCommandHandler moves a processing order into dispatched:
// it optionally verifies the handoff barcode, resolves the regional hub from
// the delivery address and deducts stock for every order line exactly once.
type CompletePackingCommandHandler struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	barcodes services.BarcodeService
	hubs     services.HubResolver
	effects  sideEffects
	logger   *slog.Logger
}

// NewCompletePackingCommandHandler creates a handler for pack-complete
// operations.
func NewCompletePackingCommandHandler(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	barcodes services.BarcodeService,
	hubs services.HubResolver,
	ledger ports.TrackingLedger,
	notifications ports.NotificationSink,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompletePackingCommandHandler {
	logger = logger.With("component", "complete_packing_handler")
	return CompletePackingCommandHandler{
		orders:   orders,
		products: products,
		barcodes: barcodes,
		hubs:     hubs,
		effects:  newSideEffects(ledger, notifications, publisher, logger),
		logger:   logger,
	}
}

// Handle processes the pack-complete command.
//
// A supplied barcode is verified before anything is touched; a mismatch
// returns *errs.VerificationFailedError with zero mutation. Stock deduction
// happens after the conditional status write committed, so a lost
// concurrency race can never deduct twice. Understocked lines are skipped
// and logged rather than failing the handoff.
func (h *CompletePackingCommandHandler) Handle(ctx context.Context, cmd CompletePackingCommand) error {
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
	hub := h.hubs.Resolve(aggregate.Address())

	if err = aggregate.CompletePacking(hub, now, verified); err != nil {
		return err
	}

	event, err := tracking.NewEvent(aggregate.ID(), aggregate.Status().String(),
		"Order dispatched", hub, tracking.LocationTypeWarehouse, now)
	if err != nil {
		return err
	}
	if err = aggregate.AppendTrackingEvent(event); err != nil {
		return err
	}

	if err = h.orders.TransitionStatus(ctx, aggregate, order.Processing); err != nil {
		return err
	}

	h.deductStock(ctx, aggregate)
	h.effects.recordStatusChange(ctx, aggregate, from, event, now, "")

	return nil
}

// deductStock decrements inventory for each order line. The decrement is
// guarded at the storage level; a line whose product can no longer cover the
// quantity is skipped, never driven negative.
func (h *CompletePackingCommandHandler) deductStock(ctx context.Context, aggregate *order.Order) {
	for _, item := range aggregate.Items() {
		deducted, err := h.products.DeductStock(ctx, item.ProductID(), item.Quantity())
		if err != nil {
			h.logger.WarnContext(ctx, "Stock deduction failed",
				"orderId", aggregate.ID().String(),
				"productId", item.ProductID().String(),
				"error", err)
			continue
		}
		if !deducted {
			h.logger.WarnContext(ctx, "Stock deduction skipped, product understocked",
				"orderId", aggregate.ID().String(),
				"productId", item.ProductID().String(),
				"quantity", item.Quantity())
		}
	}
}

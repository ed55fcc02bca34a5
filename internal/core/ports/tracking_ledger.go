package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
)

// TrackingLedger defines the append-only store of tracking events. Rows are
// never updated or deleted; the timeline a customer sees is the ledger read
// back in timestamp order.
type TrackingLedger interface {
	// Append persists a single tracking event.
	Append(ctx context.Context, event tracking.Event) error

	// AppendBatch persists a batch of events for one order in one call.
	// Events carrying a zero timestamp are stamped on write with strictly
	// increasing times, so a batch appended together still reads back in
	// its original order.
	AppendBatch(ctx context.Context, events []tracking.Event) error

	// ListByOrder retrieves all events for the order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]tracking.Event, error)
}

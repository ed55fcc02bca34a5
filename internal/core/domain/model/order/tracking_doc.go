package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
)

// Tracking is the mutable tracking document owned exclusively by the
// fulfillment subsystem. Unlike the rest of the aggregate it is a plain value
// type with named optional fields: every write to it is an explicit field
// assignment performed by an Order method during a status transition, so
// nothing outside this package merges or clobbers it ad hoc.
//
// All fields start unset. The barcode is assigned exactly once at pack-start
// and never changes; every later verification checkpoint compares against the
// same value. Events are duplicated here from the durable ledger so the
// customer-facing view can be served from the order row alone.
type Tracking struct {
	// Barcode is the handoff token generated at pack-start, immutable thereafter.
	Barcode string

	PackingStartedAt   *time.Time
	PackerID           *kernel.UUID
	PackingCompletedAt *time.Time

	// PackingVerifiedByBarcode records whether the pack-complete scan check
	// was actually performed, not whether it passed: a mismatch aborts the
	// operation before any mutation.
	PackingVerifiedByBarcode bool

	// RegionalHub is the transit waypoint resolved from the delivery address
	// at pack-complete, used only for display and estimation.
	RegionalHub string

	DeliveryStartedAt *time.Time
	Driver            *Driver

	// DeliveryVerifiedByBarcode records whether the deliver-complete scan
	// check was actually performed.
	DeliveryVerifiedByBarcode bool

	DeliveredAt *time.Time
	Signature   string

	// Events is the per-order copy of the tracking ledger, append-only.
	Events []tracking.Event
}

// Driver holds the customer-facing details of the rider carrying an order,
// stamped onto the tracking document at delivery-start.
type Driver struct {
	ID    kernel.UUID
	Name  string
	Phone string
	Photo string
}

// Package ports defines the contracts between the application core and the
// outside world: persistence for orders, products, the tracking ledger and
// notifications, plus the outbound event stream. Adapters implement these
// interfaces; handlers depend on nothing else.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Status changes go through TransitionStatus, a single conditional write that
// both persists the new state and arbitrates concurrent operations: the row
// is updated only while it still carries the status the caller read. There is
// no unconditional Update; every mutation states the status it expects.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders in a non-terminal status, ordered by
	// creation time. Used by tracking queries and the transit simulation job.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// TransitionStatus persists the aggregate's current state on the condition
	// that the stored row still carries the from status. When another request
	// moved the order first, no row matches and *errs.PreconditionFailedError
	// is returned; the aggregate's in-memory state is then stale and must be
	// discarded.
	TransitionStatus(ctx context.Context, aggregate *order.Order, from order.Status) error

	// UpdateAssignedRider persists only the aggregate's rider assignment,
	// leaving status and tracking untouched. The write is conditional on the
	// order not being in a terminal status.
	UpdateAssignedRider(ctx context.Context, aggregate *order.Order) error
}

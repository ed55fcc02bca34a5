package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetTrackingEventsQueryIsNotConstructed = errors.New(
	"GetTrackingEventsQuery must be created via NewGetTrackingEventsQuery constructor",
)

// GetTrackingEventsQuery retrieves one order's full tracking timeline from
// the durable ledger, oldest observation first.
type GetTrackingEventsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingEventsQuery creates a query for one order's ledger timeline.
func NewGetTrackingEventsQuery(orderID kernel.UUID) (GetTrackingEventsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTrackingEventsQuery{}, err
	}

	return GetTrackingEventsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingEventsQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q GetTrackingEventsQuery) OrderID() kernel.UUID {
	return q.orderID
}

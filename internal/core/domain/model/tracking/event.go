package tracking

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Event is an immutable fact recording that an order was observed in a given
// status at a given location. Events are never edited or deleted once created;
// the ledger for an order only grows.
//
// The timestamp may be left zero at construction time, in which case the
// ledger assigns one on append (a monotonically increasing synthetic timestamp
// for batches, so read-order is preserved).
type Event struct {
	id           kernel.UUID
	orderID      kernel.UUID
	status       string
	description  string
	location     string
	locationType LocationType
	timestamp    time.Time

	isConstructed bool
}

// NewEvent creates a tracking event for an order. The status is the order's
// wire status string at the time of the observation; location is optional
// free-form text (hub name, street, ...).
func NewEvent(
	orderID kernel.UUID,
	status string,
	description string,
	location string,
	locationType LocationType,
	timestamp time.Time,
) (Event, error) {
	if err := errors.Join(
		validateOrderID(orderID),
		validateStatus(status),
		locationType.Validate(),
	); err != nil {
		return Event{}, err
	}

	return Event{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		status:        status,
		description:   description,
		location:      location,
		locationType:  locationType,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence, keeping its original
// identifier and timestamp.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	status string,
	description string,
	location string,
	locationType LocationType,
	timestamp time.Time,
) (Event, error) {
	if err := errors.Join(
		id.Validate(),
		validateOrderID(orderID),
		validateStatus(status),
		locationType.Validate(),
	); err != nil {
		return Event{}, err
	}

	return Event{
		id:            id,
		orderID:       orderID,
		status:        status,
		description:   description,
		location:      location,
		locationType:  locationType,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event was created through a constructor.
func (e Event) Validate() error {
	if !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e Event) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the event belongs to.
func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

// Status returns the order's wire status string at the time of the event.
func (e Event) Status() string {
	return e.status
}

// Description returns the customer-facing description of the event.
func (e Event) Description() string {
	return e.description
}

// Location returns the free-form location text, which may be empty.
func (e Event) Location() string {
	return e.location
}

// LocationType returns where along the fulfillment chain the event originated.
func (e Event) LocationType() LocationType {
	return e.locationType
}

// Timestamp returns when the event happened. A zero timestamp means "assign
// on append".
func (e Event) Timestamp() time.Time {
	return e.timestamp
}

// WithTimestamp returns a copy of the event carrying the given timestamp.
// Used by the ledger to assign synthetic timestamps to batch appends; the
// receiver is unchanged.
func (e Event) WithTimestamp(ts time.Time) Event {
	e.timestamp = ts
	return e
}

func validateOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return nil
}

func validateStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

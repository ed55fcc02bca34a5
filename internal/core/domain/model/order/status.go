package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the fulfillment
// workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Dispatched ──> OutForDelivery ──> Delivered
//	   │             │              │                │
//	   └─────────────┴──────────────┴────────────────┴──> Cancelled
//
// The status only ever advances forward along the chain, or diverts to
// Cancelled from any non-terminal state. No backward transition exists.
// Delivered and Cancelled are terminal.
//
// Status is a value object that validates state transitions and provides the
// wire strings used for persistence and customer-facing display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by checkout. Orders in this
	// status are waiting for a warehouse packer to pick them up.
	Pending

	// Processing indicates a packer has started packing the order.
	// The handoff barcode is generated on entry to this status.
	Processing

	// Dispatched indicates packing is complete, inventory has been deducted
	// and the package has left the warehouse toward its regional hub.
	Dispatched

	// OutForDelivery indicates a rider has picked up the package and is
	// carrying it to the customer.
	OutForDelivery

	// Delivered indicates the customer has received the package.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// Reachable from any non-terminal state; terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Processing:     "processing",
		Dispatched:     "dispatched",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Processing:     "processing",
		Dispatched:     "dispatched",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// Validate checks if the Status value is one of the declared constants.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "processing",
// "dispatched", "out_for_delivery", "delivered", "cancelled"), or "unknown"
// for invalid values. This is the form persisted in tracking events and
// rendered to customers.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the wire name of a status. Used when reconstructing
// orders or events from external representations.
func StatusFromString(str string) (Status, error) {
	for s, name := range getValidStatusStrings() {
		if name == str {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// StartPacking transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing
//
// Returns (0, error) if the order is not in Pending status; two packers racing
// on the same order observe exactly one success through the conditional write
// built on this check.
func (s Status) StartPacking() (Status, error) {
	if s != Pending {
		return 0, invalidTransition(s, Processing)
	}
	return Processing, nil
}

// CompletePacking transitions the status to Dispatched.
//
// Valid transitions:
//   - Processing -> Dispatched
func (s Status) CompletePacking() (Status, error) {
	if s != Processing {
		return 0, invalidTransition(s, Dispatched)
	}
	return Dispatched, nil
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Dispatched -> OutForDelivery
func (s Status) StartDelivery() (Status, error) {
	if s != Dispatched {
		return 0, invalidTransition(s, OutForDelivery)
	}
	return OutForDelivery, nil
}

// CompleteDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered
func (s Status) CompleteDelivery() (Status, error) {
	if s != OutForDelivery {
		return 0, invalidTransition(s, Delivered)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions: any non-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, invalidTransition(s, Cancelled)
	}
	return Cancelled, nil
}

func invalidTransition(from Status, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
		fmt.Errorf("cannot move from %s to %s", from, to))
}

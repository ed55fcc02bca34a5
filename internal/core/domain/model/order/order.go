package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrBarcodeIsRequired is returned when a packing transition is attempted
	// without a generated handoff barcode.
	ErrBarcodeIsRequired = errs.NewValueIsRequiredError("barcode")
)

// Order is the aggregate root of the fulfillment subsystem. It carries the
// order's identity, its immutable line items and delivery address, the
// current lifecycle status, the optional rider assignment and the tracking
// document.
//
// Order enforces these invariants:
//   - Status only advances forward through pending -> processing -> dispatched
//     -> out_for_delivery -> delivered, or diverts to cancelled from any
//     non-terminal state.
//   - The handoff barcode is assigned exactly once, at pack-start, and is
//     immutable thereafter.
//   - Items and delivery address are fixed at creation.
//
// The in-memory transition methods validate preconditions and stamp the
// tracking document; the persistence adapter turns the resulting state into a
// single conditional write ("set status to X only if it is still Y"), which is
// what actually arbitrates between concurrent actors. A transition that
// succeeds here can still lose that race and surface PreconditionFailed.
type Order struct {
	id         kernel.UUID
	userID     kernel.UUID
	address    kernel.Address
	items      []Item
	status     Status
	assignedTo *kernel.UUID
	tracking   Tracking

	isConstructed bool
}

// NewOrder creates an Order in Pending status with an empty tracking document.
// Checkout is the only caller; the fulfillment operations themselves never
// create orders.
func NewOrder(id kernel.UUID, userID kernel.UUID, address kernel.Address, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setAddress(address),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, rider assignment and tracking document.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	address kernel.Address,
	items []Item,
	status Status,
	assignedTo *kernel.UUID,
	trackingDoc Tracking,
) (*Order, error) {
	order := &Order{
		tracking:      trackingDoc,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setAddress(address),
		order.setItems(items),
		order.setStatus(status),
		order.setAssignedTo(assignedTo),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer owning the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Address returns the immutable delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Items returns the order lines fixed at creation.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AssignedTo returns the assigned rider's ID, or nil if unassigned.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// Tracking returns the tracking document.
func (o *Order) Tracking() Tracking {
	return o.tracking
}

// Barcode returns the handoff token, empty until pack-start.
func (o *Order) Barcode() string {
	return o.tracking.Barcode
}

// StartPacking moves the order from Pending to Processing, stamping the
// packer's identity, the pack-start time and the freshly generated handoff
// barcode. The barcode is only accepted while the tracking document carries
// none: it is assigned exactly once per order.
func (o *Order) StartPacking(packerID kernel.UUID, barcode string, at time.Time) error {
	if err := packerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("packerId", err)
	}
	if barcode == "" {
		return ErrBarcodeIsRequired
	}

	newStatus, err := o.status.StartPacking()
	if err != nil {
		return o.preconditionFailed("startPacking", Pending, err)
	}

	o.status = newStatus
	if o.tracking.Barcode == "" {
		o.tracking.Barcode = barcode
	}
	o.tracking.PackerID = &packerID
	o.tracking.PackingStartedAt = &at
	return nil
}

// CompletePacking moves the order from Processing to Dispatched, recording the
// resolved regional hub, the completion time and whether the barcode scan
// check was performed. Barcode verification itself happens before this method
// is called; a mismatch must abort the operation without touching the order.
func (o *Order) CompletePacking(hub string, at time.Time, verifiedByBarcode bool) error {
	newStatus, err := o.status.CompletePacking()
	if err != nil {
		return o.preconditionFailed("completePacking", Processing, err)
	}

	o.status = newStatus
	o.tracking.RegionalHub = hub
	o.tracking.PackingCompletedAt = &at
	o.tracking.PackingVerifiedByBarcode = verifiedByBarcode
	return nil
}

// StartDelivery moves the order from Dispatched to OutForDelivery, assigning
// the rider and stamping the optional driver details onto the tracking
// document.
func (o *Order) StartDelivery(riderID kernel.UUID, driver *Driver, at time.Time) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return o.preconditionFailed("startDelivery", Dispatched, err)
	}

	o.status = newStatus
	o.assignedTo = &riderID
	o.tracking.DeliveryStartedAt = &at
	o.tracking.Driver = driver
	return nil
}

// CompleteDelivery moves the order from OutForDelivery to Delivered, stamping
// the delivery time, the optional signature and whether the barcode scan
// check was performed. The order becomes immutable afterwards.
func (o *Order) CompleteDelivery(signature string, at time.Time, verifiedByBarcode bool) error {
	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return o.preconditionFailed("completeDelivery", OutForDelivery, err)
	}

	o.status = newStatus
	o.tracking.DeliveredAt = &at
	o.tracking.Signature = signature
	o.tracking.DeliveryVerifiedByBarcode = verifiedByBarcode
	return nil
}

// AssignRider sets the rider reference without changing the status. Valid in
// any non-terminal state.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}
	if o.status.IsTerminal() {
		return errs.NewPreconditionFailedError("assignRider", o.id.String(), "non-terminal")
	}

	o.assignedTo = &riderID
	return nil
}

// Cancel diverts the order to Cancelled from any non-terminal state and
// clears the rider assignment. Cancellation is not gated by barcode
// verification.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return errs.NewPreconditionFailedErrorWithCause("cancelOrder", o.id.String(), "non-terminal", err)
	}

	o.status = newStatus
	o.assignedTo = nil
	return nil
}

// AppendTrackingEvent appends an event to the tracking document's per-order
// copy of the ledger. The document copy rides the same conditional write as
// the status change; the durable ledger row is appended separately.
func (o *Order) AppendTrackingEvent(event tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	o.tracking.Events = append(o.tracking.Events, event)
	return nil
}

func (o *Order) preconditionFailed(operation string, expected Status, cause error) error {
	return errs.NewPreconditionFailedErrorWithCause(operation, o.id.String(), expected.String(), cause)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAssignedTo(assignedTo *kernel.UUID) error {
	if assignedTo == nil {
		return nil
	}
	if err := assignedTo.Validate(); err != nil {
		return err
	}
	o.assignedTo = assignedTo
	return nil
}

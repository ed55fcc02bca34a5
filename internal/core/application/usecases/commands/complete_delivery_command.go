package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrCompleteDeliveryCommandIsNotConstructed is returned when the command is
// used without being created through its constructor.
var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a rider's request to mark a package as
// handed to the customer. On success the order reaches its terminal
// delivered status.
//
// The scanned barcode and the signature are both optional. A supplied
// barcode is verified against the stored one and a mismatch aborts the
// operation; an empty barcode records that the doorstep scan was skipped.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	riderID        kernel.UUID
	scannedBarcode string
	signature      string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete delivering an
// order. scannedBarcode and signature may be empty.
func NewCompleteDeliveryCommand(orderID kernel.UUID, riderID kernel.UUID,
	scannedBarcode string, signature string) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		scannedBarcode: scannedBarcode,
		signature:      signature,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the identifier of the delivering rider.
func (c CompleteDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

// ScannedBarcode returns the barcode scanned at the doorstep, empty when the
// scan was skipped.
func (c CompleteDeliveryCommand) ScannedBarcode() string {
	return c.scannedBarcode
}

// Signature returns the customer's acknowledgement, empty when none was
// collected.
func (c CompleteDeliveryCommand) Signature() string {
	return c.signature
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

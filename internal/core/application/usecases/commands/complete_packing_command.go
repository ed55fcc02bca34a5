package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrCompletePackingCommandIsNotConstructed is returned when the command is
// used without being created through its constructor.
var ErrCompletePackingCommandIsNotConstructed = errors.New(
	"CompletePackingCommand must be created via NewCompletePackingCommand constructor",
)

// CompletePackingCommand represents a packer's request to close out packing
// and hand the package to logistics. On success the order moves from
// processing to dispatched, stock for its lines is deducted and the regional
// hub is resolved.
//
// The scanned barcode is optional: a supplied value is verified against the
// one stored at pack-start and a mismatch aborts the operation, while an
// empty value skips the check and records that the scan was skipped.
type CompletePackingCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	packerID       kernel.UUID
	scannedBarcode string

	guard guard.ConstructorGuard
}

// NewCompletePackingCommand creates a command to complete packing an order.
// scannedBarcode may be empty to skip barcode verification.
func NewCompletePackingCommand(orderID kernel.UUID, packerID kernel.UUID, scannedBarcode string) (CompletePackingCommand, error) {
	cmd := CompletePackingCommand{
		scannedBarcode: scannedBarcode,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPackerID(packerID),
	); err != nil {
		return CompletePackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePackingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePackingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being packed.
func (c CompletePackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PackerID returns the identifier of the warehouse packer.
func (c CompletePackingCommand) PackerID() kernel.UUID {
	return c.packerID
}

// ScannedBarcode returns the scanned handoff barcode, empty when the scan
// was skipped.
func (c CompletePackingCommand) ScannedBarcode() string {
	return c.scannedBarcode
}

func (c *CompletePackingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompletePackingCommand) setPackerID(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}

	c.packerID = packerID
	return nil
}

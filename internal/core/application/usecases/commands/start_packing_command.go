package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrStartPackingCommandIsNotConstructed is returned when the command is used
// without being created through its constructor.
var ErrStartPackingCommandIsNotConstructed = errors.New(
	"StartPackingCommand must be created via NewStartPackingCommand constructor",
)

// StartPackingCommand represents a packer's request to begin packing an
// order. On success the order moves from pending to processing and receives
// its handoff barcode.
//
// Example:
//
//	cmd, err := NewStartPackingCommand(orderID, packerID)
//	if err != nil {
//	    return fmt.Errorf("invalid packing request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Print this barcode on the package: %s", result.Barcode)
type StartPackingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	packerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPackingCommand creates a command to begin packing an order.
// Both identifiers must be valid, non-zero UUIDs.
func NewStartPackingCommand(orderID kernel.UUID, packerID kernel.UUID) (StartPackingCommand, error) {
	cmd := StartPackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPackerID(packerID),
	); err != nil {
		return StartPackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPackingCommand) Validate() error {
	return c.guard.Validate(ErrStartPackingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pack.
func (c StartPackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PackerID returns the identifier of the warehouse packer.
func (c StartPackingCommand) PackerID() kernel.UUID {
	return c.packerID
}

func (c *StartPackingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartPackingCommand) setPackerID(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}

	c.packerID = packerID
	return nil
}

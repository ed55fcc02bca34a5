package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrAssignRiderCommandIsNotConstructed is returned when the command is used
// without being created through its constructor.
var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a dispatcher's request to pre-assign a rider
// to an order. Assignment only bookmarks the rider; it never changes the
// order's status or its tracking document.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to an order.
func NewAssignRiderCommand(orderID kernel.UUID, riderID kernel.UUID) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the identifier of the rider taking the order.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *AssignRiderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

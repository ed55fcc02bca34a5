package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrStartDeliveryCommandIsNotConstructed is returned when the command is
// used without being created through its constructor.
var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// DriverInfo carries the optional courier details shown to the customer
// while the order is out for delivery.
type DriverInfo struct {
	Name  string
	Phone string
	Photo string
}

// StartDeliveryCommand represents a rider's request to take a dispatched
// package out for delivery. On success the order moves from dispatched to
// out_for_delivery and the rider becomes its assignee.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID
	driver  *DriverInfo

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start delivering an order.
// driver may be nil when no courier details are available.
func NewStartDeliveryCommand(orderID kernel.UUID, riderID kernel.UUID, driver *DriverInfo) (StartDeliveryCommand, error) {
	cmd := StartDeliveryCommand{
		driver: driver,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c StartDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the identifier of the delivering rider.
func (c StartDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Driver returns the optional courier details, nil when absent.
func (c StartDeliveryCommand) Driver() *DriverInfo {
	return c.driver
}

func (c *StartDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartDeliveryCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

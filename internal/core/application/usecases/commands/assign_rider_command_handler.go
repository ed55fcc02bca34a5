package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// AssignRiderCommandHandler sets the rider reference on an order. The write
// touches only the assignment column, so a concurrent status change or a
// packer updating the tracking document is never clobbered.
type AssignRiderCommandHandler struct {
	orders ports.OrderRepository
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(orders ports.OrderRepository) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		orders: orders,
	}
}

// Handle processes the rider assignment command. Assignment is valid in any
// non-terminal status; a delivered or cancelled order yields
// *errs.PreconditionFailedError.
func (h *AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignRider(cmd.RiderID()); err != nil {
		return err
	}

	return h.orders.UpdateAssignedRider(ctx, aggregate)
}

package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand represents a request to move an order's primary status
// to a target state, including cancellation.
type AdvanceStatusCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	target  order.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to advance an order's status.
// The reason is only meaningful for cancellation; the aggregate enforces its
// presence there.
func NewAdvanceStatusCommand(orderID kernel.UUID, actor kernel.Actor, target order.Status, reason string) (AdvanceStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), target.Validate()); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return AdvanceStatusCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AdvanceStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c AdvanceStatusCommand) Actor() kernel.Actor { return c.actor }

// Target returns the requested primary status.
func (c AdvanceStatusCommand) Target() order.Status { return c.target }

// Reason returns the cancellation reason, if any.
func (c AdvanceStatusCommand) Reason() string { return c.reason }

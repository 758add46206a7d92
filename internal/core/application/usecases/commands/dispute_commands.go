package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrOpenDisputeCommandIsNotConstructed = errors.New(
		"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
	)
	ErrResolveDisputeCommandIsNotConstructed = errors.New(
		"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
	)
	ErrDisputeReasonIsRequired = errs.NewValueIsRequiredError("dispute reason")
	ErrResolutionIsRequired    = errs.NewValueIsRequiredError("resolution")
	ErrDisputeTargetIsInvalid  = errs.NewValueIsInvalidErrorWithCause("dispute target", errors.New("must be resolved or rejected"))
)

// OpenDisputeCommand represents a party raising a dispute against an order.
type OpenDisputeCommand struct {
	orderID     kernel.UUID
	actor       kernel.Actor
	disputeID   kernel.UUID
	reason      string
	description string
	attachments []string

	guard guard.ConstructorGuard
}

// NewOpenDisputeCommand creates a command to open a dispute.
func NewOpenDisputeCommand(orderID kernel.UUID, actor kernel.Actor, disputeID kernel.UUID, reason, description string, attachments []string) (OpenDisputeCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), disputeID.Validate()); err != nil {
		return OpenDisputeCommand{}, err
	}
	if reason == "" {
		return OpenDisputeCommand{}, ErrDisputeReasonIsRequired
	}

	return OpenDisputeCommand{
		orderID:     orderID,
		actor:       actor,
		disputeID:   disputeID,
		reason:      reason,
		description: description,
		attachments: attachments,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c OpenDisputeCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c OpenDisputeCommand) Actor() kernel.Actor { return c.actor }

// DisputeID returns the identifier for the new dispute.
func (c OpenDisputeCommand) DisputeID() kernel.UUID { return c.disputeID }

// Reason returns the short cause of the dispute.
func (c OpenDisputeCommand) Reason() string { return c.reason }

// Description returns the raiser's full account.
func (c OpenDisputeCommand) Description() string { return c.description }

// Attachments returns evidence URLs attached by the raiser.
func (c OpenDisputeCommand) Attachments() []string { return c.attachments }

// ResolveDisputeCommand represents closing a dispute as resolved or rejected.
type ResolveDisputeCommand struct {
	orderID    kernel.UUID
	actor      kernel.Actor
	disputeID  kernel.UUID
	target     order.DisputeStatus
	resolution string

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to close a dispute.
func NewResolveDisputeCommand(orderID kernel.UUID, actor kernel.Actor, disputeID kernel.UUID, target order.DisputeStatus, resolution string) (ResolveDisputeCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), disputeID.Validate()); err != nil {
		return ResolveDisputeCommand{}, err
	}
	if target != order.DisputeResolved && target != order.DisputeRejected {
		return ResolveDisputeCommand{}, ErrDisputeTargetIsInvalid
	}
	if resolution == "" {
		return ResolveDisputeCommand{}, ErrResolutionIsRequired
	}

	return ResolveDisputeCommand{
		orderID:    orderID,
		actor:      actor,
		disputeID:  disputeID,
		target:     target,
		resolution: resolution,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ResolveDisputeCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c ResolveDisputeCommand) Actor() kernel.Actor { return c.actor }

// DisputeID returns the dispute being closed.
func (c ResolveDisputeCommand) DisputeID() kernel.UUID { return c.disputeID }

// Target returns the closing state, resolved or rejected.
func (c ResolveDisputeCommand) Target() order.DisputeStatus { return c.target }

// Resolution returns the mandatory resolution text.
func (c ResolveDisputeCommand) Resolution() string { return c.resolution }

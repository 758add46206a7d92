package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrRequestAlterationCommandIsNotConstructed = errors.New(
		"RequestAlterationCommand must be created via NewRequestAlterationCommand constructor",
	)
	ErrReviewAlterationCommandIsNotConstructed = errors.New(
		"ReviewAlterationCommand must be created via NewReviewAlterationCommand constructor",
	)
	ErrAlterationDescriptionIsRequired = errs.NewValueIsRequiredError("alteration description")
	ErrAlterationTargetIsInvalid       = errs.NewValueIsInvalidErrorWithCause("alteration target", errors.New("must be approved, rejected, in_progress, or completed"))
)

// RequestAlterationCommand represents a customer change request on an
// existing garment.
type RequestAlterationCommand struct {
	orderID      kernel.UUID
	actor        kernel.Actor
	alterationID kernel.UUID
	description  string
	urgency      order.Urgency

	guard guard.ConstructorGuard
}

// NewRequestAlterationCommand creates a command to request an alteration.
func NewRequestAlterationCommand(orderID kernel.UUID, actor kernel.Actor, alterationID kernel.UUID, description string, urgency order.Urgency) (RequestAlterationCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), alterationID.Validate(), urgency.Validate()); err != nil {
		return RequestAlterationCommand{}, err
	}
	if description == "" {
		return RequestAlterationCommand{}, ErrAlterationDescriptionIsRequired
	}

	return RequestAlterationCommand{
		orderID:      orderID,
		actor:        actor,
		alterationID: alterationID,
		description:  description,
		urgency:      urgency,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestAlterationCommand) Validate() error {
	return c.guard.Validate(ErrRequestAlterationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RequestAlterationCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c RequestAlterationCommand) Actor() kernel.Actor { return c.actor }

// AlterationID returns the identifier for the new alteration request.
func (c RequestAlterationCommand) AlterationID() kernel.UUID { return c.alterationID }

// Description returns what the customer asked to alter.
func (c RequestAlterationCommand) Description() string { return c.description }

// Urgency returns how quickly the customer needs the alteration.
func (c RequestAlterationCommand) Urgency() order.Urgency { return c.urgency }

// ReviewAlterationCommand moves an alteration through its machine towards the
// given target state. Approval carries the fulfiller's estimates.
type ReviewAlterationCommand struct {
	orderID       kernel.UUID
	actor         kernel.Actor
	alterationID  kernel.UUID
	target        order.AlterationStatus
	estimatedCost kernel.Money
	estimatedTime string

	guard guard.ConstructorGuard
}

// NewReviewAlterationCommand creates a command to review an alteration.
func NewReviewAlterationCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	alterationID kernel.UUID,
	target order.AlterationStatus,
	estimatedCost kernel.Money,
	estimatedTime string,
) (ReviewAlterationCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), alterationID.Validate()); err != nil {
		return ReviewAlterationCommand{}, err
	}
	switch target {
	case order.AlterationApproved, order.AlterationRejected, order.AlterationInProgress, order.AlterationCompleted:
	default:
		return ReviewAlterationCommand{}, ErrAlterationTargetIsInvalid
	}

	return ReviewAlterationCommand{
		orderID:       orderID,
		actor:         actor,
		alterationID:  alterationID,
		target:        target,
		estimatedCost: estimatedCost,
		estimatedTime: estimatedTime,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewAlterationCommand) Validate() error {
	return c.guard.Validate(ErrReviewAlterationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ReviewAlterationCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c ReviewAlterationCommand) Actor() kernel.Actor { return c.actor }

// AlterationID returns the alteration being reviewed.
func (c ReviewAlterationCommand) AlterationID() kernel.UUID { return c.alterationID }

// Target returns the requested alteration state.
func (c ReviewAlterationCommand) Target() order.AlterationStatus { return c.target }

// EstimatedCost returns the fulfiller's cost estimate for approval.
func (c ReviewAlterationCommand) EstimatedCost() kernel.Money { return c.estimatedCost }

// EstimatedTime returns the fulfiller's time estimate for approval.
func (c ReviewAlterationCommand) EstimatedTime() string { return c.estimatedTime }

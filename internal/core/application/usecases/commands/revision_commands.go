package commands

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrOpenRevisionCommandIsNotConstructed = errors.New(
		"OpenRevisionCommand must be created via NewOpenRevisionCommand constructor",
	)
	ErrReviewRevisionCommandIsNotConstructed = errors.New(
		"ReviewRevisionCommand must be created via NewReviewRevisionCommand constructor",
	)
	ErrRevisionDescriptionIsRequired = errs.NewValueIsRequiredError("revision description")
)

// RevisionAction is the verb a review command applies to a revision.
type RevisionAction string

const (
	RevisionActionApprove         RevisionAction = "approve"
	RevisionActionReject          RevisionAction = "reject"
	RevisionActionStart           RevisionAction = "start"
	RevisionActionComplete        RevisionAction = "complete"
	RevisionActionCustomerApprove RevisionAction = "customer_approve"
	RevisionActionCustomerReject  RevisionAction = "customer_reject"
)

// RevisionActionFromString parses a revision action verb.
func RevisionActionFromString(s string) (RevisionAction, error) {
	switch a := RevisionAction(s); a {
	case RevisionActionApprove, RevisionActionReject, RevisionActionStart,
		RevisionActionComplete, RevisionActionCustomerApprove, RevisionActionCustomerReject:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("revision action",
			fmt.Errorf("%q is not a valid revision action", s))
	}
}

// OpenRevisionCommand represents a customer request to revise an in-flight order.
type OpenRevisionCommand struct {
	orderID     kernel.UUID
	actor       kernel.Actor
	revisionID  kernel.UUID
	description string
	images      []string

	guard guard.ConstructorGuard
}

// NewOpenRevisionCommand creates a command to open a revision.
func NewOpenRevisionCommand(orderID kernel.UUID, actor kernel.Actor, revisionID kernel.UUID, description string, images []string) (OpenRevisionCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), revisionID.Validate()); err != nil {
		return OpenRevisionCommand{}, err
	}
	if description == "" {
		return OpenRevisionCommand{}, ErrRevisionDescriptionIsRequired
	}

	return OpenRevisionCommand{
		orderID:     orderID,
		actor:       actor,
		revisionID:  revisionID,
		description: description,
		images:      images,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenRevisionCommand) Validate() error {
	return c.guard.Validate(ErrOpenRevisionCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c OpenRevisionCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c OpenRevisionCommand) Actor() kernel.Actor { return c.actor }

// RevisionID returns the identifier for the new revision.
func (c OpenRevisionCommand) RevisionID() kernel.UUID { return c.revisionID }

// Description returns what the customer asked to change.
func (c OpenRevisionCommand) Description() string { return c.description }

// Images returns the reference image URLs attached to the request.
func (c OpenRevisionCommand) Images() []string { return c.images }

// ReviewRevisionCommand applies one lifecycle verb to an existing revision:
// the fulfiller's approve/reject/start/complete or the customer's verdict.
// Note carries the rejection reason or completion notes, depending on the verb.
type ReviewRevisionCommand struct {
	orderID    kernel.UUID
	actor      kernel.Actor
	revisionID kernel.UUID
	action     RevisionAction
	note       string

	guard guard.ConstructorGuard
}

// NewReviewRevisionCommand creates a command to move a revision through its machine.
func NewReviewRevisionCommand(orderID kernel.UUID, actor kernel.Actor, revisionID kernel.UUID, action RevisionAction, note string) (ReviewRevisionCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), revisionID.Validate()); err != nil {
		return ReviewRevisionCommand{}, err
	}
	if _, err := RevisionActionFromString(string(action)); err != nil {
		return ReviewRevisionCommand{}, err
	}

	return ReviewRevisionCommand{
		orderID:    orderID,
		actor:      actor,
		revisionID: revisionID,
		action:     action,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewRevisionCommand) Validate() error {
	return c.guard.Validate(ErrReviewRevisionCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ReviewRevisionCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c ReviewRevisionCommand) Actor() kernel.Actor { return c.actor }

// RevisionID returns the revision being reviewed.
func (c ReviewRevisionCommand) RevisionID() kernel.UUID { return c.revisionID }

// Action returns the lifecycle verb to apply.
func (c ReviewRevisionCommand) Action() RevisionAction { return c.action }

// Note returns the rejection reason or completion notes for the verb.
func (c ReviewRevisionCommand) Note() string { return c.note }

package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrAddMilestoneCommandIsNotConstructed = errors.New(
		"AddMilestoneCommand must be created via NewAddMilestoneCommand constructor",
	)
	ErrMarkMilestonePaidCommandIsNotConstructed = errors.New(
		"MarkMilestonePaidCommand must be created via NewMarkMilestonePaidCommand constructor",
	)
	ErrDueDateIsRequired = errs.NewValueIsRequiredError("due date")
)

// AddMilestoneCommand represents a request to schedule a partial payment.
type AddMilestoneCommand struct {
	orderID       kernel.UUID
	actor         kernel.Actor
	milestoneID   kernel.UUID
	kind          order.MilestoneKind
	amount        kernel.Money
	dueDate       time.Time
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewAddMilestoneCommand creates a command to extend an order's payment plan.
func NewAddMilestoneCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	milestoneID kernel.UUID,
	kind order.MilestoneKind,
	amount kernel.Money,
	dueDate time.Time,
	paymentMethod string,
) (AddMilestoneCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		milestoneID.Validate(),
		kind.Validate(),
		amount.ValidatePositive("milestone amount"),
	); err != nil {
		return AddMilestoneCommand{}, err
	}
	if dueDate.IsZero() {
		return AddMilestoneCommand{}, ErrDueDateIsRequired
	}

	return AddMilestoneCommand{
		orderID:       orderID,
		actor:         actor,
		milestoneID:   milestoneID,
		kind:          kind,
		amount:        amount,
		dueDate:       dueDate,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrAddMilestoneCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddMilestoneCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c AddMilestoneCommand) Actor() kernel.Actor { return c.actor }

// MilestoneID returns the identifier for the new milestone.
func (c AddMilestoneCommand) MilestoneID() kernel.UUID { return c.milestoneID }

// Kind returns what the payment is for.
func (c AddMilestoneCommand) Kind() order.MilestoneKind { return c.kind }

// Amount returns the scheduled amount.
func (c AddMilestoneCommand) Amount() kernel.Money { return c.amount }

// DueDate returns when the payment falls due.
func (c AddMilestoneCommand) DueDate() time.Time { return c.dueDate }

// PaymentMethod returns how the milestone is expected to be paid.
func (c AddMilestoneCommand) PaymentMethod() string { return c.paymentMethod }

// MarkMilestonePaidCommand represents a request to settle a milestone.
type MarkMilestonePaidCommand struct {
	orderID       kernel.UUID
	actor         kernel.Actor
	milestoneID   kernel.UUID
	transactionID string

	guard guard.ConstructorGuard
}

// NewMarkMilestonePaidCommand creates a command to settle a milestone.
func NewMarkMilestonePaidCommand(orderID kernel.UUID, actor kernel.Actor, milestoneID kernel.UUID, transactionID string) (MarkMilestonePaidCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), milestoneID.Validate()); err != nil {
		return MarkMilestonePaidCommand{}, err
	}

	return MarkMilestonePaidCommand{
		orderID:       orderID,
		actor:         actor,
		milestoneID:   milestoneID,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkMilestonePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkMilestonePaidCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c MarkMilestonePaidCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c MarkMilestonePaidCommand) Actor() kernel.Actor { return c.actor }

// MilestoneID returns the milestone being settled.
func (c MarkMilestonePaidCommand) MilestoneID() kernel.UUID { return c.milestoneID }

// TransactionID returns the settlement transaction reference.
func (c MarkMilestonePaidCommand) TransactionID() string { return c.transactionID }

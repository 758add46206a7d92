package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrRequestRefundCommandIsNotConstructed = errors.New(
		"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
	)
	ErrProcessRefundCommandIsNotConstructed = errors.New(
		"ProcessRefundCommand must be created via NewProcessRefundCommand constructor",
	)
	ErrRefundReasonIsRequired = errs.NewValueIsRequiredError("refund reason")
	ErrRefundTargetIsInvalid  = errs.NewValueIsInvalidErrorWithCause("refund target", errors.New("must be approved or rejected"))
)

// RequestRefundCommand represents a customer refund claim. The balance bound
// is enforced by the aggregate against its current totals.
type RequestRefundCommand struct {
	orderID     kernel.UUID
	actor       kernel.Actor
	refundID    kernel.UUID
	reason      string
	description string
	amount      kernel.Money

	guard guard.ConstructorGuard
}

// NewRequestRefundCommand creates a command to request a refund.
func NewRequestRefundCommand(orderID kernel.UUID, actor kernel.Actor, refundID kernel.UUID, reason, description string, amount kernel.Money) (RequestRefundCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		refundID.Validate(),
		amount.ValidatePositive("requested amount"),
	); err != nil {
		return RequestRefundCommand{}, err
	}
	if reason == "" {
		return RequestRefundCommand{}, ErrRefundReasonIsRequired
	}

	return RequestRefundCommand{
		orderID:     orderID,
		actor:       actor,
		refundID:    refundID,
		reason:      reason,
		description: description,
		amount:      amount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RequestRefundCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c RequestRefundCommand) Actor() kernel.Actor { return c.actor }

// RefundID returns the identifier for the new refund request.
func (c RequestRefundCommand) RefundID() kernel.UUID { return c.refundID }

// Reason returns the short cause of the claim.
func (c RequestRefundCommand) Reason() string { return c.reason }

// Description returns the customer's full account.
func (c RequestRefundCommand) Description() string { return c.description }

// Amount returns the amount claimed.
func (c RequestRefundCommand) Amount() kernel.Money { return c.amount }

// ProcessRefundCommand represents closing a refund claim as approved or rejected.
type ProcessRefundCommand struct {
	orderID       kernel.UUID
	actor         kernel.Actor
	refundID      kernel.UUID
	target        order.RefundStatus
	transactionID string

	guard guard.ConstructorGuard
}

// NewProcessRefundCommand creates a command to process a refund claim.
func NewProcessRefundCommand(orderID kernel.UUID, actor kernel.Actor, refundID kernel.UUID, target order.RefundStatus, transactionID string) (ProcessRefundCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), refundID.Validate()); err != nil {
		return ProcessRefundCommand{}, err
	}
	if target != order.RefundApproved && target != order.RefundRejected {
		return ProcessRefundCommand{}, ErrRefundTargetIsInvalid
	}

	return ProcessRefundCommand{
		orderID:       orderID,
		actor:         actor,
		refundID:      refundID,
		target:        target,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessRefundCommand) Validate() error {
	return c.guard.Validate(ErrProcessRefundCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ProcessRefundCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c ProcessRefundCommand) Actor() kernel.Actor { return c.actor }

// RefundID returns the refund claim being processed.
func (c ProcessRefundCommand) RefundID() kernel.UUID { return c.refundID }

// Target returns the closing state, approved or rejected.
func (c ProcessRefundCommand) Target() order.RefundStatus { return c.target }

// TransactionID returns the payout transaction reference for approval.
func (c ProcessRefundCommand) TransactionID() string { return c.transactionID }

package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// AddMilestoneCommandHandler handles payment plan extensions.
type AddMilestoneCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAddMilestoneCommandHandler creates a handler for scheduling milestones.
func NewAddMilestoneCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) AddMilestoneCommandHandler {
	return AddMilestoneCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the add milestone command.
func (h *AddMilestoneCommandHandler) Handle(ctx context.Context, cmd AddMilestoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AddMilestone(cmd.Actor(), cmd.MilestoneID(), cmd.Kind(), cmd.Amount(), cmd.DueDate(), cmd.PaymentMethod())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

// MarkMilestonePaidCommandHandler settles milestones. Settlement is the only
// operation that moves the order's running total paid.
type MarkMilestonePaidCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewMarkMilestonePaidCommandHandler creates a handler for milestone settlement.
func NewMarkMilestonePaidCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) MarkMilestonePaidCommandHandler {
	return MarkMilestonePaidCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the milestone settlement command.
func (h *MarkMilestonePaidCommandHandler) Handle(ctx context.Context, cmd MarkMilestonePaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkMilestonePaid(cmd.Actor(), cmd.MilestoneID(), cmd.TransactionID())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// AdvanceStatusCommandHandler handles primary status transitions, including
// cancellation.
type AdvanceStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAdvanceStatusCommandHandler creates a handler for status transitions.
func NewAdvanceStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
func (h *AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AdvanceStatus(cmd.Actor(), cmd.Target(), cmd.Reason())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

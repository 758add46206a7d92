package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// RequestRefundCommandHandler handles customer refund claims.
type RequestRefundCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewRequestRefundCommandHandler creates a handler for refund requests.
func NewRequestRefundCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) RequestRefundCommandHandler {
	return RequestRefundCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the refund request command.
func (h *RequestRefundCommandHandler) Handle(ctx context.Context, cmd RequestRefundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.RequestRefund(cmd.Actor(), cmd.RefundID(), cmd.Reason(), cmd.Description(), cmd.Amount())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

// ProcessRefundCommandHandler closes refund claims.
type ProcessRefundCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewProcessRefundCommandHandler creates a handler for refund processing.
func NewProcessRefundCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) ProcessRefundCommandHandler {
	return ProcessRefundCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the refund processing command.
func (h *ProcessRefundCommandHandler) Handle(ctx context.Context, cmd ProcessRefundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ProcessRefund(cmd.Actor(), cmd.RefundID(), cmd.Target(), cmd.TransactionID())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

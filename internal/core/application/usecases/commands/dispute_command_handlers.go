package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// OpenDisputeCommandHandler handles disputes raised by either party.
type OpenDisputeCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewOpenDisputeCommandHandler creates a handler for opening disputes.
func NewOpenDisputeCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the open dispute command.
func (h *OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.OpenDispute(cmd.Actor(), cmd.DisputeID(), cmd.Reason(), cmd.Description(), cmd.Attachments())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

// ResolveDisputeCommandHandler closes disputes. The aggregate refuses the
// raiser resolving their own dispute.
type ResolveDisputeCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispute resolution command.
func (h *ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ResolveDispute(cmd.Actor(), cmd.DisputeID(), cmd.Target(), cmd.Resolution())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

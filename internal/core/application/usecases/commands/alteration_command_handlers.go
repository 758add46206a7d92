package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// RequestAlterationCommandHandler handles customer alteration requests.
type RequestAlterationCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewRequestAlterationCommandHandler creates a handler for alteration requests.
func NewRequestAlterationCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) RequestAlterationCommandHandler {
	return RequestAlterationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the alteration request command.
func (h *RequestAlterationCommandHandler) Handle(ctx context.Context, cmd RequestAlterationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.RequestAlteration(cmd.Actor(), cmd.AlterationID(), cmd.Description(), cmd.Urgency())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

// ReviewAlterationCommandHandler moves alterations through their lifecycle.
type ReviewAlterationCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewReviewAlterationCommandHandler creates a handler for alteration reviews.
func NewReviewAlterationCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) ReviewAlterationCommandHandler {
	return ReviewAlterationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the alteration review command.
func (h *ReviewAlterationCommandHandler) Handle(ctx context.Context, cmd ReviewAlterationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ReviewAlteration(cmd.Actor(), cmd.AlterationID(), cmd.Target(), cmd.EstimatedCost(), cmd.EstimatedTime())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// New orders start in the pending status with a single timeline entry.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence; the publisher may
// be nil when event publishing is disabled.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.OrderNumber(),
		cmd.CustomerID(), cmd.FulfillerID(),
		cmd.Garment(), cmd.ServiceType(), cmd.Quantity(),
		cmd.BasePrice(), cmd.FabricCost(), cmd.AdditionalCharges(), cmd.Discount(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	customer, err := kernel.NewActor(cmd.CustomerID(), kernel.RoleCustomer)
	if err == nil {
		publishOrderChanged(ctx, h.publisher, aggregate, customer)
	}
	return nil
}

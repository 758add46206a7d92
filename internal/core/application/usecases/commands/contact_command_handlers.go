package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
)

// Contact detail updates are plain field writes: no timeline entry, no
// integration event.

// UpdateConsultationCommandHandler replaces consultation appointment details.
type UpdateConsultationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateConsultationCommandHandler creates a handler for consultation updates.
func NewUpdateConsultationCommandHandler(uowFactory OrderUoWFactory) UpdateConsultationCommandHandler {
	return UpdateConsultationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the consultation update command.
func (h *UpdateConsultationCommandHandler) Handle(ctx context.Context, cmd UpdateConsultationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.UpdateConsultation(cmd.Actor(), cmd.Consultation())
	})
	return err
}

// UpdateDeliveryCommandHandler replaces delivery details.
type UpdateDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery updates.
func NewUpdateDeliveryCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the delivery update command.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.UpdateDelivery(cmd.Actor(), cmd.Delivery())
	})
	return err
}

// UpdateEmergencyContactCommandHandler replaces the emergency contact.
type UpdateEmergencyContactCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateEmergencyContactCommandHandler creates a handler for contact updates.
func NewUpdateEmergencyContactCommandHandler(uowFactory OrderUoWFactory) UpdateEmergencyContactCommandHandler {
	return UpdateEmergencyContactCommandHandler{uowFactory: uowFactory}
}

// Handle processes the emergency contact update command.
func (h *UpdateEmergencyContactCommandHandler) Handle(ctx context.Context, cmd UpdateEmergencyContactCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.UpdateEmergencyContact(cmd.Actor(), cmd.Contact())
	})
	return err
}

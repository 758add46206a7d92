package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var (
	ErrUpdateConsultationCommandIsNotConstructed = errors.New(
		"UpdateConsultationCommand must be created via NewUpdateConsultationCommand constructor",
	)
	ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
		"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
	)
	ErrUpdateEmergencyContactCommandIsNotConstructed = errors.New(
		"UpdateEmergencyContactCommand must be created via NewUpdateEmergencyContactCommand constructor",
	)
)

// UpdateConsultationCommand replaces an order's consultation appointment details.
type UpdateConsultationCommand struct {
	orderID      kernel.UUID
	actor        kernel.Actor
	consultation order.Consultation

	guard guard.ConstructorGuard
}

// NewUpdateConsultationCommand creates a command to update the consultation details.
func NewUpdateConsultationCommand(orderID kernel.UUID, actor kernel.Actor, consultation order.Consultation) (UpdateConsultationCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return UpdateConsultationCommand{}, err
	}

	return UpdateConsultationCommand{
		orderID:      orderID,
		actor:        actor,
		consultation: consultation,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsultationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsultationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateConsultationCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c UpdateConsultationCommand) Actor() kernel.Actor { return c.actor }

// Consultation returns the new appointment details.
func (c UpdateConsultationCommand) Consultation() order.Consultation { return c.consultation }

// UpdateDeliveryCommand replaces an order's delivery details.
type UpdateDeliveryCommand struct {
	orderID  kernel.UUID
	actor    kernel.Actor
	delivery order.DeliveryDetails

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to update the delivery details.
func NewUpdateDeliveryCommand(orderID kernel.UUID, actor kernel.Actor, delivery order.DeliveryDetails) (UpdateDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return UpdateDeliveryCommand{
		orderID:  orderID,
		actor:    actor,
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c UpdateDeliveryCommand) Actor() kernel.Actor { return c.actor }

// Delivery returns the new delivery details.
func (c UpdateDeliveryCommand) Delivery() order.DeliveryDetails { return c.delivery }

// UpdateEmergencyContactCommand replaces an order's emergency contact.
type UpdateEmergencyContactCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	contact order.EmergencyContact

	guard guard.ConstructorGuard
}

// NewUpdateEmergencyContactCommand creates a command to update the emergency contact.
func NewUpdateEmergencyContactCommand(orderID kernel.UUID, actor kernel.Actor, contact order.EmergencyContact) (UpdateEmergencyContactCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return UpdateEmergencyContactCommand{}, err
	}

	return UpdateEmergencyContactCommand{
		orderID: orderID,
		actor:   actor,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateEmergencyContactCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEmergencyContactCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateEmergencyContactCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the authenticated caller.
func (c UpdateEmergencyContactCommand) Actor() kernel.Actor { return c.actor }

// Contact returns the new emergency contact.
func (c UpdateEmergencyContactCommand) Contact() order.EmergencyContact { return c.contact }

package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("order number")
	ErrGarmentIsRequired     = errs.NewValueIsRequiredError("garment")
	ErrServiceTypeIsRequired = errs.NewValueIsRequiredError("service type")
	ErrQuantityIsInvalid     = errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("must be greater than 0"))
)

// CreateOrderCommand represents a request to place a new tailoring order.
// The total price is not part of the command: the aggregate derives it from
// the pricing components.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	customerID  kernel.UUID
	fulfillerID kernel.UUID
	garment     string
	serviceType string
	quantity    int

	basePrice         kernel.Money
	fabricCost        kernel.Money
	additionalCharges kernel.Money
	discount          kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the descriptive fields, and the pricing components.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customerID, fulfillerID kernel.UUID,
	garment, serviceType string,
	quantity int,
	basePrice, fabricCost, additionalCharges, discount kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setParties(customerID, fulfillerID),
		cmd.setGarment(garment),
		cmd.setServiceType(serviceType),
		cmd.setQuantity(quantity),
		cmd.setPricing(basePrice, fabricCost, additionalCharges, discount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// OrderNumber returns the human-readable order reference.
func (c CreateOrderCommand) OrderNumber() string { return c.orderNumber }

// CustomerID returns the ordering party's identity.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// FulfillerID returns the fulfilling tailor's identity.
func (c CreateOrderCommand) FulfillerID() kernel.UUID { return c.fulfillerID }

// Garment returns what is being made.
func (c CreateOrderCommand) Garment() string { return c.garment }

// ServiceType returns the kind of tailoring service ordered.
func (c CreateOrderCommand) ServiceType() string { return c.serviceType }

// Quantity returns how many garments the order covers.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

// BasePrice returns the per-unit price component.
func (c CreateOrderCommand) BasePrice() kernel.Money { return c.basePrice }

// FabricCost returns the fabric price component.
func (c CreateOrderCommand) FabricCost() kernel.Money { return c.fabricCost }

// AdditionalCharges returns the extra charges component.
func (c CreateOrderCommand) AdditionalCharges() kernel.Money { return c.additionalCharges }

// Discount returns the discount component.
func (c CreateOrderCommand) Discount() kernel.Money { return c.discount }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setParties(customerID, fulfillerID kernel.UUID) error {
	if err := errors.Join(customerID.Validate(), fulfillerID.Validate()); err != nil {
		return err
	}

	c.customerID = customerID
	c.fulfillerID = fulfillerID
	return nil
}

func (c *CreateOrderCommand) setGarment(garment string) error {
	if garment == "" {
		return ErrGarmentIsRequired
	}

	c.garment = garment
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType string) error {
	if serviceType == "" {
		return ErrServiceTypeIsRequired
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setPricing(basePrice, fabricCost, additionalCharges, discount kernel.Money) error {
	if err := errors.Join(
		basePrice.ValidatePositive("base price"),
		fabricCost.ValidateNonNegative("fabric cost"),
		additionalCharges.ValidateNonNegative("additional charges"),
		discount.ValidateNonNegative("discount"),
	); err != nil {
		return err
	}

	c.basePrice = basePrice
	c.fabricCost = fabricCost
	c.additionalCharges = additionalCharges
	c.discount = discount
	return nil
}

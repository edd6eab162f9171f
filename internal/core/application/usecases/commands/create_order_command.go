package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order at checkout.
// Encapsulates the customer, the delivery method, and the shipping address for
// postal orders.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	addr, _ := kernel.NewAddress("Tehran, Valiasr St. 12", "1234567890")
//	cmd, err := NewCreateOrderCommand(orderID, customerID, order.Postal, &addr)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	deliveryMethod order.DeliveryMethod
	address        *kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the identifiers and the delivery method; the address, when
// provided, must be a valid one. Whether an address is required for the
// chosen delivery method is decided by the order aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	deliveryMethod order.DeliveryMethod,
	address *kernel.Address,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setDeliveryMethod(deliveryMethod),
		orderCommand.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryMethod returns how the customer receives the order.
func (c CreateOrderCommand) DeliveryMethod() order.DeliveryMethod {
	return c.deliveryMethod
}

// Address returns the shipping address, or nil for pickup orders.
func (c CreateOrderCommand) Address() *kernel.Address {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDeliveryMethod(method order.DeliveryMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.deliveryMethod = method
	return nil
}

func (c *CreateOrderCommand) setAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}

	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

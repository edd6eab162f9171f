package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a staff request to move an order along the
// status graph. The target must be the allowed successor of the order's current
// status for its delivery method; anything else is rejected by the aggregate.
//
// Example:
//
//	cmd, err := NewMarkOrderPaidCommand(orderID, "cashier:leila")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	changes, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
//	fmt.Printf("Order moved to %s", changes[len(changes)-1].To)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order to target.
// Validates the order ID, the target status, and that the acting user is named.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor string,
) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

// NewMarkOrderPaidCommand creates a transition command confirming payment.
func NewMarkOrderPaidCommand(orderID kernel.UUID, actor string) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.Preparing, actor)
}

// NewMarkOrderReadyCommand creates a transition command marking preparation
// complete. Pickup orders chain into "pickup_ready" automatically.
func NewMarkOrderReadyCommand(orderID kernel.UUID, actor string) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.Ready, actor)
}

// NewStartOrderShippingCommand creates a transition command moving a postal
// order into shipping preparation.
func NewStartOrderShippingCommand(orderID kernel.UUID, actor string) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.ShippingPreparation, actor)
}

// NewMarkOrderInTransitCommand creates a transition command recording that a
// postal order was handed to the carrier.
func NewMarkOrderInTransitCommand(orderID kernel.UUID, actor string) (TransitionOrderCommand, error) {
	return NewTransitionOrderCommand(orderID, order.InTransit, actor)
}

// Validate ensures the command was created through a constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns the identity of the staff member performing the transition.
func (c TransitionOrderCommand) Actor() string {
	return c.actor
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}

package order

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAddressIsRequiredForPostal is returned when a postal order is created
	// without a shipping address.
	ErrAddressIsRequiredForPostal = errors.New("postal orders require a shipping address")
)

// StatusChange records one applied edge of the status graph. A single
// transition call can yield two changes when the automatic pickup edge fires.
type StatusChange struct {
	From Status
	To   Status
}

// Order is the aggregate root of the order lifecycle. It owns the status state
// machine: the status field is mutated exclusively through the transition
// methods below, which enforce the forward-only graph and record the acting
// staff member for audit.
//
// Invariants:
//   - Must have valid order and customer identifiers and a valid delivery method
//   - Postal orders must carry a shipping address
//   - Status only moves forward along the transition graph; the only
//     multi-hop change is the automatic Ready -> PickupReady chain for
//     pickup orders
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	deliveryMethod DeliveryMethod
	address        *kernel.Address
	status         Status

	// actor is the identity of the staff/system user who performed
	// the last transition. Empty until the first transition.
	actor string

	isConstructed bool
}

// NewOrder creates an order in PendingPayment status at checkout.
//
// The address is required for postal orders and optional for pickup orders.
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryMethod DeliveryMethod,
	address *kernel.Address,
) (*Order, error) {
	o := &Order{
		status:        PendingPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDeliveryMethod(deliveryMethod),
	); err != nil {
		return nil, err
	}

	if err := o.setAddress(address); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status
// and audit actor. Used by repositories only; the same invariants apply.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryMethod DeliveryMethod,
	address *kernel.Address,
	status Status,
	actor string,
) (*Order, error) {
	o, err := NewOrder(id, customerID, deliveryMethod, address)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.actor = actor
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for directly instantiated structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who owns the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryMethod returns how the customer receives the order.
func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

// Address returns the shipping address, or nil for pickup orders without one.
func (o *Order) Address() *kernel.Address {
	return o.address
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Actor returns the identity of the user who performed the last transition.
// Empty for orders that have not been transitioned yet.
func (o *Order) Actor() string {
	return o.actor
}

// CanTransitionTo reports whether the order may move to target from its
// current status, given its delivery method.
func (o *Order) CanTransitionTo(target Status) bool {
	return o.status.CanTransitionTo(target, o.deliveryMethod)
}

// TransitionTo moves the order to target and records the acting user.
//
// Returns the applied status changes: one for a plain transition, two when
// entering Ready on a pickup order, which chains automatically into
// PickupReady so pickup-facing reads never observe Ready.
//
// Fails with InvalidTransitionError when target is not the allowed successor;
// the order is left unchanged in that case.
func (o *Order) TransitionTo(target Status, actor string) ([]StatusChange, error) {
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := o.status.TransitionTo(target, o.deliveryMethod)
	if err != nil {
		return nil, err
	}

	changes := []StatusChange{{From: o.status, To: newStatus}}
	o.status = newStatus
	o.actor = actor

	if next, ok := o.status.AutoSuccessor(o.deliveryMethod); ok {
		changes = append(changes, StatusChange{From: o.status, To: next})
		o.status = next
	}

	return changes, nil
}

// MarkPaid transitions the order to Preparing after payment confirmation.
func (o *Order) MarkPaid(actor string) ([]StatusChange, error) {
	return o.TransitionTo(Preparing, actor)
}

// MarkReady transitions the order to Ready when preparation is complete.
// Pickup orders chain directly into PickupReady.
func (o *Order) MarkReady(actor string) ([]StatusChange, error) {
	return o.TransitionTo(Ready, actor)
}

// StartShippingPreparation transitions a postal order to ShippingPreparation.
func (o *Order) StartShippingPreparation(actor string) ([]StatusChange, error) {
	return o.TransitionTo(ShippingPreparation, actor)
}

// MarkInTransit transitions a postal order to InTransit once handed to the carrier.
func (o *Order) MarkInTransit(actor string) ([]StatusChange, error) {
	return o.TransitionTo(InTransit, actor)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryMethod(method DeliveryMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.deliveryMethod = method
	return nil
}

func (o *Order) setAddress(address *kernel.Address) error {
	if address == nil {
		if o.deliveryMethod == Postal {
			return ErrAddressIsRequiredForPostal
		}
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

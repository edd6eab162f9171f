package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// DeliveryMethod determines how a customer receives an order: in-store pickup
// or postal shipping. It is a value object; the zero value is invalid.
//
// The delivery method selects which branch of the status graph applies after
// Ready: postal orders continue through ShippingPreparation and InTransit,
// pickup orders jump straight to PickupReady.
type DeliveryMethod int

const (
	// UnknownDeliveryMethod represents an invalid or undefined delivery method.
	UnknownDeliveryMethod DeliveryMethod = iota

	// Pickup means the customer collects the order at the shop.
	Pickup

	// Postal means the order is shipped to the customer's address.
	Postal
)

type deliveryMethodSpec struct {
	name    string
	display string
}

// getDeliveryMethodSpecs returns the lookup table for valid delivery methods:
// wire name and localized display text.
func getDeliveryMethodSpecs() map[DeliveryMethod]deliveryMethodSpec {
	return map[DeliveryMethod]deliveryMethodSpec{
		Pickup: {name: "pickup", display: "دریافت حضوری"},
		Postal: {name: "postal", display: "ارسال پستی"},
	}
}

// DeliveryMethodFromString parses the wire representation of a delivery method.
// Returns an error for anything other than "pickup" and "postal".
func DeliveryMethodFromString(s string) (DeliveryMethod, error) {
	for method, spec := range getDeliveryMethodSpecs() {
		if spec.name == s {
			return method, nil
		}
	}
	return UnknownDeliveryMethod, errs.NewValueIsInvalidErrorWithCause(
		"delivery method", fmt.Errorf("%q is not a valid delivery method", s))
}

// Validate checks if the DeliveryMethod value is valid.
// Valid methods are Pickup and Postal.
func (m DeliveryMethod) Validate() error {
	if _, ok := getDeliveryMethodSpecs()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery method", fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

// String returns the wire name of the method ("pickup" or "postal"),
// or "unknown" for invalid values. Implements fmt.Stringer.
func (m DeliveryMethod) String() string {
	if spec, ok := getDeliveryMethodSpecs()[m]; ok {
		return spec.name
	}
	return "unknown"
}

// Display returns the localized, customer-facing name of the method.
func (m DeliveryMethod) Display() string {
	if spec, ok := getDeliveryMethodSpecs()[m]; ok {
		return spec.display
	}
	return "unknown"
}

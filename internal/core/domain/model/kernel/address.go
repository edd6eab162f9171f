package kernel

import (
	"errors"
	"fmt"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// PostalCodeLength is the exact number of digits in a valid postal code.
const PostalCodeLength = 10

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object describing where a postal order is
// shipped: a free-text destination plus a ten-digit postal code. The zero
// value is invalid and fails validation; use the constructor.
//
// Example:
//
//	addr, err := kernel.NewAddress("تهران، خیابان ولیعصر، پلاک ۱۲", "1234567890")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	text       string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress creates a shipping Address.
//
// The text must be non-empty. The postal code must consist of exactly
// PostalCodeLength ASCII digits. Returns a validation error otherwise.
func NewAddress(text string, postalCode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setText(text), addr.setPostalCode(postalCode)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed via NewAddress.
// The zero value fails this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Text returns the free-text destination of the address.
func (a Address) Text() string {
	return a.text
}

// PostalCode returns the ten-digit postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.text == other.text && a.postalCode == other.postalCode
}

// String returns a single-line representation for logs and notifications.
func (a Address) String() string {
	return fmt.Sprintf("%s (%s)", a.text, a.postalCode)
}

func (a *Address) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("address text")
	}
	a.text = text
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if len(postalCode) != PostalCodeLength {
		return errs.NewValueIsOutOfRangeError(
			"postal code length", len(postalCode), PostalCodeLength, PostalCodeLength)
	}
	for _, r := range postalCode {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"postal code", fmt.Errorf("%q is not a digit", r))
		}
	}
	a.postalCode = postalCode
	return nil
}

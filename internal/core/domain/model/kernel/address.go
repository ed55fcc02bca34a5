package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object holding the delivery destination of an
// order. It is fixed at order creation and never changes afterwards; the
// fulfillment core only reads it, primarily to resolve the regional transit
// hub at pack-complete.
//
// Example:
//
//	addr, err := kernel.NewAddress("Westbrook", "12 North Ridge Road", "94107")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	city   string
	street string
	zip    string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. City and street are required; zip is
// optional since not every serviced area uses postal codes.
func NewAddress(city string, street string, zip string) (Address, error) {
	address := Address{
		zip:   zip,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setCity(city),
		address.setStreet(street),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks that the Address was constructed via NewAddress.
// The zero value fails this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// City returns the destination city.
func (a Address) City() string {
	return a.city
}

// Street returns the destination street line.
func (a Address) Street() string {
	return a.street
}

// Zip returns the postal code, which may be empty.
func (a Address) Zip() string {
	return a.zip
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.street == other.street && a.zip == other.zip
}

// String returns a single-line human-readable rendering of the address.
func (a Address) String() string {
	if a.zip == "" {
		return fmt.Sprintf("%s, %s", a.street, a.city)
	}
	return fmt.Sprintf("%s, %s %s", a.street, a.city, a.zip)
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

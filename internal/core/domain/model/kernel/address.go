package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a shipping destination. It is an immutable value object
// with no identity: two addresses with the same fields are interchangeable.
//
// A valid address always carries a country code and a postal code, the
// minimum required to resolve shipping zones. State, city, and street lines
// are optional and only narrow zone matching when the zone's coverage rules
// reference them.
//
// Example:
//
//	addr, err := kernel.NewAddress("US", "CA", "Los Angeles", "90001", "1 Main St", "")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	country      string
	state        string
	city         string
	postalCode   string
	addressLine1 string
	addressLine2 string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified fields.
// The country code and postal code are required; country codes are
// normalized to upper case. Returns an error when either is missing.
func NewAddress(country, state, city, postalCode, addressLine1, addressLine2 string) (Address, error) {
	addr := Address{
		state:        strings.TrimSpace(state),
		city:         strings.TrimSpace(city),
		addressLine1: strings.TrimSpace(addressLine1),
		addressLine2: strings.TrimSpace(addressLine2),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setCountry(country), addr.setPostalCode(postalCode)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed using the constructor.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Country returns the normalized ISO country code of the destination.
func (a Address) Country() string {
	return a.country
}

// State returns the state or region code, or an empty string when not provided.
func (a Address) State() string {
	return a.state
}

// City returns the destination city, or an empty string when not provided.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the destination postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// AddressLine1 returns the first street line, or an empty string when not provided.
func (a Address) AddressLine1() string {
	return a.addressLine1
}

// AddressLine2 returns the second street line, or an empty string when not provided.
func (a Address) AddressLine2() string {
	return a.addressLine2
}

// String returns a human-readable representation useful for logging.
func (a Address) String() string {
	return fmt.Sprintf("Address(%s %s)", a.country, a.postalCode)
}

func (a *Address) setCountry(country string) error {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}

	a.country = country
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}

	a.postalCode = postalCode
	return nil
}

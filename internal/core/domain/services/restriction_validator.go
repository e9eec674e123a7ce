package services

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/parcel"
)

// RestrictionValidator is a domain service that decides whether a shipping
// method may serve a shipment at all. A failed restriction silently removes
// the method from the quote; it is never surfaced as a request error.
//
// Gates, checked in order:
//   - Destination country must not be excluded
//   - Aggregated parcel weight must not exceed the method's maximum
//   - No line item may reference a prohibited product
type RestrictionValidator struct{}

// NewRestrictionValidator creates a new RestrictionValidator instance.
func NewRestrictionValidator() RestrictionValidator {
	return RestrictionValidator{}
}

// IsEligible reports whether the method may serve a parcel of the given
// items shipped to the address.
func (v RestrictionValidator) IsEligible(
	m *method.Method,
	address kernel.Address,
	pkg parcel.Parcel,
	items []parcel.LineItem,
) bool {
	restrictions := m.Restrictions()

	if restrictions.ExcludesCountry(address.Country()) {
		return false
	}

	if maxWeight := restrictions.MaxWeight(); maxWeight != nil && pkg.TotalWeight() > *maxWeight {
		return false
	}

	for _, item := range items {
		if restrictions.ProhibitsProduct(item.ProductID()) {
			return false
		}
	}

	return true
}

package method

import (
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Restrictions are the hard eligibility gates of a shipping method: excluded
// destination countries, a maximum parcel weight, and prohibited products.
// A violated restriction removes the method from consideration for a
// shipment; it is never a request-level error.
//
// The zero value means "no restrictions" and is valid.
type Restrictions struct {
	excludedCountries  []string
	maxWeight          *float64
	prohibitedProducts []kernel.UUID
}

// NewRestrictions creates Restrictions. Country codes are normalized to
// upper case; the maximum weight, when set, must be positive.
func NewRestrictions(excludedCountries []string, maxWeight *float64, prohibitedProducts []kernel.UUID) (Restrictions, error) {
	if maxWeight != nil && *maxWeight <= 0 {
		return Restrictions{}, errs.NewValueIsInvalidErrorWithCause("maxWeight",
			fmt.Errorf("%f is not greater than 0", *maxWeight))
	}

	normalized := make([]string, 0, len(excludedCountries))
	for _, code := range excludedCountries {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return Restrictions{}, errs.NewValueIsRequiredError("excludedCountries entry")
		}
		normalized = append(normalized, code)
	}

	for _, id := range prohibitedProducts {
		if err := id.Validate(); err != nil {
			return Restrictions{}, err
		}
	}

	return Restrictions{
		excludedCountries:  normalized,
		maxWeight:          maxWeight,
		prohibitedProducts: prohibitedProducts,
	}, nil
}

// ExcludedCountries returns the excluded destination country codes.
func (r Restrictions) ExcludedCountries() []string {
	return r.excludedCountries
}

// MaxWeight returns the maximum parcel weight in kilograms, or nil when unlimited.
func (r Restrictions) MaxWeight() *float64 {
	return r.maxWeight
}

// ProhibitedProducts returns the product IDs the method refuses to carry.
func (r Restrictions) ProhibitedProducts() []kernel.UUID {
	return r.prohibitedProducts
}

// ExcludesCountry reports whether the destination country is excluded.
func (r Restrictions) ExcludesCountry(countryCode string) bool {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	for _, code := range r.excludedCountries {
		if code == countryCode {
			return true
		}
	}
	return false
}

// ProhibitsProduct reports whether the product may not be carried.
func (r Restrictions) ProhibitsProduct(productID kernel.UUID) bool {
	for _, id := range r.prohibitedProducts {
		if id.IsEqual(productID) {
			return true
		}
	}
	return false
}

// DeliveryEstimate is the promised delivery window in business days.
type DeliveryEstimate struct {
	minDays int
	maxDays int
}

// NewDeliveryEstimate creates a validated delivery window.
func NewDeliveryEstimate(minDays, maxDays int) (DeliveryEstimate, error) {
	if minDays < 0 {
		return DeliveryEstimate{}, errs.NewValueIsInvalidErrorWithCause("minDays",
			fmt.Errorf("%d is negative", minDays))
	}
	if maxDays < minDays {
		return DeliveryEstimate{}, errs.NewValueIsOutOfRangeError("maxDays", maxDays, minDays, "+inf")
	}
	return DeliveryEstimate{minDays: minDays, maxDays: maxDays}, nil
}

// DefaultDeliveryEstimate is the 1-7 business day window assumed for methods
// without an explicit estimate.
func DefaultDeliveryEstimate() DeliveryEstimate {
	return DeliveryEstimate{minDays: 1, maxDays: 7}
}

// MinDays returns the earliest promised delivery day.
func (e DeliveryEstimate) MinDays() int { return e.minDays }

// MaxDays returns the latest promised delivery day.
func (e DeliveryEstimate) MaxDays() int { return e.maxDays }

// CostBounds clamps a calculated cost into an optional [min, max] interval.
// A nil bound leaves that side unbounded. The zero value applies no clamping.
type CostBounds struct {
	minCost *float64
	maxCost *float64
}

// NewCostBounds creates validated cost bounds.
func NewCostBounds(minCost, maxCost *float64) (CostBounds, error) {
	if minCost != nil && *minCost < 0 {
		return CostBounds{}, errs.NewValueIsInvalidError("minCost")
	}
	if maxCost != nil && *maxCost < 0 {
		return CostBounds{}, errs.NewValueIsInvalidError("maxCost")
	}
	if minCost != nil && maxCost != nil && *minCost > *maxCost {
		return CostBounds{}, errs.NewValueIsOutOfRangeError("minCost", *minCost, 0, *maxCost)
	}
	return CostBounds{minCost: minCost, maxCost: maxCost}, nil
}

// MinCost returns the lower bound, or nil when unbounded.
func (b CostBounds) MinCost() *float64 { return b.minCost }

// MaxCost returns the upper bound, or nil when unbounded.
func (b CostBounds) MaxCost() *float64 { return b.maxCost }

// Clamp returns the cost forced into the configured bounds.
func (b CostBounds) Clamp(cost float64) float64 {
	if b.minCost != nil && cost < *b.minCost {
		cost = *b.minCost
	}
	if b.maxCost != nil && cost > *b.maxCost {
		cost = *b.maxCost
	}
	return cost
}

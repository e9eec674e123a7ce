package method

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Strategy type tags, used for persistence and API payloads.
const (
	TypeFlatRate          = "flat_rate"
	TypeWeightBased       = "weight_based"
	TypePriceBased        = "price_based"
	TypeDimensionalWeight = "dimensional_weight"
	TypeZoneBased         = "zone_based"
	TypeCarrierAPI        = "carrier_api"
)

// RateCalculation is the sealed sum type over the six rate strategies.
// Exactly the types in this package implement it; the rate calculator
// dispatches over them exhaustively.
type RateCalculation interface {
	// Type returns the strategy's wire tag (e.g. "flat_rate").
	Type() string

	// Validate checks the strategy's configuration invariants.
	Validate() error

	isRateCalculation()
}

// WeightTier is one row of a weight-based rate table: an inclusive
// [minWeight, maxWeight] kilogram range with a base rate and an additional
// per-kilogram rate applied to the weight above the tier minimum.
type WeightTier struct {
	minWeight      float64
	maxWeight      float64
	rate           float64
	additionalRate float64
}

// NewWeightTier creates a validated weight tier.
// The range must be non-negative and non-inverted; rates must be non-negative.
func NewWeightTier(minWeight, maxWeight, rate, additionalRate float64) (WeightTier, error) {
	if minWeight < 0 {
		return WeightTier{}, errs.NewValueIsInvalidErrorWithCause("minWeight",
			fmt.Errorf("%f is negative", minWeight))
	}
	if maxWeight < minWeight {
		return WeightTier{}, errs.NewValueIsOutOfRangeError("maxWeight", maxWeight, minWeight, "+inf")
	}
	if rate < 0 || additionalRate < 0 {
		return WeightTier{}, errs.NewValueIsInvalidError("rate")
	}

	return WeightTier{
		minWeight:      minWeight,
		maxWeight:      maxWeight,
		rate:           rate,
		additionalRate: additionalRate,
	}, nil
}

// MinWeight returns the inclusive lower bound of the tier in kilograms.
func (t WeightTier) MinWeight() float64 { return t.minWeight }

// MaxWeight returns the inclusive upper bound of the tier in kilograms.
func (t WeightTier) MaxWeight() float64 { return t.maxWeight }

// Rate returns the tier's base rate.
func (t WeightTier) Rate() float64 { return t.rate }

// AdditionalRate returns the per-kilogram rate applied above the tier minimum.
func (t WeightTier) AdditionalRate() float64 { return t.additionalRate }

// Contains reports whether the weight falls inside the tier's inclusive range.
func (t WeightTier) Contains(weight float64) bool {
	return weight >= t.minWeight && weight <= t.maxWeight
}

// Cost returns the tier's charge for the given weight:
// rate + additionalRate × max(0, weight − minWeight).
func (t WeightTier) Cost(weight float64) float64 {
	over := weight - t.minWeight
	if over < 0 {
		over = 0
	}
	return t.rate + t.additionalRate*over
}

// validateTiers checks that a tier table is ordered ascending and that
// consecutive ranges do not overlap.
func validateTiers(tiers []WeightTier) error {
	for i, tier := range tiers {
		if i == 0 {
			continue
		}
		if tier.minWeight <= tiers[i-1].maxWeight {
			return errs.NewValueIsInvalidErrorWithCause("weightTiers",
				fmt.Errorf("tier %d overlaps tier %d", i, i-1))
		}
	}
	return nil
}

// tierFor returns the tier bracketing the weight, if any.
func tierFor(tiers []WeightTier, weight float64) (WeightTier, bool) {
	for _, tier := range tiers {
		if tier.Contains(weight) {
			return tier, true
		}
	}
	return WeightTier{}, false
}

// FlatRate charges a fixed base rate regardless of package contents.
type FlatRate struct {
	baseRate float64
}

// NewFlatRate creates a flat-rate strategy; the base rate must be non-negative.
func NewFlatRate(baseRate float64) (FlatRate, error) {
	if baseRate < 0 {
		return FlatRate{}, errs.NewValueIsInvalidError("baseRate")
	}
	return FlatRate{baseRate: baseRate}, nil
}

// BaseRate returns the fixed charge.
func (f FlatRate) BaseRate() float64 { return f.baseRate }

// Type returns the strategy's wire tag.
func (f FlatRate) Type() string { return TypeFlatRate }

// Validate checks the strategy's configuration invariants.
func (f FlatRate) Validate() error {
	if f.baseRate < 0 {
		return errs.NewValueIsInvalidError("baseRate")
	}
	return nil
}

func (f FlatRate) isRateCalculation() {}

// WeightBased charges by bracketing the parcel's actual weight against an
// ordered, non-overlapping tier table. When no tier brackets the weight the
// fallback base rate applies.
type WeightBased struct {
	tiers    []WeightTier
	baseRate float64
}

// NewWeightBased creates a weight-based strategy from an ordered tier table
// and a fallback base rate for weights outside every tier.
func NewWeightBased(tiers []WeightTier, baseRate float64) (WeightBased, error) {
	if err := validateTiers(tiers); err != nil {
		return WeightBased{}, err
	}
	if baseRate < 0 {
		return WeightBased{}, errs.NewValueIsInvalidError("baseRate")
	}
	return WeightBased{tiers: tiers, baseRate: baseRate}, nil
}

// Tiers returns the tier table.
func (w WeightBased) Tiers() []WeightTier { return w.tiers }

// BaseRate returns the fallback rate for weights outside every tier.
func (w WeightBased) BaseRate() float64 { return w.baseRate }

// TierFor returns the tier bracketing the weight, if any.
func (w WeightBased) TierFor(weight float64) (WeightTier, bool) {
	return tierFor(w.tiers, weight)
}

// Type returns the strategy's wire tag.
func (w WeightBased) Type() string { return TypeWeightBased }

// Validate checks the strategy's configuration invariants.
func (w WeightBased) Validate() error {
	return validateTiers(w.tiers)
}

func (w WeightBased) isRateCalculation() {}

// PriceBased charges as a function of the parcel's declared value: free above
// an optional threshold, otherwise an optional percentage of the value,
// otherwise the base rate.
type PriceBased struct {
	freeShippingThreshold *float64
	percentage            *float64
	baseRate              float64
}

// NewPriceBased creates a price-based strategy. The threshold and percentage
// are optional; a nil pointer disables the corresponding rule.
func NewPriceBased(baseRate float64, freeShippingThreshold, percentage *float64) (PriceBased, error) {
	if baseRate < 0 {
		return PriceBased{}, errs.NewValueIsInvalidError("baseRate")
	}
	if freeShippingThreshold != nil && *freeShippingThreshold < 0 {
		return PriceBased{}, errs.NewValueIsInvalidError("freeShippingThreshold")
	}
	if percentage != nil && (*percentage < 0 || *percentage > 100) {
		return PriceBased{}, errs.NewValueIsOutOfRangeError("percentage", *percentage, 0, 100)
	}
	return PriceBased{
		freeShippingThreshold: freeShippingThreshold,
		percentage:            percentage,
		baseRate:              baseRate,
	}, nil
}

// FreeShippingThreshold returns the order value above which shipping is free,
// or nil when no threshold applies.
func (p PriceBased) FreeShippingThreshold() *float64 { return p.freeShippingThreshold }

// Percentage returns the percentage of order value charged, or nil.
func (p PriceBased) Percentage() *float64 { return p.percentage }

// BaseRate returns the fallback rate.
func (p PriceBased) BaseRate() float64 { return p.baseRate }

// Type returns the strategy's wire tag.
func (p PriceBased) Type() string { return TypePriceBased }

// Validate checks the strategy's configuration invariants.
func (p PriceBased) Validate() error {
	if p.percentage != nil && (*p.percentage < 0 || *p.percentage > 100) {
		return errs.NewValueIsOutOfRangeError("percentage", *p.percentage, 0, 100)
	}
	return nil
}

func (p PriceBased) isRateCalculation() {}

// DimensionalWeight charges like WeightBased, but brackets the billable
// weight: the greater of actual weight and the dimensional weight derived
// from the estimated package volume.
type DimensionalWeight struct {
	tiers    []WeightTier
	baseRate float64
}

// NewDimensionalWeight creates a dimensional-weight strategy from an ordered
// tier table and a fallback base rate.
func NewDimensionalWeight(tiers []WeightTier, baseRate float64) (DimensionalWeight, error) {
	if err := validateTiers(tiers); err != nil {
		return DimensionalWeight{}, err
	}
	if baseRate < 0 {
		return DimensionalWeight{}, errs.NewValueIsInvalidError("baseRate")
	}
	return DimensionalWeight{tiers: tiers, baseRate: baseRate}, nil
}

// Tiers returns the tier table.
func (d DimensionalWeight) Tiers() []WeightTier { return d.tiers }

// BaseRate returns the fallback rate for weights outside every tier.
func (d DimensionalWeight) BaseRate() float64 { return d.baseRate }

// TierFor returns the tier bracketing the weight, if any.
func (d DimensionalWeight) TierFor(weight float64) (WeightTier, bool) {
	return tierFor(d.tiers, weight)
}

// Type returns the strategy's wire tag.
func (d DimensionalWeight) Type() string { return TypeDimensionalWeight }

// Validate checks the strategy's configuration invariants.
func (d DimensionalWeight) Validate() error {
	return validateTiers(d.tiers)
}

func (d DimensionalWeight) isRateCalculation() {}

// ZoneBased charges the base rate configured for the matched zone. It is the
// extension point for zone-specific surcharges carried by zone-method links.
type ZoneBased struct {
	baseRate float64
}

// NewZoneBased creates a zone-based strategy; the base rate must be non-negative.
func NewZoneBased(baseRate float64) (ZoneBased, error) {
	if baseRate < 0 {
		return ZoneBased{}, errs.NewValueIsInvalidError("baseRate")
	}
	return ZoneBased{baseRate: baseRate}, nil
}

// BaseRate returns the zone charge.
func (z ZoneBased) BaseRate() float64 { return z.baseRate }

// Type returns the strategy's wire tag.
func (z ZoneBased) Type() string { return TypeZoneBased }

// Validate checks the strategy's configuration invariants.
func (z ZoneBased) Validate() error {
	if z.baseRate < 0 {
		return errs.NewValueIsInvalidError("baseRate")
	}
	return nil
}

func (z ZoneBased) isRateCalculation() {}

// CarrierAPI delegates rate lookup to the external carrier gateway. The
// carrier identity lives on the owning Method; the strategy itself carries
// no configuration.
type CarrierAPI struct{}

// NewCarrierAPI creates a carrier-API strategy.
func NewCarrierAPI() CarrierAPI {
	return CarrierAPI{}
}

// Type returns the strategy's wire tag.
func (c CarrierAPI) Type() string { return TypeCarrierAPI }

// Validate checks the strategy's configuration invariants.
func (c CarrierAPI) Validate() error { return nil }

func (c CarrierAPI) isRateCalculation() {}

package services

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/pkg/errs"
)

// RateCalculator is a domain service that prices a parcel under a single
// rate-calculation strategy. It dispatches exhaustively over the sealed
// strategy set; an unknown strategy is a configuration fault, not a silent
// fallback.
//
// Post-processing applied to every strategy's raw cost:
//   - Clamp into the method's cost bounds
//   - Round to two decimal places
type RateCalculator struct {
	carriers CarrierGateway
}

// NewRateCalculator creates a RateCalculator. The carrier gateway serves
// methods with the carrier-API strategy and may be nil when the catalog
// contains none.
func NewRateCalculator(carriers CarrierGateway) RateCalculator {
	return RateCalculator{carriers: carriers}
}

// Calculate prices the parcel for the method under the given strategy and
// returns the final cost together with the delivery estimate. The strategy
// is passed separately because a zone link may override the method's own.
//
// The estimate is the method's configured window except for carrier quotes,
// which carry the carrier's own promise.
func (r RateCalculator) Calculate(
	ctx context.Context,
	m *method.Method,
	strategy method.RateCalculation,
	address kernel.Address,
	pkg parcel.Parcel,
) (float64, method.DeliveryEstimate, error) {
	estimate := m.DeliveryEstimate()

	var cost float64
	switch s := strategy.(type) {
	case method.FlatRate:
		cost = s.BaseRate()

	case method.WeightBased:
		cost = tieredCost(s.Tiers(), s.BaseRate(), pkg.TotalWeight())

	case method.PriceBased:
		cost = priceBasedCost(s, pkg.TotalValue())

	case method.DimensionalWeight:
		cost = tieredCost(s.Tiers(), s.BaseRate(), pkg.BillableWeight())

	case method.ZoneBased:
		cost = s.BaseRate()

	case method.CarrierAPI:
		quote, err := r.carrierCost(ctx, m, address, pkg)
		if err != nil {
			return 0, method.DeliveryEstimate{}, err
		}
		cost = quote.Cost
		estimate = quote.Estimate

	default:
		return 0, method.DeliveryEstimate{}, errs.NewValueIsInvalidErrorWithCause("rateCalculation",
			fmt.Errorf("unknown strategy type %q", strategy.Type()))
	}

	cost = m.CostBounds().Clamp(cost)
	return roundCost(cost), estimate, nil
}

func (r RateCalculator) carrierCost(
	ctx context.Context,
	m *method.Method,
	address kernel.Address,
	pkg parcel.Parcel,
) (CarrierQuote, error) {
	if r.carriers == nil {
		return CarrierQuote{}, errs.NewValueIsRequiredError("carrier gateway")
	}

	return r.carriers.GetRate(ctx, CarrierRateRequest{
		CarrierName:    m.CarrierName(),
		CarrierService: m.CarrierService(),
		Destination:    address,
		WeightKg:       pkg.BillableWeight(),
		DeclaredValue:  pkg.TotalValue(),
	})
}

// tieredCost brackets the weight against the tier table, falling back to the
// base rate when no tier contains it.
func tieredCost(tiers []method.WeightTier, baseRate, weight float64) float64 {
	for _, tier := range tiers {
		if tier.Contains(weight) {
			return tier.Cost(weight)
		}
	}
	return baseRate
}

// priceBasedCost applies the price rules in precedence order: free shipping
// at or above the threshold, then percentage of declared value, then the
// base rate.
func priceBasedCost(s method.PriceBased, declaredValue float64) float64 {
	if threshold := s.FreeShippingThreshold(); threshold != nil && declaredValue >= *threshold {
		return 0
	}
	if pct := s.Percentage(); pct != nil {
		return declaredValue * *pct / 100
	}
	return s.BaseRate()
}

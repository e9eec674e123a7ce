// Package carrier provides a simulated carrier gateway. It stands in for
// real carrier rate and tracking APIs in development and test environments,
// answering with a deterministic heuristic instead of network calls.
package carrier

import (
	"context"
	"math"
	"strings"
	"time"

	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// Rate heuristic constants. The shape mimics typical carrier pricing: a
// pickup base charge plus a per-kilogram rate, with flat surcharges for
// international lanes and premium carriers.
const (
	baseCharge              = 5.00
	perKilogramRate         = 0.50
	internationalSurcharge  = 3.00
	premiumCarrierSurcharge = 2.00
)

// estimatedTransitDays is the delivery window promised with every quote.
var estimatedTransitDays = [2]int{2, 5}

// SimulatedGateway implements the carrier gateway and shipment tracker
// against no real carrier. Quotes are a pure function of the request, so
// tests and local environments get stable prices.
type SimulatedGateway struct {
	originCountry string
	now           func() time.Time
}

// NewSimulatedGateway creates a simulated gateway. Shipments to countries
// other than originCountry are priced as international.
func NewSimulatedGateway(originCountry string) *SimulatedGateway {
	return &SimulatedGateway{
		originCountry: strings.ToUpper(strings.TrimSpace(originCountry)),
		now:           time.Now,
	}
}

// GetRate quotes the shipment:
// base 5.00 + 0.50/kg, +3.00 international, +2.00 for DHL.
func (g *SimulatedGateway) GetRate(_ context.Context, request services.CarrierRateRequest) (services.CarrierQuote, error) {
	if request.WeightKg < 0 {
		return services.CarrierQuote{}, errs.NewValueIsInvalidError("weightKg")
	}

	cost := baseCharge + perKilogramRate*request.WeightKg

	if request.Destination.Country() != g.originCountry {
		cost += internationalSurcharge
	}
	if strings.EqualFold(request.CarrierName, "DHL") {
		cost += premiumCarrierSurcharge
	}

	estimate, err := method.NewDeliveryEstimate(estimatedTransitDays[0], estimatedTransitDays[1])
	if err != nil {
		return services.CarrierQuote{}, err
	}

	return services.CarrierQuote{
		Cost:     math.Round(cost*100) / 100,
		Estimate: estimate,
	}, nil
}

// Track returns a canned in-transit view: one acceptance scan, one departure
// scan, and an estimated delivery 48 hours out.
func (g *SimulatedGateway) Track(_ context.Context, carrierName, trackingNumber string) (ports.TrackingInfo, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return ports.TrackingInfo{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	now := g.now()
	delivery := now.Add(48 * time.Hour)

	return ports.TrackingInfo{
		TrackingNumber:    trackingNumber,
		CarrierName:       carrierName,
		Status:            "in_transit",
		EstimatedDelivery: &delivery,
		Events: []ports.TrackingEvent{
			{
				Timestamp:   now.Add(-24 * time.Hour),
				Location:    "Origin facility",
				Description: "Shipment accepted",
			},
			{
				Timestamp:   now.Add(-6 * time.Hour),
				Location:    "Sorting hub",
				Description: "Departed facility",
			},
		},
	}, nil
}

package services

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
)

// CarrierRateRequest carries everything a carrier needs to quote a shipment.
type CarrierRateRequest struct {
	CarrierName    string
	CarrierService string
	Destination    kernel.Address
	WeightKg       float64
	DeclaredValue  float64
}

// CarrierQuote is a carrier's answer to a rate request.
type CarrierQuote struct {
	Cost     float64
	Estimate method.DeliveryEstimate
}

// CarrierGateway is the outbound contract for external carrier rate APIs,
// used by methods with the carrier-API rate strategy. A gateway failure
// makes that one method unavailable; it never fails the whole calculation.
type CarrierGateway interface {
	GetRate(ctx context.Context, request CarrierRateRequest) (CarrierQuote, error)
}

package parcel

import (
	"math"

	"shipping/internal/core/domain/model/kernel"
)

// Package dimension floors in centimeters. They prevent degenerate
// zero-size packages when no item carries dimension data.
const (
	minPackageLength = 6.0
	minPackageWidth  = 4.0
	minPackageHeight = 2.0
)

// dimensionalWeightDivisor is the carrier-industry divisor used to derive a
// billing weight from cubic volume (cm³ → kg).
const dimensionalWeightDivisor = 166.0

// Parcel is the aggregation of a calculation request's line items into a
// single estimated package: total weight, total declared value, item count,
// and estimated box dimensions derived from the summed item volume.
type Parcel struct {
	totalWeight float64
	totalValue  float64
	totalItems  int
	totalVolume float64
	dimensions  kernel.Dimensions
}

// Aggregate reduces line items into a Parcel.
//
// Total weight is the quantity-weighted sum of unit weights, with unknown
// weights counting as zero. Total value is the quantity-weighted sum of unit
// prices. Dimensions are estimated by summing the cubic volume of items with
// known dimensions, taking the cube root as an equivalent side length s, and
// boxing it as {max(1.2s, 6), max(0.8s, 4), max(0.6s, 2)} centimeters.
//
// Aggregate never fails: absent data degrades to zero or floor values.
func Aggregate(items []LineItem) Parcel {
	var weight, value, volume float64
	var count int

	for _, item := range items {
		qty := float64(item.Quantity())
		weight += item.UnitWeight() * qty
		value += item.UnitPrice() * qty
		count += item.Quantity()

		if dims := item.Dimensions(); dims != nil {
			volume += dims.Volume() * qty
		}
	}

	side := math.Cbrt(volume)

	// Sides are floored above zero, so NewDimensions cannot fail here.
	dims, _ := kernel.NewDimensions(
		math.Max(side*1.2, minPackageLength),
		math.Max(side*0.8, minPackageWidth),
		math.Max(side*0.6, minPackageHeight),
	)

	return Parcel{
		totalWeight: weight,
		totalValue:  value,
		totalItems:  count,
		totalVolume: volume,
		dimensions:  dims,
	}
}

// TotalWeight returns the aggregated actual weight in kilograms.
func (p Parcel) TotalWeight() float64 {
	return p.totalWeight
}

// TotalValue returns the aggregated declared value.
func (p Parcel) TotalValue() float64 {
	return p.totalValue
}

// TotalItems returns the total unit count across all line items.
func (p Parcel) TotalItems() int {
	return p.totalItems
}

// TotalVolume returns the summed item volume in cubic centimeters.
func (p Parcel) TotalVolume() float64 {
	return p.totalVolume
}

// Dimensions returns the estimated package dimensions.
func (p Parcel) Dimensions() kernel.Dimensions {
	return p.dimensions
}

// DimensionalWeight returns the billing weight derived from the estimated
// package dimensions: (length × width × height) / 166.
func (p Parcel) DimensionalWeight() float64 {
	return p.dimensions.Volume() / dimensionalWeightDivisor
}

// BillableWeight returns the weight carriers bill against: the greater of
// the actual aggregated weight and the dimensional weight.
func (p Parcel) BillableWeight() float64 {
	return math.Max(p.totalWeight, p.DimensionalWeight())
}

// Package parcel models the purchasable items of a shipping calculation and
// their aggregation into a single estimated package. Aggregation is a pure
// function: missing weights or dimensions degrade to zero or floor values
// instead of failing.
package parcel

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem represents one purchasable product line in a shipping calculation.
// It references a product, the ordered quantity, and the product's unit
// price, unit weight (kilograms), and unit dimensions where known.
//
// The engine never mutates line items; they are supplied by the caller and
// treated as immutable input.
type LineItem struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	name       string
	quantity   int
	unitPrice  float64
	unitWeight float64
	dimensions *kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem for the given product.
//
// Quantity must be positive; unit price and unit weight must be
// non-negative. A zero unit weight means the weight is unknown and
// contributes nothing to the aggregated total. A nil dimensions pointer
// means the product's size is unknown.
func NewLineItem(
	productID kernel.UUID,
	name string,
	quantity int,
	unitPrice float64,
	unitWeight float64,
	dimensions *kernel.Dimensions,
) (LineItem, error) {
	item := LineItem{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setUnitWeight(unitWeight),
		item.setDimensions(dimensions),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product's display name, used in restriction messages.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i LineItem) UnitPrice() float64 {
	return i.unitPrice
}

// UnitWeight returns the weight of a single unit in kilograms, 0 when unknown.
func (i LineItem) UnitWeight() float64 {
	return i.unitWeight
}

// Dimensions returns the unit dimensions, or nil when unknown.
func (i LineItem) Dimensions() *kernel.Dimensions {
	return i.dimensions
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setUnitWeight(unitWeight float64) error {
	if unitWeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitWeight",
			fmt.Errorf("%f is negative", unitWeight))
	}
	i.unitWeight = unitWeight
	return nil
}

func (i *LineItem) setDimensions(dimensions *kernel.Dimensions) error {
	if dimensions != nil {
		if err := dimensions.Validate(); err != nil {
			return err
		}
	}
	i.dimensions = dimensions
	return nil
}

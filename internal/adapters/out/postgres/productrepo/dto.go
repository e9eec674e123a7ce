// Package productrepo implements the product catalog port over the products
// table. Prices and weights always come from this table; client-supplied
// values are never trusted.
package productrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for product rows read during
// calculations. Dimensions are nullable; a product without them contributes
// no volume to the package estimate.
type ProductDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Price  float64
	Weight float64
	Length *float64
	Width  *float64
	Height *float64
}

// TableName specifies the database table name for product rows.
func (ProductDTO) TableName() string {
	return "products"
}

// toLineItem converts a product row plus a requested quantity to a line item.
func toLineItem(dto ProductDTO, quantity int) (parcel.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.LineItem{}, err
	}

	var dims *kernel.Dimensions
	if dto.Length != nil && dto.Width != nil && dto.Height != nil {
		d, dimsErr := kernel.NewDimensions(*dto.Length, *dto.Width, *dto.Height)
		if dimsErr != nil {
			return parcel.LineItem{}, dimsErr
		}
		dims = &d
	}

	return parcel.NewLineItem(id, dto.Name, quantity, dto.Price, dto.Weight, dims)
}

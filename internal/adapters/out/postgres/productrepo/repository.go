package productrepo

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductCatalog implements the ProductCatalog port using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Resolve maps product quantities to line items in one query.
// Returns errs.ObjectNotFoundError naming the first missing product.
func (r *GormProductCatalog) Resolve(
	ctx context.Context,
	quantities map[kernel.UUID]int,
) ([]parcel.LineItem, error) {
	if len(quantities) == 0 {
		return nil, errs.NewValueIsRequiredError("quantities")
	}

	ids := make([]uuid.UUID, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	found := make(map[kernel.UUID]ProductDTO, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		found[id] = dto
	}

	items := make([]parcel.LineItem, 0, len(quantities))
	for id, quantity := range quantities {
		dto, ok := found[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}

		item, err := toLineItem(dto, quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/parcel"
)

// ProductCatalog resolves product identifiers from a calculation request to
// priced and weighed line items. Calculations never trust client-supplied
// prices or weights; the catalog is the source of truth.
type ProductCatalog interface {
	// Resolve maps product quantities to line items.
	// Returns errs.ObjectNotFoundError when any product is unknown.
	Resolve(ctx context.Context, quantities map[kernel.UUID]int) ([]parcel.LineItem, error)
}

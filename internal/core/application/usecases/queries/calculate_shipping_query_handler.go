package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// CalculateShippingQueryHandler runs the shipping calculation pipeline:
// resolve the requested products against the product catalog, take the
// current zone-and-method snapshot, and hand both to the domain calculator.
//
// The handler itself holds no state; every calculation reads one immutable
// snapshot, so concurrent requests never interfere.
type CalculateShippingQueryHandler struct {
	products   ports.ProductCatalog
	catalog    ports.CatalogProvider
	calculator services.ShippingCalculator
}

// NewCalculateShippingQueryHandler creates a handler for shipping
// calculations.
func NewCalculateShippingQueryHandler(
	products ports.ProductCatalog,
	catalog ports.CatalogProvider,
	calculator services.ShippingCalculator,
) CalculateShippingQueryHandler {
	return CalculateShippingQueryHandler{
		products:   products,
		catalog:    catalog,
		calculator: calculator,
	}
}

// Handle executes the calculation and returns the ranked options.
//
// Error contract:
//   - validation errors from the query or unknown products pass through
//     (errs taxonomy)
//   - services.ErrNoCoverage when no zone covers the destination
func (h CalculateShippingQueryHandler) Handle(
	ctx context.Context,
	query CalculateShippingQuery,
) (CalculateShippingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateShippingQueryResponse{}, err
	}

	quantities := make(map[kernel.UUID]int, len(query.Items()))
	for _, item := range query.Items() {
		quantities[item.ProductID] += item.Quantity
	}

	items, err := h.products.Resolve(ctx, quantities)
	if err != nil {
		return CalculateShippingQueryResponse{}, err
	}

	catalog, err := h.catalog.Catalog(ctx)
	if err != nil {
		return CalculateShippingQueryResponse{}, err
	}

	result, err := h.calculator.Calculate(ctx, catalog, query.Store(), query.Destination(), items)
	if err != nil {
		return CalculateShippingQueryResponse{}, err
	}

	pkg := result.Package
	return CalculateShippingQueryResponse{
		Options: result.Options,
		Package: PackageSummary{
			TotalWeight:       pkg.TotalWeight(),
			BillableWeight:    pkg.BillableWeight(),
			DimensionalWeight: pkg.DimensionalWeight(),
			TotalValue:        pkg.TotalValue(),
			TotalItems:        pkg.TotalItems(),
			Length:            pkg.Dimensions().Length(),
			Width:             pkg.Dimensions().Width(),
			Height:            pkg.Dimensions().Height(),
		},
	}, nil
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/guard"
)

var (
	ErrCalculateShippingQueryIsNotConstructed = errors.New(
		"CalculateShippingQuery must be created via NewCalculateShippingQuery constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemQuantity is one requested product with its quantity.
type ItemQuantity struct {
	ProductID kernel.UUID
	Quantity  int
}

// CalculateShippingQuery requests shipping options for a set of products
// shipped to a destination address.
//
// Example:
//
//	addr, _ := kernel.NewAddress("US", "CA", "Los Angeles", "90001", "", "")
//	query, err := NewCalculateShippingQuery(addr, []ItemQuantity{{ProductID: id, Quantity: 2}}, kernel.PlatformOwner())
//	if err != nil {
//	    return fmt.Errorf("invalid calculation request: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, query)
type CalculateShippingQuery struct {
	destination kernel.Address
	items       []ItemQuantity
	store       kernel.Owner

	guard guard.ConstructorGuard
}

// NewCalculateShippingQuery creates a calculation query. The destination must
// be a constructed Address and at least one item with a positive quantity is
// required. The store scopes the catalog; pass kernel.PlatformOwner() for
// storefront-wide calculations.
func NewCalculateShippingQuery(
	destination kernel.Address,
	items []ItemQuantity,
	store kernel.Owner,
) (CalculateShippingQuery, error) {
	if err := destination.Validate(); err != nil {
		return CalculateShippingQuery{}, err
	}
	if len(items) == 0 {
		return CalculateShippingQuery{}, ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return CalculateShippingQuery{}, err
		}
		if item.Quantity <= 0 {
			return CalculateShippingQuery{}, ErrItemsAreRequired
		}
	}

	return CalculateShippingQuery{
		destination: destination,
		items:       items,
		store:       store,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCalculateShippingQueryIsNotConstructed if validation fails.
func (q CalculateShippingQuery) Validate() error {
	return q.guard.Validate(ErrCalculateShippingQueryIsNotConstructed)
}

// Destination returns the destination address from the query.
func (q CalculateShippingQuery) Destination() kernel.Address {
	return q.destination
}

// Items returns the requested product quantities from the query.
func (q CalculateShippingQuery) Items() []ItemQuantity {
	return q.items
}

// Store returns the requesting store from the query.
func (q CalculateShippingQuery) Store() kernel.Owner {
	return q.store
}

// PackageSummary describes the estimated package the quotes were priced for.
type PackageSummary struct {
	TotalWeight       float64
	BillableWeight    float64
	DimensionalWeight float64
	TotalValue        float64
	TotalItems        int
	Length            float64
	Width             float64
	Height            float64
}

// CalculateShippingQueryResponse is the calculation read model: ranked
// options plus the package they were priced for.
type CalculateShippingQueryResponse struct {
	Options []services.Option
	Package PackageSummary
}

package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrListMethodsQueryIsNotConstructed = errors.New(
	"ListMethodsQuery must be created via NewListMethodsQuery constructor",
)

// ListMethodsQuery retrieves the shipping methods visible to a store: its
// own methods plus the platform-wide ones.
type ListMethodsQuery struct {
	store kernel.Owner

	guard guard.ConstructorGuard
}

// NewListMethodsQuery creates a method listing query scoped to the given store.
func NewListMethodsQuery(store kernel.Owner) ListMethodsQuery {
	return ListMethodsQuery{store: store, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListMethodsQueryIsNotConstructed if validation fails.
func (q ListMethodsQuery) Validate() error {
	return q.guard.Validate(ErrListMethodsQueryIsNotConstructed)
}

// Store returns the requesting store from the query.
func (q ListMethodsQuery) Store() kernel.Owner {
	return q.store
}

// ListMethodsQueryResponse represents method information in the read model.
type ListMethodsQueryResponse struct {
	ID             kernel.UUID
	Code           string
	Name           string
	Description    string
	CarrierName    string
	CarrierService string
	RateType       string
	IsActive       bool
}

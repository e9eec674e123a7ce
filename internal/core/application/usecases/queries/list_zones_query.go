package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrListZonesQueryIsNotConstructed = errors.New(
	"ListZonesQuery must be created via NewListZonesQuery constructor",
)

// ListZonesQuery retrieves the shipping zones visible to a store: its own
// zones plus the platform-wide ones.
type ListZonesQuery struct {
	store kernel.Owner

	guard guard.ConstructorGuard
}

// NewListZonesQuery creates a zone listing query scoped to the given store.
// Pass kernel.PlatformOwner() to list platform zones only.
func NewListZonesQuery(store kernel.Owner) ListZonesQuery {
	return ListZonesQuery{store: store, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListZonesQueryIsNotConstructed if validation fails.
func (q ListZonesQuery) Validate() error {
	return q.guard.Validate(ErrListZonesQueryIsNotConstructed)
}

// Store returns the requesting store from the query.
func (q ListZonesQuery) Store() kernel.Owner {
	return q.store
}

// ListZonesQueryResponse represents zone information in the read model.
type ListZonesQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Description  string
	CountryCodes []string
	MethodCount  int
	IsActive     bool
}

package ports

import (
	"context"

	"shipping/internal/core/domain/services"
)

// CatalogProvider hands out the zone-and-method snapshot a calculation runs
// against. Implementations cache the snapshot and refresh it out of band, so
// the hot calculation path never touches storage.
type CatalogProvider interface {
	// Catalog returns the current snapshot. The returned value is immutable;
	// concurrent refreshes swap the snapshot instead of mutating it.
	Catalog(ctx context.Context) (services.Catalog, error)

	// Refresh reloads the snapshot from storage.
	Refresh(ctx context.Context) error
}

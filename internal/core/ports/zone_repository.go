// Package ports defines repository and gateway interfaces for the shipping
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for shipping zone
// aggregates. Zones are stored with their complete state: coverage entries
// and method links included.
type ZoneRepository interface {
	// Add persists a new zone aggregate to storage.
	// The zone must be valid and not already exist in the repository.
	Add(ctx context.Context, zone *zone.Zone) error

	// Update persists changes to an existing zone aggregate.
	Update(ctx context.Context, zone *zone.Zone) error

	// Get retrieves a zone aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no zone carries the ID.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAll retrieves every zone, active and inactive, in creation order.
	// Creation order is what makes catalog-order ranking deterministic.
	GetAll(ctx context.Context) ([]*zone.Zone, error)
}

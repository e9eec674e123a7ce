package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
)

// MethodRepository defines the persistence contract for shipping method
// aggregates.
type MethodRepository interface {
	// Add persists a new method aggregate to storage.
	Add(ctx context.Context, method *method.Method) error

	// Update persists changes to an existing method aggregate.
	Update(ctx context.Context, method *method.Method) error

	// Get retrieves a method aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no method carries the ID.
	Get(ctx context.Context, id kernel.UUID) (*method.Method, error)

	// GetByCode retrieves a method by its unique upper-case code.
	// Returns errs.ObjectNotFoundError when the code is unused; creation
	// relies on this to enforce code uniqueness.
	GetByCode(ctx context.Context, code string) (*method.Method, error)

	// GetAll retrieves every method, active and inactive, in creation order.
	GetAll(ctx context.Context) ([]*method.Method, error)
}

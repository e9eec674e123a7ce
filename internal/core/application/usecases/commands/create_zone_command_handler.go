package commands

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/zone"
)

// ErrZoneOverlaps is returned when a new zone's coverage shares a country
// with an existing active zone of the same owner. Overlapping zones would
// make quote results depend on catalog order, so creation rejects them.
var ErrZoneOverlaps = errors.New("zone overlaps an existing zone")

// CreateZoneCommandHandler handles the business logic for zone creation.
// Validates the overlap invariant and method link references before
// persisting the new zone.
type CreateZoneCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone creation.
// Requires a UoWFactory because link validation reads the method repository.
func NewCreateZoneCommandHandler(uowFactory UoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone creation command.
//
// Invariants enforced:
//   - The new zone must not share a covered country with an existing active
//     zone of the same owner (ErrZoneOverlaps)
//   - Every linked method must exist
//
// Automatically rolls back on any error to prevent partial data.
func (h *CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newZone, err := zone.RestoreZone(
		cmd.ZoneID(), cmd.Owner(), cmd.Name(), cmd.Description(),
		cmd.Countries(), cmd.MethodLinks(), true,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()
	existing, err := zoneRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, other := range existing {
		if !other.IsActive() || !other.Owner().IsEqual(newZone.Owner()) {
			continue
		}
		if newZone.Overlaps(other) {
			return fmt.Errorf("%w: %s", ErrZoneOverlaps, other.Name())
		}
	}

	methodRepo := uow.MethodRepository()
	for _, link := range newZone.MethodLinks() {
		if _, err = methodRepo.Get(ctx, link.MethodID()); err != nil {
			return err
		}
	}

	if err = zoneRepo.Add(ctx, newZone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

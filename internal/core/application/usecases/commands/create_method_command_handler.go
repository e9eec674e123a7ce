package commands

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/method"
	"shipping/internal/pkg/errs"
)

// ErrMethodCodeTaken is returned when the method's code is already used by
// another method. Codes identify methods in API payloads, so they are unique.
var ErrMethodCodeTaken = errors.New("method code is already taken")

// CreateMethodCommandHandler handles the business logic for method creation.
// Enforces code uniqueness before persisting the new method.
type CreateMethodCommandHandler struct {
	uowFactory MethodUoWFactory
}

// NewCreateMethodCommandHandler creates a handler for method creation.
func NewCreateMethodCommandHandler(uowFactory MethodUoWFactory) CreateMethodCommandHandler {
	return CreateMethodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the method creation command.
// The method's code must not be in use (ErrMethodCodeTaken); lookup and
// insert run in one transaction. Automatically rolls back on any error.
func (h *CreateMethodCommandHandler) Handle(ctx context.Context, cmd CreateMethodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newMethod, err := method.RestoreMethod(
		cmd.MethodID(), cmd.Owner(), cmd.Code(), cmd.Name(), cmd.Description(),
		cmd.CarrierName(), cmd.CarrierService(), cmd.Features(),
		cmd.RateCalculation(), cmd.CostBounds(), cmd.Estimate(), cmd.Restrictions(),
		true,
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

	methodRepo := uow.MethodRepository()

	existing, err := methodRepo.GetByCode(ctx, newMethod.Code())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", ErrMethodCodeTaken, newMethod.Code())
	}

	if err = methodRepo.Add(ctx, newMethod); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

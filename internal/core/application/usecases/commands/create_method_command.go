package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateMethodCommandIsNotConstructed = errors.New(
		"CreateMethodCommand must be created via NewCreateMethodCommand constructor",
	)
	ErrMethodCodeIsRequired        = errors.New("code is required")
	ErrMethodNameIsRequired        = errors.New("name is required")
	ErrRateCalculationIsRequired   = errors.New("rate calculation is required")
)

// CreateMethodCommand represents a request to register a new shipping method
// with its rate strategy and optional configuration.
type CreateMethodCommand struct { //nolint:recvcheck //using for validation
	methodID        kernel.UUID
	owner           kernel.Owner
	code            string
	name            string
	description     string
	carrierName     string
	carrierService  string
	features        []string
	rateCalculation method.RateCalculation
	costBounds      method.CostBounds
	estimate        *method.DeliveryEstimate
	restrictions    method.Restrictions

	guard guard.ConstructorGuard
}

// NewCreateMethodCommand creates a command to register a new shipping method.
// Automatically generates a unique ID. Validates that code, name, and rate
// calculation are present and that the strategy configuration is valid.
func NewCreateMethodCommand(
	owner kernel.Owner,
	code string,
	name string,
	description string,
	rateCalculation method.RateCalculation,
) (CreateMethodCommand, error) {
	command := CreateMethodCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMethodID(kernel.NewUUID()),
		command.setOwner(owner),
		command.setCode(code),
		command.setName(name),
		command.setRateCalculation(rateCalculation),
	); err != nil {
		return CreateMethodCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMethodCommandIsNotConstructed if validation fails.
func (c CreateMethodCommand) Validate() error {
	return c.guard.Validate(ErrCreateMethodCommandIsNotConstructed)
}

// MethodID returns the generated method ID from the command.
func (c CreateMethodCommand) MethodID() kernel.UUID {
	return c.methodID
}

// Owner returns the method owner from the command.
func (c CreateMethodCommand) Owner() kernel.Owner {
	return c.owner
}

// Code returns the method code from the command.
func (c CreateMethodCommand) Code() string {
	return c.code
}

// Name returns the method name from the command.
func (c CreateMethodCommand) Name() string {
	return c.name
}

// Description returns the method description from the command.
func (c CreateMethodCommand) Description() string {
	return c.description
}

// CarrierName returns the carrier name from the command.
func (c CreateMethodCommand) CarrierName() string {
	return c.carrierName
}

// CarrierService returns the carrier service level from the command.
func (c CreateMethodCommand) CarrierService() string {
	return c.carrierService
}

// Features returns the display feature list from the command.
func (c CreateMethodCommand) Features() []string {
	return c.features
}

// RateCalculation returns the rate strategy from the command.
func (c CreateMethodCommand) RateCalculation() method.RateCalculation {
	return c.rateCalculation
}

// CostBounds returns the cost clamp interval from the command.
func (c CreateMethodCommand) CostBounds() method.CostBounds {
	return c.costBounds
}

// Estimate returns the delivery estimate from the command, or nil.
func (c CreateMethodCommand) Estimate() *method.DeliveryEstimate {
	return c.estimate
}

// Restrictions returns the eligibility gates from the command.
func (c CreateMethodCommand) Restrictions() method.Restrictions {
	return c.restrictions
}

// WithCarrier attaches the carrier identity to the command.
func (c CreateMethodCommand) WithCarrier(name, service string) CreateMethodCommand {
	c.carrierName = name
	c.carrierService = service
	return c
}

// WithFeatures attaches the display feature list to the command.
func (c CreateMethodCommand) WithFeatures(features []string) CreateMethodCommand {
	c.features = features
	return c
}

// WithCostBounds attaches the cost clamp interval to the command.
func (c CreateMethodCommand) WithCostBounds(bounds method.CostBounds) CreateMethodCommand {
	c.costBounds = bounds
	return c
}

// WithEstimate attaches the delivery estimate to the command.
func (c CreateMethodCommand) WithEstimate(estimate method.DeliveryEstimate) CreateMethodCommand {
	c.estimate = &estimate
	return c
}

// WithRestrictions attaches the eligibility gates to the command.
func (c CreateMethodCommand) WithRestrictions(restrictions method.Restrictions) CreateMethodCommand {
	c.restrictions = restrictions
	return c
}

func (c *CreateMethodCommand) setMethodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.methodID = id
	return nil
}

func (c *CreateMethodCommand) setOwner(owner kernel.Owner) error {
	if owner.StoreID() != nil {
		if err := owner.StoreID().Validate(); err != nil {
			return err
		}
	}

	c.owner = owner
	return nil
}

func (c *CreateMethodCommand) setCode(code string) error {
	if code == "" {
		return ErrMethodCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateMethodCommand) setName(name string) error {
	if name == "" {
		return ErrMethodNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMethodCommand) setRateCalculation(rateCalculation method.RateCalculation) error {
	if rateCalculation == nil {
		return ErrRateCalculationIsRequired
	}
	if err := rateCalculation.Validate(); err != nil {
		return err
	}

	c.rateCalculation = rateCalculation
	return nil
}

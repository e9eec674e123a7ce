package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/zone"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrZoneNameIsRequired = errors.New("name is required")
	ErrCountriesRequired  = errors.New("at least one country coverage entry is required")
)

// CreateZoneCommand represents a request to create a new shipping zone with
// its coverage entries and method links.
//
// Example:
//
//	coverage, _ := zone.NewCountryCoverage("US", nil, nil, nil)
//	link, _ := zone.NewMethodLink(methodID, nil)
//	cmd, err := NewCreateZoneCommand(kernel.PlatformOwner(), "Domestic", "",
//	    []zone.CountryCoverage{coverage}, []zone.MethodLink{link})
//	if err != nil {
//	    return fmt.Errorf("invalid zone data: %w", err)
//	}
//
//	handler := NewCreateZoneCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create zone: %w", err)
//	}
//	fmt.Printf("Created zone with ID: %s", cmd.ZoneID())
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID      kernel.UUID
	owner       kernel.Owner
	name        string
	description string
	countries   []zone.CountryCoverage
	methodLinks []zone.MethodLink

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to register a new shipping zone.
// Automatically generates a unique ID for the zone. Validates that the name
// is not empty and at least one coverage entry is present.
func NewCreateZoneCommand(
	owner kernel.Owner,
	name string,
	description string,
	countries []zone.CountryCoverage,
	methodLinks []zone.MethodLink,
) (CreateZoneCommand, error) {
	command := CreateZoneCommand{
		description: description,
		methodLinks: methodLinks,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setZoneID(kernel.NewUUID()),
		command.setOwner(owner),
		command.setName(name),
		command.setCountries(countries),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateZoneCommandIsNotConstructed if validation fails.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the generated zone ID from the command.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Owner returns the zone owner from the command.
func (c CreateZoneCommand) Owner() kernel.Owner {
	return c.owner
}

// Name returns the zone name from the command.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// Description returns the zone description from the command.
func (c CreateZoneCommand) Description() string {
	return c.description
}

// Countries returns the coverage entries from the command.
func (c CreateZoneCommand) Countries() []zone.CountryCoverage {
	return c.countries
}

// MethodLinks returns the method links from the command.
func (c CreateZoneCommand) MethodLinks() []zone.MethodLink {
	return c.methodLinks
}

func (c *CreateZoneCommand) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.zoneID = id
	return nil
}

func (c *CreateZoneCommand) setOwner(owner kernel.Owner) error {
	if owner.StoreID() != nil {
		if err := owner.StoreID().Validate(); err != nil {
			return err
		}
	}

	c.owner = owner
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setCountries(countries []zone.CountryCoverage) error {
	if len(countries) == 0 {
		return ErrCountriesRequired
	}

	c.countries = countries
	return nil
}

package zone

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/pkg/errs"
)

// ErrZoneIsNotConstructed is returned when a Zone instance was not created
// through the NewZone or RestoreZone factory functions.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone or RestoreZone constructor")

// MethodLink attaches a shipping method to a zone. The link carries its own
// active flag and an optional rate-calculation override that replaces the
// method's default strategy inside this zone.
type MethodLink struct {
	methodID    kernel.UUID
	isActive    bool
	customRates method.RateCalculation
}

// NewMethodLink creates an active link to the given method.
// customRates may be nil, in which case the method's own strategy applies.
func NewMethodLink(methodID kernel.UUID, customRates method.RateCalculation) (MethodLink, error) {
	if err := methodID.Validate(); err != nil {
		return MethodLink{}, err
	}
	if customRates != nil {
		if err := customRates.Validate(); err != nil {
			return MethodLink{}, err
		}
	}
	return MethodLink{methodID: methodID, isActive: true, customRates: customRates}, nil
}

// RestoreMethodLink reconstructs a link from persistence, including its
// active flag.
func RestoreMethodLink(methodID kernel.UUID, isActive bool, customRates method.RateCalculation) (MethodLink, error) {
	link, err := NewMethodLink(methodID, customRates)
	if err != nil {
		return MethodLink{}, err
	}
	link.isActive = isActive
	return link, nil
}

// MethodID returns the linked method's identifier.
func (l MethodLink) MethodID() kernel.UUID { return l.methodID }

// IsActive reports whether the link participates in calculations.
func (l MethodLink) IsActive() bool { return l.isActive }

// CustomRates returns the zone-specific strategy override, or nil when the
// method's own strategy applies.
func (l MethodLink) CustomRates() method.RateCalculation { return l.customRates }

// Zone is the ShippingZone aggregate: a named set of country coverage
// entries plus the method links offered inside the covered area.
//
// Zone follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Coverage entries are the only source of matching; a zone with no
//     entries covers no address at all
//   - Method links reference methods by ID; each method appears at most once
type Zone struct {
	id          kernel.UUID
	owner       kernel.Owner
	name        string
	description string
	countries   []CountryCoverage
	methodLinks []MethodLink
	isActive    bool

	isConstructed bool
}

// NewZone creates an active Zone with the given coverage entries.
func NewZone(
	id kernel.UUID,
	owner kernel.Owner,
	name string,
	description string,
	countries []CountryCoverage,
) (*Zone, error) {
	z := &Zone{
		description:   strings.TrimSpace(description),
		countries:     countries,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		z.setID(id),
		z.setOwner(owner),
		z.setName(name),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a Zone from persistence, including its method
// links and active flag.
func RestoreZone(
	id kernel.UUID,
	owner kernel.Owner,
	name string,
	description string,
	countries []CountryCoverage,
	methodLinks []MethodLink,
	isActive bool,
) (*Zone, error) {
	z, err := NewZone(id, owner, name, description, countries)
	if err != nil {
		return nil, err
	}

	z.methodLinks = methodLinks
	z.isActive = isActive

	return z, nil
}

// Validate ensures the Zone instance was properly constructed.
func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

// IsEqual compares two zones by their unique identifiers.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID { return z.id }

// Owner returns who the zone belongs to.
func (z *Zone) Owner() kernel.Owner { return z.owner }

// Name returns the zone's display name.
func (z *Zone) Name() string { return z.name }

// Description returns the zone's display description.
func (z *Zone) Description() string { return z.description }

// Countries returns the zone's coverage entries.
func (z *Zone) Countries() []CountryCoverage { return z.countries }

// MethodLinks returns the zone's method links.
func (z *Zone) MethodLinks() []MethodLink { return z.methodLinks }

// IsActive reports whether the zone participates in calculations.
func (z *Zone) IsActive() bool { return z.isActive }

// Covers reports whether any coverage entry matches the address.
// A zone without coverage entries covers nothing.
func (z *Zone) Covers(address kernel.Address) bool {
	for _, c := range z.countries {
		if c.Covers(address) {
			return true
		}
	}
	return false
}

// Overlaps reports whether the two zones share at least one covered country
// code. Overlap by country is the invariant creation guards against.
func (z *Zone) Overlaps(other *Zone) bool {
	if other == nil {
		return false
	}
	for _, c := range z.countries {
		for _, oc := range other.countries {
			if c.CountryCode() == oc.CountryCode() {
				return true
			}
		}
	}
	return false
}

// LinkMethod attaches a method to the zone. Linking a method that is
// already linked replaces the existing link.
func (z *Zone) LinkMethod(link MethodLink) {
	for i, existing := range z.methodLinks {
		if existing.methodID.IsEqual(link.methodID) {
			z.methodLinks[i] = link
			return
		}
	}
	z.methodLinks = append(z.methodLinks, link)
}

// UnlinkMethod removes the link to the given method, if present.
func (z *Zone) UnlinkMethod(methodID kernel.UUID) {
	for i, existing := range z.methodLinks {
		if existing.methodID.IsEqual(methodID) {
			z.methodLinks = append(z.methodLinks[:i], z.methodLinks[i+1:]...)
			return
		}
	}
}

// SetCountries replaces the zone's coverage entries.
func (z *Zone) SetCountries(countries []CountryCoverage) {
	z.countries = countries
}

// Activate makes the zone participate in calculations again.
func (z *Zone) Activate() { z.isActive = true }

// Deactivate removes the zone from calculations without deleting it.
func (z *Zone) Deactivate() { z.isActive = false }

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setOwner(owner kernel.Owner) error {
	if owner.StoreID() != nil {
		if err := owner.StoreID().Validate(); err != nil {
			return err
		}
	}
	z.owner = owner
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	z.name = name
	return nil
}

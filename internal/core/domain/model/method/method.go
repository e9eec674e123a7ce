package method

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrMethodIsNotConstructed is returned when a Method instance was not
// created through the NewMethod or RestoreMethod factory functions.
var ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod or RestoreMethod constructor")

// Method represents a shipping product (e.g. "Ground", "Express"): a named,
// coded rate policy with cost bounds, a delivery estimate, restriction
// rules, and optional carrier identity.
//
// Method follows these invariants:
//   - Must have a valid unique identifier and a non-empty upper-case code
//   - Must carry exactly one rate-calculation strategy, validated on construction
//   - Cost bounds, delivery estimate, and restrictions are optional and
//     default to "unbounded", 1-7 days, and "no restrictions" respectively
//
// A method is either platform-owned (global, offered by every store) or
// owned by a single store; ownership is modelled by kernel.Owner.
type Method struct {
	id              kernel.UUID
	owner           kernel.Owner
	code            string
	name            string
	description     string
	carrierName     string
	carrierService  string
	features        []string
	rateCalculation RateCalculation
	costBounds      CostBounds
	estimate        *DeliveryEstimate
	restrictions    Restrictions
	isActive        bool

	isConstructed bool
}

// NewMethod creates an active Method with the required fields. Optional
// configuration (carrier, features, bounds, estimate, restrictions) is
// attached through the Set methods.
func NewMethod(
	id kernel.UUID,
	owner kernel.Owner,
	code string,
	name string,
	description string,
	rateCalculation RateCalculation,
) (*Method, error) {
	m := &Method{
		description:   strings.TrimSpace(description),
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setOwner(owner),
		m.setCode(code),
		m.setName(name),
		m.setRateCalculation(rateCalculation),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMethod reconstructs a Method from persistence, including its
// active flag and full optional configuration.
func RestoreMethod(
	id kernel.UUID,
	owner kernel.Owner,
	code string,
	name string,
	description string,
	carrierName string,
	carrierService string,
	features []string,
	rateCalculation RateCalculation,
	costBounds CostBounds,
	estimate *DeliveryEstimate,
	restrictions Restrictions,
	isActive bool,
) (*Method, error) {
	m, err := NewMethod(id, owner, code, name, description, rateCalculation)
	if err != nil {
		return nil, err
	}

	m.SetCarrier(carrierName, carrierService)
	m.SetFeatures(features)
	m.SetCostBounds(costBounds)
	m.SetRestrictions(restrictions)
	if estimate != nil {
		m.SetDeliveryEstimate(*estimate)
	}
	m.isActive = isActive

	return m, nil
}

// Validate ensures the Method instance was properly constructed.
func (m *Method) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMethodIsNotConstructed
	}
	return nil
}

// IsEqual compares two methods by their unique identifiers.
func (m *Method) IsEqual(other *Method) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the method's unique identifier.
func (m *Method) ID() kernel.UUID { return m.id }

// Owner returns who the method belongs to.
func (m *Method) Owner() kernel.Owner { return m.owner }

// Code returns the method's unique upper-case code (e.g. "GROUND").
func (m *Method) Code() string { return m.code }

// Name returns the method's display name.
func (m *Method) Name() string { return m.name }

// Description returns the method's display description.
func (m *Method) Description() string { return m.description }

// CarrierName returns the carrier's name (e.g. "UPS"), or "" when none.
func (m *Method) CarrierName() string { return m.carrierName }

// CarrierService returns the carrier service level (e.g. "Ground"), or "".
func (m *Method) CarrierService() string { return m.carrierService }

// Features returns the method's display feature list.
func (m *Method) Features() []string { return m.features }

// RateCalculation returns the method's rate strategy.
func (m *Method) RateCalculation() RateCalculation { return m.rateCalculation }

// CostBounds returns the method's cost clamp interval.
func (m *Method) CostBounds() CostBounds { return m.costBounds }

// DeliveryEstimate returns the promised delivery window, falling back to
// the default 1-7 business days when none is configured.
func (m *Method) DeliveryEstimate() DeliveryEstimate {
	if m.estimate == nil {
		return DefaultDeliveryEstimate()
	}
	return *m.estimate
}

// HasDeliveryEstimate reports whether an explicit estimate is configured.
func (m *Method) HasDeliveryEstimate() bool { return m.estimate != nil }

// Restrictions returns the method's eligibility gates.
func (m *Method) Restrictions() Restrictions { return m.restrictions }

// IsActive reports whether the method participates in calculations.
func (m *Method) IsActive() bool { return m.isActive }

// SetCarrier attaches the carrier identity used by the carrier-API strategy
// and for display.
func (m *Method) SetCarrier(name, service string) {
	m.carrierName = strings.TrimSpace(name)
	m.carrierService = strings.TrimSpace(service)
}

// SetFeatures replaces the method's display feature list.
func (m *Method) SetFeatures(features []string) {
	m.features = features
}

// SetCostBounds replaces the method's cost clamp interval.
func (m *Method) SetCostBounds(bounds CostBounds) {
	m.costBounds = bounds
}

// SetDeliveryEstimate replaces the method's delivery window.
func (m *Method) SetDeliveryEstimate(estimate DeliveryEstimate) {
	m.estimate = &estimate
}

// SetRestrictions replaces the method's eligibility gates.
func (m *Method) SetRestrictions(restrictions Restrictions) {
	m.restrictions = restrictions
}

// Activate makes the method participate in calculations again.
func (m *Method) Activate() { m.isActive = true }

// Deactivate removes the method from calculations without deleting it.
func (m *Method) Deactivate() { m.isActive = false }

func (m *Method) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Method) setOwner(owner kernel.Owner) error {
	if owner.StoreID() != nil {
		if err := owner.StoreID().Validate(); err != nil {
			return err
		}
	}
	m.owner = owner
	return nil
}

func (m *Method) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	m.code = code
	return nil
}

func (m *Method) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Method) setRateCalculation(rateCalculation RateCalculation) error {
	if rateCalculation == nil {
		return errs.NewValueIsRequiredError("rateCalculation")
	}
	if err := rateCalculation.Validate(); err != nil {
		return err
	}
	m.rateCalculation = rateCalculation
	return nil
}

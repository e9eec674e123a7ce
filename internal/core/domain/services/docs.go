// Package services provides domain services that orchestrate shipping
// calculations across the zone and method aggregates. It implements the
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ZoneMatcher: selects the zones whose coverage matches a destination
//   - RestrictionValidator: filters methods by their eligibility gates
//   - RateCalculator: prices a parcel under a method's rate strategy
//   - ShippingCalculator: the end-to-end quote pipeline over a catalog snapshot
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services

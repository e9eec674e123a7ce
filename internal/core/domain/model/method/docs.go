// Package method contains the ShippingMethod aggregate and its rate policy.
//
// A method's rate policy is modelled as a sealed sum type (RateCalculation)
// with one variant per strategy: flat rate, weight-based tiers, price-based,
// dimensional weight, zone-based, and carrier API. Each variant carries only
// the fields it needs, and the rate calculator dispatches over the closed set
// with an exhaustive type switch. This replaces the stringly-typed strategy
// switch of ad hoc configuration objects and removes the "missing case"
// class of bugs.
package method

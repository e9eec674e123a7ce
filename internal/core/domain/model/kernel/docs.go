// Package kernel contains the shared value objects of the shipping domain:
// UUID identifiers, destination addresses, package dimensions, and the
// ownership model for zones and methods.
//
// All types in this package are immutable value objects created through
// validating constructors. The zero value of each type is invalid and is
// rejected by its Validate method, enforced via the ConstructorGuard pattern.
package kernel

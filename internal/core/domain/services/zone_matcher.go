package services

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/zone"
)

// ZoneMatcher is a domain service that selects the shipping zones whose
// coverage rules match a destination address.
//
// Business rules:
//   - Only active zones participate
//   - A zone matches when any of its coverage entries covers the address
//   - Catalog order is preserved so ranking stays deterministic
type ZoneMatcher struct{}

// NewZoneMatcher creates a new ZoneMatcher instance.
func NewZoneMatcher() ZoneMatcher {
	return ZoneMatcher{}
}

// Match returns the active zones covering the address, in catalog order.
// An empty result means the destination has no shipping coverage.
func (z ZoneMatcher) Match(zones []*zone.Zone, address kernel.Address) []*zone.Zone {
	matched := make([]*zone.Zone, 0, len(zones))
	for _, candidate := range zones {
		if candidate == nil || !candidate.IsActive() {
			continue
		}
		if candidate.Covers(address) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

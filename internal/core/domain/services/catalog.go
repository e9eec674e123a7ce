package services

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/zone"
)

// Catalog is an immutable snapshot of the zones and methods a calculation
// runs against. A calculation reads one snapshot from start to finish, so
// concurrent catalog updates can never produce a quote that mixes old and
// new configuration.
type Catalog struct {
	zones   []*zone.Zone
	methods map[kernel.UUID]*method.Method
	ordered []*method.Method
}

// NewCatalog builds a snapshot from the given zones and methods.
// Nil entries are skipped; zone order is preserved and used as the final
// tie-breaker when ranking equally priced options.
func NewCatalog(zones []*zone.Zone, methods []*method.Method) Catalog {
	c := Catalog{
		zones:   make([]*zone.Zone, 0, len(zones)),
		methods: make(map[kernel.UUID]*method.Method, len(methods)),
		ordered: make([]*method.Method, 0, len(methods)),
	}

	for _, z := range zones {
		if z != nil {
			c.zones = append(c.zones, z)
		}
	}
	for _, m := range methods {
		if m != nil {
			c.methods[m.ID()] = m
			c.ordered = append(c.ordered, m)
		}
	}

	return c
}

// Zones returns the snapshot's zones in catalog order.
func (c Catalog) Zones() []*zone.Zone {
	return c.zones
}

// Methods returns the snapshot's methods in catalog order.
func (c Catalog) Methods() []*method.Method {
	return c.ordered
}

// MethodByID resolves a zone's method link to the linked method.
func (c Catalog) MethodByID(id kernel.UUID) (*method.Method, bool) {
	m, ok := c.methods[id]
	return m, ok
}

// VisibleTo returns a snapshot narrowed to the zones and methods available
// to the given store. Platform-owned entries are always included.
func (c Catalog) VisibleTo(store kernel.Owner) Catalog {
	zones := make([]*zone.Zone, 0, len(c.zones))
	for _, z := range c.zones {
		if z.Owner().AvailableTo(store) {
			zones = append(zones, z)
		}
	}

	methods := make([]*method.Method, 0, len(c.ordered))
	for _, m := range c.ordered {
		if m.Owner().AvailableTo(store) {
			methods = append(methods, m)
		}
	}

	return NewCatalog(zones, methods)
}

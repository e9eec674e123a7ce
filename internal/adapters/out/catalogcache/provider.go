// Package catalogcache keeps an in-memory snapshot of the shipping catalog.
//
// Rate calculation is read-heavy and zone or method edits are rare, so the
// hot path reads a cached snapshot instead of hitting Postgres on every
// request. Refresh loads a fresh snapshot and swaps it atomically under a
// write lock; readers holding the previous snapshot keep a consistent view.
package catalogcache

import (
	"context"
	"log/slog"
	"sync"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// Provider implements the CatalogProvider port over the zone and method
// repositories.
type Provider struct {
	zones   ports.ZoneRepository
	methods ports.MethodRepository
	logger  *slog.Logger

	mu       sync.RWMutex
	snapshot services.Catalog
	loaded   bool
}

// NewProvider creates a catalog provider. The cache starts empty; the first
// Catalog call loads it lazily unless Refresh ran before.
func NewProvider(zones ports.ZoneRepository, methods ports.MethodRepository, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		zones:   zones,
		methods: methods,
		logger:  logger.With("component", "catalog_cache"),
	}
}

// Catalog returns the cached snapshot, loading it from storage on first use.
func (p *Provider) Catalog(ctx context.Context) (services.Catalog, error) {
	p.mu.RLock()
	if p.loaded {
		snapshot := p.snapshot
		p.mu.RUnlock()
		return snapshot, nil
	}
	p.mu.RUnlock()

	if err := p.Refresh(ctx); err != nil {
		return services.Catalog{}, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot, nil
}

// Refresh reloads zones and methods from storage and swaps the snapshot.
// The old snapshot stays valid for calculations already in flight.
func (p *Provider) Refresh(ctx context.Context) error {
	zones, err := p.zones.GetAll(ctx)
	if err != nil {
		return err
	}

	methods, err := p.methods.GetAll(ctx)
	if err != nil {
		return err
	}

	snapshot := services.NewCatalog(zones, methods)

	p.mu.Lock()
	p.snapshot = snapshot
	p.loaded = true
	p.mu.Unlock()

	p.logger.InfoContext(ctx, "Shipping catalog refreshed",
		"zones", len(zones), "methods", len(methods))

	return nil
}

package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CatalogRefreshJob reloads the cached shipping catalog on a schedule so
// zone and method edits become visible to rate calculation without a
// restart.
type CatalogRefreshJob struct {
	provider ports.CatalogProvider
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogRefreshJob creates a refresh job with the given cron schedule,
// for example "@every 30s".
func NewCatalogRefreshJob(provider ports.CatalogProvider, schedule string, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		provider: provider,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "catalog_refresh_job"),
	}
}

// Start begins the periodic catalog refresh.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.provider.Refresh(ctx); err != nil {
			// A failed refresh keeps the previous snapshot, so calculation
			// continues on stale data until the next run succeeds.
			j.logger.ErrorContext(ctx, "Catalog refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the catalog refresh job.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}

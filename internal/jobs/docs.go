// Package jobs provides scheduled background tasks for the shipping engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the rate calculation service.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - Periodically reloads the cached zone and method
// catalog from storage so configuration edits reach the calculation path.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(catalogProvider, "@every 30s", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh schedule comes from configuration and accepts any expression
// the cron parser understands, seconds field included.
//
// # Error Handling
//
// A failed refresh is logged and the previous catalog snapshot stays in
// service until the next successful run.
package jobs

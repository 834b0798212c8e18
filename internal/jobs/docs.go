// Package jobs provides scheduled background tasks for the production pipeline.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required for the order service.
//
// # Available Jobs
//
// 1. HiddenOrderPurgeJob - Runs hourly to delete hidden orders whose retention window expired
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Purge failures are logged and retried on the next tick; a failed run never
// stops the scheduler.
package jobs

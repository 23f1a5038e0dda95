// Package jobs provides scheduled background tasks for the supply chain
// workflow service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot guarantee.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every minute to re-deliver notifications
// whose initial delivery failed. Notification rows commit undispatched
// before delivery is attempted, so every row still undispatched is safe to
// retry. Duplicate deliveries are possible; lost ones are not.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the dispatcher and its unit of work factory
//	jobManager := jobs.NewJobManager(uowFactory, dispatcher, logger)
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
// - A failed relay run is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs

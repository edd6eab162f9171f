// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order workflow.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every five seconds to publish pending outbox
// notifications to the message broker and mark them sent
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(relayHandler, logger)
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
// Relay failures are soft: a failed publish leaves the entry unsent and the
// run logs a warning. Entries already delivered are never republished because
// sent marks commit even when part of the batch fails.
package jobs

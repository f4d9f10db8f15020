// Package jobs provides scheduled background tasks for the logistics core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that no inbound request drives.
//
// # Available Jobs
//
// 1. NDREscalationJob - Escalates open, never-contacted NDR reports older
// than the configured grace period to RTO.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(escalateHandler, schedule, gracePeriod, logger)
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
// The escalation schedule is a standard five-field cron expression taken from
// configuration, typically hourly. Each run escalates every report whose
// grace period has lapsed, so a missed run is caught up by the next one.
//
// # Error Handling
//
// Escalation failures are logged and retried on the next scheduled run; the
// job never crashes the process.
package jobs

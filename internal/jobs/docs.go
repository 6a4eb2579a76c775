// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// with second-level precision. The state machine itself never needs a
// scheduler; the jobs only observe and tidy up.
//
// # Available Jobs
//
// 1. StuckOrderAlertJob - Every minute, logs orders waiting too long for a
// kitchen or a courier and orders past their estimate
// 2. ClosureExpiryJob - Every 30 seconds, clears an emergency closure whose
// until time has passed
//
// # Usage
//
//	jobManager := jobs.NewJobManager(waitingHandler, overdueHandler, liftHandler, jobs.Config{}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Both jobs act as the system actor.
//
// # Error Handling
//
// - The alert job keeps scanning the remaining queues when one query fails
// - Failed job starts will stop any already running jobs
package jobs

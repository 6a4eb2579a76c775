package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stuckOrderAlertJob *StuckOrderAlertJob
	closureExpiryJob   *ClosureExpiryJob
}

// Config holds the schedules and thresholds of all jobs.
type Config struct {
	Alerts                AlertConfig
	ClosureExpirySchedule string
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query and command handlers as dependencies to wire up the job execution.
func NewJobManager(
	waiting WaitingOrdersReader,
	overdue OverdueOrdersReader,
	lifter ClosureLifter,
	cfg Config,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stuckOrderAlertJob: NewStuckOrderAlertJob(waiting, overdue, cfg.Alerts, logger),
		closureExpiryJob:   NewClosureExpiryJob(lifter, cfg.ClosureExpirySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.closureExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start closure expiry job: %w", err)
	}

	if err := jm.stuckOrderAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.closureExpiryJob.Stop()
		return fmt.Errorf("failed to start stuck order alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stuckOrderAlertJob.Stop()
	jm.closureExpiryJob.Stop()
}

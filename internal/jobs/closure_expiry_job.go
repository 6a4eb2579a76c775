package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultClosureExpirySchedule checks the emergency closure every 30 seconds.
const DefaultClosureExpirySchedule = "*/30 * * * * *"

type ClosureLifter interface {
	Handle(ctx context.Context, actor kernel.Actor) (bool, error)
}

// ClosureExpiryJob lifts an emergency closure once its until time has passed.
// Admission already ignores an expired closure; the job clears the stored flag.
type ClosureExpiryJob struct {
	lifter   ClosureLifter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewClosureExpiryJob(lifter ClosureLifter, schedule string, logger *slog.Logger) *ClosureExpiryJob {
	if schedule == "" {
		schedule = DefaultClosureExpirySchedule
	}
	return &ClosureExpiryJob{
		lifter:   lifter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "closure_expiry_job"),
	}
}

// Start schedules the check.
func (j *ClosureExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Closure expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running check to finish.
func (j *ClosureExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Closure expiry job stopped")
}

// RunOnce reports whether a closure was lifted.
func (j *ClosureExpiryJob) RunOnce(ctx context.Context) (bool, error) {
	lifted, err := j.lifter.Handle(ctx, kernel.SystemActor())
	if err != nil {
		j.logger.ErrorContext(ctx, "Closure expiry check failed", "error", err)
		return false, err
	}
	if lifted {
		j.logger.InfoContext(ctx, "Expired emergency closure lifted")
	}
	return lifted, nil
}

package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultAlertSchedule runs the stuck order scan at the start of every minute.
	DefaultAlertSchedule = "0 * * * * *"

	DefaultKitchenWaitMinutes = 10
	DefaultCourierWaitMinutes = 15
)

type (
	WaitingOrdersReader interface {
		Handle(ctx context.Context, query queries.GetWaitingOrdersQuery) ([]queries.GetWaitingOrdersQueryResponse, error)
	}

	OverdueOrdersReader interface {
		Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.GetOverdueOrdersQueryResponse, error)
	}
)

// AlertConfig holds the thresholds of the stuck order scan.
type AlertConfig struct {
	Schedule           string
	KitchenWaitMinutes int
	CourierWaitMinutes int
}

func (c AlertConfig) withDefaults() AlertConfig {
	if c.Schedule == "" {
		c.Schedule = DefaultAlertSchedule
	}
	if c.KitchenWaitMinutes <= 0 {
		c.KitchenWaitMinutes = DefaultKitchenWaitMinutes
	}
	if c.CourierWaitMinutes <= 0 {
		c.CourierWaitMinutes = DefaultCourierWaitMinutes
	}
	return c
}

// AlertReport counts what one scan found.
type AlertReport struct {
	WaitingForKitchen int
	WaitingForCourier int
	Overdue           int
}

// StuckOrderAlertJob periodically logs orders nobody has claimed in time and
// orders past their preparation or delivery estimate.
type StuckOrderAlertJob struct {
	waiting WaitingOrdersReader
	overdue OverdueOrdersReader
	cfg     AlertConfig
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStuckOrderAlertJob creates the job. Zero config values fall back to the defaults.
func NewStuckOrderAlertJob(
	waiting WaitingOrdersReader,
	overdue OverdueOrdersReader,
	cfg AlertConfig,
	logger *slog.Logger,
) *StuckOrderAlertJob {
	return &StuckOrderAlertJob{
		waiting: waiting,
		overdue: overdue,
		cfg:     cfg.withDefaults(),
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stuck_order_alert_job"),
	}
}

// Start schedules the scan.
func (j *StuckOrderAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stuck order scan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck order alert job started", "schedule", j.cfg.Schedule)
	return nil
}

// Stop stops the job and waits for a running scan to finish.
func (j *StuckOrderAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stuck order alert job stopped")
}

// RunOnce performs a single scan. A failing reader does not stop the others;
// all failures are returned joined.
func (j *StuckOrderAlertJob) RunOnce(ctx context.Context) (AlertReport, error) {
	var report AlertReport
	var errs error

	kitchen, err := j.scanQueue(ctx, kernel.RoleKitchen, j.cfg.KitchenWaitMinutes)
	errs = errors.Join(errs, err)
	report.WaitingForKitchen = kitchen

	courier, err := j.scanQueue(ctx, kernel.RoleCourier, j.cfg.CourierWaitMinutes)
	errs = errors.Join(errs, err)
	report.WaitingForCourier = courier

	overdue, err := j.overdue.Handle(ctx, queries.NewGetOverdueOrdersQuery(kernel.SystemActor()))
	if err != nil {
		errs = errors.Join(errs, fmt.Errorf("overdue orders: %w", err))
	}
	for _, o := range overdue {
		j.logger.WarnContext(ctx, "Order is overdue",
			"order_id", o.OrderID,
			"status", o.Status,
			"assignee_id", idOrZero(o.AssigneeID),
			"due_at", o.DueAt,
			"overdue_minutes", o.OverdueMinutes,
		)
	}
	report.Overdue = len(overdue)

	return report, errs
}

func (j *StuckOrderAlertJob) scanQueue(ctx context.Context, role kernel.Role, minWait int) (int, error) {
	query, err := queries.NewGetWaitingOrdersQuery(kernel.SystemActor(), role, minWait)
	if err != nil {
		return 0, err
	}

	waiting, err := j.waiting.Handle(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("orders waiting for %s: %w", role, err)
	}

	for _, w := range waiting {
		j.logger.WarnContext(ctx, "Order is waiting to be claimed",
			"order_id", w.OrderID,
			"queue", role.String(),
			"status", w.Status,
			"waiting_since", w.WaitingSince,
			"waited_minutes", w.WaitedMinutes,
		)
	}
	return len(waiting), nil
}

func idOrZero(id *uint64) uint64 {
	if id == nil {
		return 0
	}
	return *id
}

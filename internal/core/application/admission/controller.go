// Package admission decides whether a new order may be created. It loads the
// settings snapshot and the order counts and runs the domain admission policy
// in a fixed order, stopping at the first rejection.
package admission

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RateLimitWindow is the sliding window of the per-actor rate limit.
const RateLimitWindow = time.Hour

// Config holds the admission policy switches.
type Config struct {
	// Location is the restaurant's timezone used for operating hours.
	Location *time.Location

	// FailOpen admits orders when the settings cannot be read.
	FailOpen bool
}

// Request describes a draft waiting for admission.
type Request struct {
	ActorID   *uint64
	ClientIP  string
	ItemCount int
	IsDemo    bool
}

// Controller runs, in order: emergency closure, operating hours, rate limit,
// capacity, cart size.
type Controller struct {
	settings ports.SettingsProvider
	stats    ports.OrderStatistics
	clock    ports.Clock
	policy   services.AdmissionPolicy
	cfg      Config
	logger   *slog.Logger
}

func NewController(
	settings ports.SettingsProvider,
	stats ports.OrderStatistics,
	clock ports.Clock,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Controller{
		settings: settings,
		stats:    stats,
		clock:    clock,
		policy:   services.NewAdmissionPolicy(),
		cfg:      cfg,
		logger:   logger.With("component", "admission"),
	}
}

// Admit returns nil when the order may be created, an *errs.AdmissionDeniedError
// when a check rejects it and an *errs.UnexpectedError when a count fails.
// The counts are point-in-time reads outside the insert transaction.
func (c *Controller) Admit(ctx context.Context, req Request) error {
	s, err := c.settings.Current(ctx)
	if err != nil {
		if c.cfg.FailOpen {
			c.logger.WarnContext(ctx, "settings unavailable, admitting order", "error", err)
			return nil
		}
		return errs.NewUnexpectedErrorWithCause("read settings", err)
	}

	now := c.clock.Now()

	if err := c.policy.CheckClosure(s, now); err != nil {
		return err
	}
	if err := c.policy.CheckHours(s, now.In(c.cfg.Location)); err != nil {
		return err
	}

	if !req.IsDemo {
		recent, err := c.stats.CountCreatedSince(ctx, req.ActorID, req.ClientIP, now.Add(-RateLimitWindow))
		if err != nil {
			return errs.NewUnexpectedErrorWithCause("count recent orders", err)
		}
		if err := c.policy.CheckRateLimit(s, recent); err != nil {
			c.logger.InfoContext(ctx, "order rate limited", "recent", recent, "client_ip", req.ClientIP)
			return err
		}
	}

	active, err := c.stats.CountActive(ctx)
	if err != nil {
		return errs.NewUnexpectedErrorWithCause("count active orders", err)
	}
	if err := c.policy.CheckCapacity(s, active); err != nil {
		return err
	}

	return c.policy.CheckCartSize(s, req.ItemCount)
}

package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// maxTransitionAttempts bounds re-reads after a lost version compare-and-swap.
const maxTransitionAttempts = 3

// TransitionDeps are the collaborators shared by every order transition handler.
type TransitionDeps struct {
	UoWFactory OrderUoWFactory
	Notifier   ports.Notifier
	Clock      ports.Clock
	Logger     *slog.Logger
}

// transitionRunner executes one role-gated order transition:
// authorize, begin, re-read with lock, mutate, versioned update, commit, notify.
type transitionRunner struct {
	deps    TransitionDeps
	action  string
	allowed kernel.RoleSet
	logger  *slog.Logger
}

func newTransitionRunner(deps TransitionDeps, action string, allowed kernel.RoleSet) transitionRunner {
	return transitionRunner{
		deps:    deps,
		action:  action,
		allowed: allowed,
		logger:  deps.Logger.With("component", "commands", "action", action),
	}
}

type mutation func(o *order.Order, now time.Time) error

func (r transitionRunner) run(ctx context.Context, orderID uint64, actor kernel.Actor, mutate mutation) error {
	if err := authorize(r.action, r.allowed, actor); err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= maxTransitionAttempts; attempt++ {
		o, previous, err := r.attempt(ctx, orderID, mutate)
		if errors.Is(err, errs.ErrConcurrentModification) {
			lastErr = err
			r.logger.DebugContext(ctx, "version conflict, re-reading order", "order_id", orderID, "attempt", attempt)
			continue
		}
		if err != nil {
			return classify(r.action, err)
		}

		notifyStatusChange(ctx, r.deps.Notifier, r.logger, o, previous)
		return nil
	}
	return errs.NewUnexpectedErrorWithCause(r.action, lastErr)
}

func (r transitionRunner) attempt(ctx context.Context, orderID uint64, mutate mutation) (*order.Order, order.Status, error) {
	uow := r.deps.UoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, order.Unknown, err
	}

	previous := o.Status()
	if err = mutate(o, r.deps.Clock.Now()); err != nil {
		return nil, previous, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, previous, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, previous, err
	}

	return o, previous, nil
}

// classify keeps typed errors and wraps everything else as Unexpected.
func classify(action string, err error) error {
	if errs.IsTyped(err) {
		return err
	}
	return errs.NewUnexpectedErrorWithCause(action, err)
}

// notifyStatusChange reports the latest audit entry. Failures are logged only.
func notifyStatusChange(ctx context.Context, notifier ports.Notifier, logger *slog.Logger, o *order.Order, previous order.Status) {
	last, ok := o.History().Last()
	if !ok {
		return
	}
	change := ports.StatusChange{
		OrderID:        o.ID(),
		PreviousStatus: previous.String(),
		Status:         o.Status().String(),
		ActorID:        last.ActorID,
		CustomerID:     o.CustomerID(),
		Note:           last.Note,
		OccurredAt:     last.Timestamp,
	}
	if previous == order.Unknown {
		change.PreviousStatus = ""
	}
	if err := notifier.NotifyStatusChanged(ctx, change); err != nil {
		logger.WarnContext(ctx, "status notification failed", "order_id", o.ID(), "status", change.Status, "error", err)
	}
}

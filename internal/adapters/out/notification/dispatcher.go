// Package notification decouples status notifications from the transition
// that caused them: deliveries run in the background with a bounded number
// in flight and a per-delivery timeout.
package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/ports"

	"golang.org/x/sync/semaphore"
)

const (
	DefaultTimeout     = 5 * time.Second
	DefaultMaxInFlight = 64
)

var (
	ErrDispatcherClosed = errors.New("notification dispatcher is closed")
	ErrTooManyInFlight  = errors.New("too many notifications in flight")
)

// Dispatcher is an asynchronous ports.Notifier in front of another one.
type Dispatcher struct {
	next    ports.Notifier
	sem     *semaphore.Weighted
	timeout time.Duration
	logger  *slog.Logger

	// mu orders wg.Add against Close so no delivery starts once Wait runs.
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(next ports.Notifier, maxInFlight int, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		next:    next,
		sem:     semaphore.NewWeighted(int64(maxInFlight)),
		timeout: timeout,
		logger:  logger.With("component", "notification"),
	}
}

// NotifyStatusChanged schedules the delivery and returns at once. The change
// is dropped with ErrTooManyInFlight when the limit is reached. Cancelling
// ctx after the call does not cancel the delivery.
func (d *Dispatcher) NotifyStatusChanged(ctx context.Context, change ports.StatusChange) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	if !d.sem.TryAcquire(1) {
		d.mu.Unlock()
		return ErrTooManyInFlight
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer d.sem.Release(1)

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.next.NotifyStatusChanged(sendCtx, change); err != nil {
			d.logger.WarnContext(sendCtx, "status notification delivery failed",
				"order_id", change.OrderID, "status", change.Status, "error", err)
		}
	}()
	return nil
}

// Close stops accepting changes and waits for deliveries in flight until ctx
// is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package notification_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/notification"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// blockingNotifier records deliveries and blocks each one until release is closed.
type blockingNotifier struct {
	mu       sync.Mutex
	got      []ports.StatusChange
	release  chan struct{}
	started  chan struct{}
	err      error
	deadline bool
}

func newBlockingNotifier() *blockingNotifier {
	return &blockingNotifier{release: make(chan struct{}), started: make(chan struct{}, 16)}
}

func (n *blockingNotifier) NotifyStatusChanged(ctx context.Context, change ports.StatusChange) error {
	n.started <- struct{}{}
	select {
	case <-n.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, n.deadline = ctx.Deadline()
	n.got = append(n.got, change)
	return n.err
}

func (n *blockingNotifier) delivered() []ports.StatusChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.StatusChange(nil), n.got...)
}

func TestDispatcher_DeliversInBackground(t *testing.T) {
	next := newBlockingNotifier()
	d := notification.NewDispatcher(next, 4, time.Second, discardLogger())

	ctx, cancel := context.WithCancel(t.Context())
	err := d.NotifyStatusChanged(ctx, ports.StatusChange{OrderID: 1, Status: "READY"})
	require.NoError(t, err)
	<-next.started
	cancel()
	close(next.release)

	require.NoError(t, d.Close(t.Context()))
	got := next.delivered()
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].OrderID)
	assert.True(t, next.deadline)
}

func TestDispatcher_BoundsInFlight(t *testing.T) {
	next := newBlockingNotifier()
	d := notification.NewDispatcher(next, 2, time.Second, discardLogger())

	require.NoError(t, d.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: 1}))
	require.NoError(t, d.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: 2}))
	<-next.started
	<-next.started

	err := d.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: 3})

	require.ErrorIs(t, err, notification.ErrTooManyInFlight)
	close(next.release)
	require.NoError(t, d.Close(t.Context()))
	assert.Len(t, next.delivered(), 2)
}

func TestDispatcher_DeliveryErrorsAreSwallowed(t *testing.T) {
	next := newBlockingNotifier()
	next.err = errors.New("broker down")
	close(next.release)
	d := notification.NewDispatcher(next, 1, time.Second, discardLogger())

	err := d.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: 1})

	require.NoError(t, err)
	require.NoError(t, d.Close(t.Context()))
}

func TestDispatcher_TimesOutSlowDeliveries(t *testing.T) {
	next := newBlockingNotifier()
	d := notification.NewDispatcher(next, 1, 20*time.Millisecond, discardLogger())

	require.NoError(t, d.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: 1}))

	require.NoError(t, d.Close(t.Context()))
	assert.Empty(t, next.delivered())
}

func TestDispatcher_Close(t *testing.T) {
	t.Run("rejects changes after close", func(t *testing.T) {
		d := notification.NewDispatcher(newBlockingNotifier(), 1, time.Second, discardLogger())
		require.NoError(t, d.Close(t.Context()))

		err := d.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: 1})

		require.ErrorIs(t, err, notification.ErrDispatcherClosed)
	})

	t.Run("gives up waiting when ctx ends", func(t *testing.T) {
		next := newBlockingNotifier()
		d := notification.NewDispatcher(next, 1, time.Minute, discardLogger())
		require.NoError(t, d.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: 1}))
		<-next.started

		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()
		err := d.Close(ctx)

		require.ErrorIs(t, err, context.DeadlineExceeded)
		close(next.release)
	})
}

type countingNotifier struct {
	count atomic.Int64
}

func (n *countingNotifier) NotifyStatusChanged(context.Context, ports.StatusChange) error {
	n.count.Add(1)
	return nil
}

func TestDispatcher_CloseWaitsForEveryAcceptedChange(t *testing.T) {
	for range 20 {
		next := &countingNotifier{}
		d := notification.NewDispatcher(next, 1024, time.Second, discardLogger())

		var accepted atomic.Int64
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if d.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: uint64(i)}) == nil {
					accepted.Add(1)
				}
			}()
		}

		close(start)
		require.NoError(t, d.Close(t.Context()))
		wg.Wait()

		assert.Equal(t, accepted.Load(), next.count.Load())
	}
}

func TestLogNotifier_NeverFails(t *testing.T) {
	n := notification.NewLogNotifier(discardLogger())

	err := n.NotifyStatusChanged(t.Context(), ports.StatusChange{OrderID: 1, Status: "READY"})

	require.NoError(t, err)
}

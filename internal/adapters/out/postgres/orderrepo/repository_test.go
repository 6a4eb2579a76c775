package orderrepo_test

import (
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/dbtest"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (*orderrepo.GormOrderRepository, *MockAggregateTracker) {
	t.Helper()
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	return orderrepo.NewGormOrderRepository(dbtest.NewSQLite(t), tracker), tracker
}

func TestGormOrderRepository_Add(t *testing.T) {
	ctx := t.Context()
	tracker := new(MockAggregateTracker)
	repo := orderrepo.NewGormOrderRepository(dbtest.NewSQLite(t), tracker)
	o := newTestOrder(t, 7, "10.0.0.1", baseTime)
	tracker.On("TrackAggregate", uint64(1), o).Once()

	err := repo.Add(ctx, o)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), o.ID())
	assert.Equal(t, uint64(1), o.Version())
	tracker.AssertExpectations(t)
}

func TestGormOrderRepository_Add_RejectsUnconstructedOrder(t *testing.T) {
	repo, _ := newRepository(t)

	err := repo.Add(t.Context(), &order.Order{})

	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestGormOrderRepository_Get_RoundTrip(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepository(t)
	o := newTestOrder(t, 7, "10.0.0.1", baseTime)
	require.NoError(t, repo.Add(ctx, o))

	require.NoError(t, o.Confirm(kernel.SystemActor(), "", baseTime.Add(time.Minute)))
	kitchen, err := kernel.NewActor(10, kernel.RoleKitchen)
	require.NoError(t, err)
	require.NoError(t, o.StartPreparing(kitchen, 15, baseTime.Add(2*time.Minute)))
	require.NoError(t, repo.Update(ctx, o))

	got, err := repo.Get(ctx, o.ID())

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, got.Status())
	assert.Equal(t, uint64(2), got.Version())
	assert.Equal(t, "21.25", got.TotalAmount().String())
	assert.True(t, got.RefundedAmount().IsZero())
	assert.Equal(t, "pay_123", got.PaymentID())
	require.NotNil(t, got.CustomerID())
	assert.Equal(t, uint64(7), *got.CustomerID())
	require.NotNil(t, got.KitchenID())
	assert.Equal(t, uint64(10), *got.KitchenID())
	require.NotNil(t, got.PrepEstimatedMinutes())
	assert.Equal(t, 15, *got.PrepEstimatedMinutes())
	assert.Nil(t, got.CourierID())

	require.Len(t, got.Items(), 2)
	assert.Equal(t, "Margherita", got.Items()[0].Name)
	assert.Equal(t, 2, got.Items()[0].Quantity)
	assert.Equal(t, "9.50", got.Items()[0].UnitPrice.String())

	entries := got.History().Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []order.Status{order.Pending, order.Confirmed, order.Preparing},
		[]order.Status{entries[0].Status, entries[1].Status, entries[2].Status})
	assert.WithinDuration(t, baseTime.Add(2*time.Minute), entries[2].Timestamp, 0)
	assert.WithinDuration(t, baseTime.Add(2*time.Minute), got.StatusChangedAt(), 0)
	assert.WithinDuration(t, baseTime, got.CreatedAt(), 0)
}

func TestGormOrderRepository_Get_NotFound(t *testing.T) {
	repo, _ := newRepository(t)

	_, err := repo.Get(t.Context(), 42)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormOrderRepository_GetForUpdate_NotFound(t *testing.T) {
	repo, _ := newRepository(t)

	_, err := repo.GetForUpdate(t.Context(), 42)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormOrderRepository_Update_StaleVersion(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepository(t)
	o := newTestOrder(t, 7, "10.0.0.1", baseTime)
	require.NoError(t, repo.Add(ctx, o))

	first, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	second, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)

	require.NoError(t, first.Confirm(kernel.SystemActor(), "", baseTime.Add(time.Minute)))
	require.NoError(t, repo.Update(ctx, first))

	admin, err := kernel.NewActor(1, kernel.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, second.Cancel(admin, "duplicate", baseTime.Add(time.Minute)))
	err = repo.Update(ctx, second)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	stored, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, stored.Status())
	assert.Equal(t, uint64(1), second.Version(), "losing writer keeps its version")
}

func TestGormOrderRepository_Update_MissingOrder(t *testing.T) {
	repo, _ := newRepository(t)
	o := newTestOrder(t, 7, "10.0.0.1", baseTime)
	o.MarkPersisted(99, 1)

	err := repo.Update(t.Context(), o)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormOrderStatistics(t *testing.T) {
	ctx := t.Context()
	db := dbtest.NewSQLite(t)
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	repo := orderrepo.NewGormOrderRepository(db, tracker)
	stats := orderrepo.NewGormOrderStatistics(db)

	recent := baseTime.Add(-10 * time.Minute)
	old := baseTime.Add(-2 * time.Hour)
	for _, o := range []*order.Order{
		newTestOrder(t, 7, "10.0.0.1", recent),
		newTestOrder(t, 7, "10.0.0.2", recent),
		newTestOrder(t, 8, "10.0.0.1", recent),
		newTestOrder(t, 7, "10.0.0.1", old),
		newDemoOrder(t, recent),
	} {
		require.NoError(t, repo.Add(ctx, o))
	}

	cancelled := newTestOrder(t, 9, "10.0.0.9", recent)
	require.NoError(t, repo.Add(ctx, cancelled))
	admin, err := kernel.NewActor(1, kernel.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, cancelled.Cancel(admin, "", recent))
	require.NoError(t, repo.Update(ctx, cancelled))

	since := baseTime.Add(-time.Hour)
	actor7 := uint64(7)

	t.Run("by actor or ip", func(t *testing.T) {
		n, err := stats.CountCreatedSince(ctx, &actor7, "10.0.0.1", since)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("by actor only", func(t *testing.T) {
		n, err := stats.CountCreatedSince(ctx, &actor7, "", since)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("by ip only", func(t *testing.T) {
		n, err := stats.CountCreatedSince(ctx, nil, "10.0.0.1", since)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("nothing to match", func(t *testing.T) {
		n, err := stats.CountCreatedSince(ctx, nil, "", since)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("active excludes demo and terminal orders", func(t *testing.T) {
		n, err := stats.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
}

package postgres_test

import (
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/dbtest"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem("Calzone", 1, kernel.MustMoney("12.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(order.Draft{
		Items:       []order.Item{item},
		TotalAmount: kernel.MustMoney("12.00"),
		PaymentID:   "pay_1",
	}, kernel.NewGuestActor(), baseTime)
	require.NoError(t, err)
	return o
}

func TestUnitOfWork_TransactionLifecycle(t *testing.T) {
	ctx := t.Context()
	uow := postgres_adapter.NewGormUnitOfWorkFactory(dbtest.NewSQLite(t)).Create()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "nested Begin is a no-op")
	require.NoError(t, uow.Commit(ctx))

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback(ctx))
}

func TestUnitOfWork_TransactionErrors(t *testing.T) {
	ctx := t.Context()
	uow := postgres_adapter.NewGormUnitOfWorkFactory(dbtest.NewSQLite(t)).Create()

	assert.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func TestUnitOfWork_CommitPersists(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(dbtest.NewSQLite(t))
	uow := factory.CreateGorm()
	o := createTestOrder(t)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))

	assert.Equal(t, []uint64{o.ID()}, uow.TrackedAggregateIDs())
	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, got.Status())
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(dbtest.NewSQLite(t))
	uow := factory.CreateGorm()
	o := createTestOrder(t)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	_, err := uow.SettingsRepository().GetOrCreate(ctx, baseTime)
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(ctx))

	assert.Empty(t, uow.TrackedAggregateIDs())
	_, err = factory.Create().OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_NestedBeginKeepsTransaction(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(dbtest.NewSQLite(t))
	uow := factory.CreateGorm()
	o := createTestOrder(t)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback(ctx))

	_, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound, "the second Begin must not commit or replace the open transaction")
	assert.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

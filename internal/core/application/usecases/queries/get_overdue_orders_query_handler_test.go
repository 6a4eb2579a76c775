package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/dbtest"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverdueOrdersQueryHandler_Handle(t *testing.T) {
	db := dbtest.NewSQLite(t)
	now := baseTime.Add(time.Hour)
	handler := queries.NewGetOverdueOrdersQueryHandler(db, fixedClock{now: now})

	// Preparation started at created+2m, delivery at created+4m.
	cooking := seedOrder(t, db, orderSeed{status: order.Preparing, created: baseTime, kitchenID: 11, prepMins: 15})
	riding := seedOrder(t, db, orderSeed{status: order.Delivering, created: baseTime, courierID: 21, delivMins: 25})
	seedOrder(t, db, orderSeed{status: order.Preparing, created: baseTime.Add(50 * time.Minute), prepMins: 15})
	seedOrder(t, db, orderSeed{status: order.Preparing, created: baseTime, demo: true})
	seedOrder(t, db, orderSeed{status: order.Ready, created: baseTime})
	seedOrder(t, db, orderSeed{status: order.Delivered, created: baseTime})

	t.Run("lists orders past their estimate, most overdue first", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.NewGetOverdueOrdersQuery(actor(t, 1, kernel.RoleAdmin)))

		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Equal(t, cooking.ID(), result[0].OrderID)
		assert.Equal(t, "PREPARING", result[0].Status)
		require.NotNil(t, result[0].AssigneeID)
		assert.Equal(t, uint64(11), *result[0].AssigneeID)
		assert.Equal(t, 15, result[0].EstimatedMinutes)
		assert.Equal(t, baseTime.Add(17*time.Minute), result[0].DueAt)
		assert.Equal(t, 43, result[0].OverdueMinutes)

		assert.Equal(t, riding.ID(), result[1].OrderID)
		assert.Equal(t, "DELIVERING", result[1].Status)
		require.NotNil(t, result[1].AssigneeID)
		assert.Equal(t, uint64(21), *result[1].AssigneeID)
		assert.Equal(t, 31, result[1].OverdueMinutes)
	})

	t.Run("kitchen staff may read", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.NewGetOverdueOrdersQuery(actor(t, 10, kernel.RoleKitchen)))

		require.NoError(t, err)
	})

	t.Run("guests may not read", func(t *testing.T) {
		result, err := handler.Handle(t.Context(), queries.NewGetOverdueOrdersQuery(kernel.NewGuestActor()))

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, result)
	})

	t.Run("invalid query", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.GetOverdueOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrGetOverdueOrdersQueryIsNotConstructed)
	})
}

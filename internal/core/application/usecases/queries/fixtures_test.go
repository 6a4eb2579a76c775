package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// noopTracker satisfies the repository's aggregate tracker; query tests do
// not inspect tracked aggregates.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ uint64, _ any) {}

func actor(t *testing.T, id uint64, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

// orderSeed walks a new order forward, one step per minute starting at created.
type orderSeed struct {
	customerID uint64
	status     order.Status
	created    time.Time
	demo       bool
	kitchenID  uint64
	courierID  uint64
	prepMins   int
	delivMins  int
}

func seedOrder(t *testing.T, db *gorm.DB, s orderSeed) *order.Order {
	t.Helper()
	item, err := order.NewItem("Margherita", 2, kernel.MustMoney("9.50"))
	require.NoError(t, err)

	creator := kernel.SystemActor()
	if s.customerID != 0 {
		creator = actor(t, s.customerID, kernel.RoleCustomer)
	}
	draft := order.Draft{
		Items:       []order.Item{item},
		TotalAmount: kernel.MustMoney("19.00"),
		PaymentID:   "pay_seed",
	}
	if s.demo {
		draft.IsDemo = true
		draft.DemoScenario = "lunch-rush"
		draft.PaymentID = ""
	}
	o, err := order.NewOrder(draft, creator, s.created)
	require.NoError(t, err)

	kitchenID, courierID := s.kitchenID, s.courierID
	if kitchenID == 0 {
		kitchenID = 10
	}
	if courierID == 0 {
		courierID = 20
	}
	prepMins, delivMins := s.prepMins, s.delivMins
	if prepMins == 0 {
		prepMins = 15
	}
	if delivMins == 0 {
		delivMins = 25
	}
	kitchen := actor(t, kitchenID, kernel.RoleKitchen)
	courier := actor(t, courierID, kernel.RoleCourier)

	now := s.created
	steps := []struct {
		reach order.Status
		run   func() error
	}{
		{order.Confirmed, func() error { return o.Confirm(kernel.SystemActor(), "", now) }},
		{order.Preparing, func() error { return o.StartPreparing(kitchen, prepMins, now) }},
		{order.Ready, func() error { return o.MarkReady(kitchen, now) }},
		{order.Delivering, func() error { return o.AcceptDelivery(courier, delivMins, now) }},
		{order.Delivered, func() error { return o.MarkDelivered(courier, now) }},
	}
	for _, step := range steps {
		if o.Status() == s.status || s.status == order.Cancelled {
			break
		}
		now = now.Add(time.Minute)
		require.NoError(t, step.run())
	}
	if s.status == order.Cancelled {
		now = now.Add(time.Minute)
		require.NoError(t, o.Cancel(actor(t, 1, kernel.RoleAdmin), "seed", now))
	}
	require.Equal(t, s.status, o.Status())

	require.NoError(t, orderrepo.NewGormOrderRepository(db, noopTracker{}).Add(t.Context(), o))
	return o
}

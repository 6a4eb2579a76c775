package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func actor(t *testing.T, id uint64, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

var (
	kitchenID uint64 = 10
	courierID uint64 = 20
)

// persistedOrder builds an order already stored with id 1 and walked forward
// to status.
func persistedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem("Margherita", 2, kernel.MustMoney("9.50"))
	require.NoError(t, err)
	o, err := order.NewOrder(order.Draft{
		Items:       []order.Item{item},
		TotalAmount: kernel.MustMoney("19.00"),
		PaymentID:   "pay_1",
		ClientIP:    "10.0.0.1",
	}, actor(t, 100, kernel.RoleCustomer), baseTime)
	require.NoError(t, err)
	o.MarkPersisted(1, 1)

	kitchen := actor(t, kitchenID, kernel.RoleKitchen)
	courier := actor(t, courierID, kernel.RoleCourier)
	now := baseTime
	steps := []struct {
		reach order.Status
		run   func() error
	}{
		{order.Confirmed, func() error { return o.Confirm(kernel.SystemActor(), "", now) }},
		{order.Preparing, func() error { return o.StartPreparing(kitchen, 15, now) }},
		{order.Ready, func() error { return o.MarkReady(kitchen, now) }},
		{order.Delivering, func() error { return o.AcceptDelivery(courier, 25, now) }},
		{order.Delivered, func() error { return o.MarkDelivered(courier, now) }},
	}
	switch status {
	case order.Pending:
		return o
	case order.Cancelled:
		require.NoError(t, o.Cancel(actor(t, 1, kernel.RoleAdmin), "", now))
		return o
	}
	for _, step := range steps {
		now = now.Add(time.Minute)
		require.NoError(t, step.run())
		if step.reach == status {
			return o
		}
	}
	t.Fatalf("unreachable status %s", status)
	return nil
}

func transitionDeps(factory commands.OrderUoWFactory, notifier *MockNotifier) commands.TransitionDeps {
	return commands.TransitionDeps{
		UoWFactory: factory,
		Notifier:   notifier,
		Clock:      fixedClock{now: baseTime.Add(time.Hour)},
		Logger:     discardLogger(),
	}
}

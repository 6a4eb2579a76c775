package orderrepo_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id uint64, aggregate any) {
	m.Called(id, aggregate)
}

func newTestOrder(t *testing.T, customerID uint64, clientIP string, createdAt time.Time) *order.Order {
	t.Helper()
	pizza, err := order.NewItem("Margherita", 2, kernel.MustMoney("9.50"))
	require.NoError(t, err)
	soda, err := order.NewItem("Soda", 1, kernel.MustMoney("2.25"))
	require.NoError(t, err)

	customer, err := kernel.NewActor(customerID, kernel.RoleCustomer)
	require.NoError(t, err)

	o, err := order.NewOrder(order.Draft{
		Items:       []order.Item{pizza, soda},
		TotalAmount: kernel.MustMoney("21.25"),
		PaymentID:   "pay_123",
		ClientIP:    clientIP,
	}, customer, createdAt)
	require.NoError(t, err)
	return o
}

func newDemoOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := order.NewItem("Demo pie", 1, kernel.MustMoney("1.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(order.Draft{
		Items:        []order.Item{item},
		TotalAmount:  kernel.MustMoney("1.00"),
		IsDemo:       true,
		DemoScenario: "rush-hour",
		ClientIP:     "10.0.0.1",
	}, kernel.SystemActor(), createdAt)
	require.NoError(t, err)
	return o
}

package commands_test

import (
	"sync"
	"testing"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/dbtest"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gormOrderUoWFactory struct {
	f *postgres.GormUnitOfWorkFactory
}

func (g gormOrderUoWFactory) Create() commands.OrderUoW {
	return g.f.CreateGorm()
}

// storedOrder persists an order walked to status and returns the store-backed
// handler dependencies along with its id.
func storedOrder(t *testing.T, status order.Status) (commands.TransitionDeps, *postgres.GormUnitOfWorkFactory, uint64) {
	t.Helper()
	db := dbtest.NewSQLite(t)
	factory := postgres.NewGormUnitOfWorkFactory(db)

	o := persistedOrder(t, status)
	require.NoError(t, factory.Create().OrderRepository().Add(t.Context(), o))

	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", mock.Anything, mock.Anything).Return(nil).Maybe()
	return transitionDeps(gormOrderUoWFactory{f: factory}, notifier), factory, o.ID()
}

func TestAcceptDelivery_ConcurrentCouriers_ExactlyOneWins(t *testing.T) {
	// Arrange
	const couriers = 8
	deps, factory, id := storedOrder(t, order.Ready)
	handler := commands.NewAcceptDeliveryCommandHandler(deps)

	results := make([]error, couriers)
	var wg sync.WaitGroup

	// Act
	for i := range couriers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			courier, err := kernel.NewActor(uint64(200+i), kernel.RoleCourier)
			if err != nil {
				results[i] = err
				return
			}
			cmd, err := commands.NewAcceptDeliveryCommand(id, courier, 20)
			if err != nil {
				results[i] = err
				return
			}
			results[i] = handler.Handle(t.Context(), cmd)
		}()
	}
	wg.Wait()

	// Assert
	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	}
	assert.Equal(t, 1, winners)

	stored, err := factory.Create().OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, order.Delivering, stored.Status())
	require.NotNil(t, stored.CourierID())
	last, _ := stored.History().Last()
	assert.Equal(t, *stored.CourierID(), *last.ActorID)
	assert.Equal(t, order.Delivering, last.Status)
}

func TestStartPreparing_ConcurrentKitchens_ExactlyOneWins(t *testing.T) {
	// Arrange
	const kitchens = 5
	deps, factory, id := storedOrder(t, order.Confirmed)
	handler := commands.NewStartPreparingCommandHandler(deps)

	results := make([]error, kitchens)
	var wg sync.WaitGroup

	// Act
	for i := range kitchens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kitchen, err := kernel.NewActor(uint64(300+i), kernel.RoleKitchen)
			if err != nil {
				results[i] = err
				return
			}
			cmd, err := commands.NewStartPreparingCommand(id, kitchen, 15)
			if err != nil {
				results[i] = err
				return
			}
			results[i] = handler.Handle(t.Context(), cmd)
		}()
	}
	wg.Wait()

	// Assert
	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	}
	assert.Equal(t, 1, winners)

	stored, err := factory.Create().OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, stored.Status())
	assert.Equal(t, 3, stored.History().Len())
}

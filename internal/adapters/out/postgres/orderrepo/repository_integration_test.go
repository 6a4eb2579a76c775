package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/dbtest"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies persistence against a real
// PostgreSQL container: numeric and jsonb columns, row locks and version checks.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *dbtest.Container
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, err := dbtest.StartPostgres(context.Background(), postgres.DriverPGX)
	suite.Require().NoError(err)
	suite.container = container
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.container.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.container.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := newTestOrder(suite.T(), 7, "10.0.0.1", baseTime)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(order.Pending, got.Status())
	suite.Equal("21.25", got.TotalAmount().String())
	suite.Len(got.Items(), 2)
	suite.Equal(1, got.History().Len())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion() {
	ctx := context.Background()
	o := newTestOrder(suite.T(), 7, "10.0.0.1", baseTime)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Confirm(kernel.SystemActor(), "", baseTime))
	suite.Require().NoError(suite.repository.Update(ctx, first))
	suite.Require().NoError(second.Confirm(kernel.SystemActor(), "", baseTime))

	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
}

// TestGetForUpdate_SerializesCouriers races couriers on the same ready
// order, each in its own transaction holding the row lock.
func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesCouriers() {
	ctx := context.Background()
	o := newTestOrder(suite.T(), 7, "10.0.0.1", baseTime)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	kitchen, err := kernel.NewActor(10, kernel.RoleKitchen)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Confirm(kernel.SystemActor(), "", baseTime))
	suite.Require().NoError(o.StartPreparing(kitchen, 10, baseTime))
	suite.Require().NoError(o.MarkReady(kitchen, baseTime))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	const couriers = 8
	results := make([]error, couriers)
	var wg sync.WaitGroup
	for i := range couriers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = suite.container.DB.Transaction(func(tx *gorm.DB) error {
				repo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
				locked, getErr := repo.GetForUpdate(ctx, o.ID())
				if getErr != nil {
					return getErr
				}
				courier, actorErr := kernel.NewActor(uint64(100+i), kernel.RoleCourier)
				if actorErr != nil {
					return actorErr
				}
				if acceptErr := locked.AcceptDelivery(courier, 20, time.Now()); acceptErr != nil {
					return acceptErr
				}
				return repo.Update(ctx, locked)
			})
		}()
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		suite.ErrorIs(err, errs.ErrAlreadyAssigned)
	}
	suite.Equal(1, wins)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

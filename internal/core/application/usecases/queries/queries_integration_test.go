package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/dbtest"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type QueriesPostgresTestSuite struct {
	suite.Suite
	container *dbtest.Container
	now       time.Time
}

func (suite *QueriesPostgresTestSuite) SetupSuite() {
	container, err := dbtest.StartPostgres(context.Background(), postgres.DriverPGX)
	suite.Require().NoError(err)
	suite.container = container
	suite.now = baseTime.Add(time.Hour)
}

func (suite *QueriesPostgresTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesPostgresTestSuite) SetupTest() {
	suite.Require().NoError(suite.container.Truncate())
}

func (suite *QueriesPostgresTestSuite) TestWaitingOrders_CourierQueue() {
	t := suite.T()
	db := suite.container.DB
	ready := seedOrder(t, db, orderSeed{status: order.Ready, created: baseTime})
	seedOrder(t, db, orderSeed{status: order.Ready, created: baseTime, demo: true})
	seedOrder(t, db, orderSeed{status: order.Delivering, created: baseTime})

	handler := queries.NewGetWaitingOrdersQueryHandler(db, fixedClock{now: suite.now})
	query, err := queries.NewGetWaitingOrdersQuery(kernel.SystemActor(), kernel.RoleCourier, 30)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(ready.ID(), result[0].OrderID)
	suite.Equal(57, result[0].WaitedMinutes)
}

func (suite *QueriesPostgresTestSuite) TestOverdueOrders_Preparing() {
	t := suite.T()
	db := suite.container.DB
	cooking := seedOrder(t, db, orderSeed{status: order.Preparing, created: baseTime, prepMins: 30})

	handler := queries.NewGetOverdueOrdersQueryHandler(db, fixedClock{now: suite.now})

	result, err := handler.Handle(context.Background(), queries.NewGetOverdueOrdersQuery(kernel.SystemActor()))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(cooking.ID(), result[0].OrderID)
	suite.Equal(28, result[0].OverdueMinutes)
}

func (suite *QueriesPostgresTestSuite) TestGetOrder_RoundTripsAmounts() {
	t := suite.T()
	db := suite.container.DB
	stored := seedOrder(t, db, orderSeed{customerID: 100, status: order.Confirmed, created: baseTime})

	query, err := queries.NewGetOrderQuery(kernel.SystemActor(), stored.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("19.00", resp.TotalAmount.String())
	suite.Equal("0.00", resp.RefundedAmount.String())
	suite.Len(resp.History, 2)
}

func TestQueriesPostgresTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container tests in short mode")
	}
	suite.Run(t, new(QueriesPostgresTestSuite))
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OnlyTerminalOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.seedOrder(ctx, order.Pickup, order.PickupReady)
	suite.seedOrder(ctx, order.Postal, order.InTransit)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyActive() {
	ctx := context.Background()

	pending := suite.seedOrder(ctx, order.Pickup, order.PendingPayment)
	preparing := suite.seedOrder(ctx, order.Postal, order.Preparing)
	shipping := suite.seedOrder(ctx, order.Postal, order.ShippingPreparation)
	done := suite.seedOrder(ctx, order.Pickup, order.PickupReady)
	shipped := suite.seedOrder(ctx, order.Postal, order.InTransit)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	resultIDs := make(map[kernel.UUID]queries.GetActiveOrdersQueryResponse)
	for _, r := range result {
		resultIDs[r.OrderID] = r
	}

	for _, o := range []*order.Order{pending, preparing, shipping} {
		r, ok := resultIDs[o.ID()]
		suite.True(ok, "Order %s should be in results", o.ID())
		suite.Equal(o.Status(), r.Status)
		suite.Equal(o.Status().Display(), r.StatusDisplay)
		suite.Equal(o.Status().Color(), r.StatusColor)
		suite.Equal(o.DeliveryMethod(), r.DeliveryMethod)
	}

	for _, o := range []*order.Order{done, shipped} {
		_, ok := resultIDs[o.ID()]
		suite.False(ok, "Terminal order %s should not be in results", o.ID())
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OrdersAreSortedByID() {
	ctx := context.Background()

	for range 5 {
		suite.seedOrder(ctx, order.Pickup, order.Preparing)
	}

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(result, 5)

	for i := range len(result) - 1 {
		suite.Less(result[i].OrderID.String(), result[i+1].OrderID.String(),
			"Orders should be sorted by ID")
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx := context.Background()
	for range 20 {
		suite.seedOrder(ctx, order.Pickup, order.Preparing)
	}

	query := queries.NewGetActiveOrdersQuery()

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	result, err := suite.handler.Handle(cancelled, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) seedOrder(
	ctx context.Context,
	method order.DeliveryMethod,
	status order.Status,
) *order.Order {
	var addr *kernel.Address
	if method == order.Postal {
		a, err := kernel.NewAddress("Tehran, Enghelab Sq. 4", "9876543210")
		suite.Require().NoError(err)
		addr = &a
	}

	actor := ""
	if status != order.PendingPayment {
		actor = "staff:test"
	}

	testOrder, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), method, addr, status, actor)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))
	return testOrder
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}

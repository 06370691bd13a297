package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzaria/internal/adapters/out/postgres/orderrepo"
	"pizzaria/internal/core/application/usecases/queries"
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetBoardOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	boardHandler queries.GetBoardOrdersQueryHandler
	orderHandler queries.GetOrderQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.boardHandler = queries.NewGetBoardOrdersQueryHandler(db)
	suite.orderHandler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) newOrder(orderType order.Type, status order.Status) *order.Order {
	item, err := order.NewItem(1, "Pizza Margherita", decimal.NewFromFloat(45.90), 1, "")
	suite.Require().NoError(err)
	item2, err := order.NewItem(7, "Guaraná 2L", decimal.NewFromFloat(12.00), 2, "gelado")
	suite.Require().NoError(err)

	fee := decimal.Zero
	customer := order.Customer{Name: "Ana", Phone: "11 99999-0000"}
	if orderType == order.TypeDelivery {
		fee = decimal.NewFromFloat(8.00)
		customer.Address = "Av. Paulista, 1578"
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(time.Now()),
		customer,
		orderType,
		order.Payment{Method: "pix", Value: decimal.Zero},
		[]order.Item{item, item2},
		fee,
		"",
		"45 min",
	)
	suite.Require().NoError(err)

	steps := map[order.Status][]order.Status{
		order.StatusNovo:       {},
		order.StatusAceito:     {order.StatusAceito},
		order.StatusProducao:   {order.StatusAceito, order.StatusProducao},
		order.StatusEntrega:    {order.StatusAceito, order.StatusEntrega},
		order.StatusFinalizado: {order.StatusAceito, order.StatusProducao, order.StatusFinalizado},
		order.StatusCancelado:  {order.StatusCancelado},
	}
	for _, step := range steps[status] {
		suite.Require().NoError(aggregate.TransitionTo(step))
	}
	return aggregate
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.boardHandler.Handle(context.Background(), queries.NewGetBoardOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) TestHandle_ExcludesTerminalOrders() {
	ctx := context.Background()

	active := []*order.Order{
		suite.newOrder(order.TypeDelivery, order.StatusNovo),
		suite.newOrder(order.TypeRetirada, order.StatusAceito),
		suite.newOrder(order.TypeDelivery, order.StatusProducao),
		suite.newOrder(order.TypeDelivery, order.StatusEntrega),
	}
	terminal := []*order.Order{
		suite.newOrder(order.TypeRetirada, order.StatusFinalizado),
		suite.newOrder(order.TypeDelivery, order.StatusCancelado),
	}

	for _, o := range append(active, terminal...) {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	result, err := suite.boardHandler.Handle(ctx, queries.NewGetBoardOrdersQuery())

	suite.Require().NoError(err)
	suite.Len(result, 4)

	resultIDs := make(map[string]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	for _, o := range active {
		suite.True(resultIDs[o.ID().String()], "order %s should be on the board", o.ID())
	}
	for _, o := range terminal {
		suite.False(resultIDs[o.ID().String()], "terminal order %s should not be on the board", o.ID())
	}
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) TestHandle_AttachesItemsAndTotals() {
	ctx := context.Background()
	aggregate := suite.newOrder(order.TypeDelivery, order.StatusNovo)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	result, err := suite.boardHandler.Handle(ctx, queries.NewGetBoardOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	resp := result[0]
	suite.Equal(aggregate.Number(), resp.Number)
	suite.Equal("novo", resp.Status)
	suite.Require().Len(resp.Items, 2)
	suite.Equal("Pizza Margherita", resp.Items[0].ProductName)
	suite.True(resp.Items[1].Subtotal.Equal(decimal.NewFromFloat(24.00)))
	// 45.90 + 24.00 + 8.00
	suite.True(resp.TotalAmount.Equal(decimal.NewFromFloat(77.90)))
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) TestHandle_OrdersSortedByCreation() {
	ctx := context.Background()

	first := suite.newOrder(order.TypeRetirada, order.StatusNovo)
	suite.Require().NoError(suite.orderRepo.Add(ctx, first))
	second := suite.newOrder(order.TypeRetirada, order.StatusNovo)
	suite.Require().NoError(suite.orderRepo.Add(ctx, second))

	result, err := suite.boardHandler.Handle(ctx, queries.NewGetBoardOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.False(result[0].CreatedAt.After(result[1].CreatedAt))
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.boardHandler.Handle(context.Background(), queries.GetBoardOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetBoardOrdersQuery constructor")
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) TestGetOrder_ReturnsTerminalOrder() {
	ctx := context.Background()
	aggregate := suite.newOrder(order.TypeRetirada, order.StatusFinalizado)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	resp, err := suite.orderHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID().String(), resp.ID)
	suite.Equal("finalizado", resp.Status)
	suite.Require().NotNil(resp.CompletedAt)
	suite.Len(resp.Items, 2)
}

func (suite *GetBoardOrdersQueryHandlerTestSuite) TestGetOrder_Missing_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.orderHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "not found")
}

func TestGetBoardOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBoardOrdersQueryHandlerTestSuite))
}

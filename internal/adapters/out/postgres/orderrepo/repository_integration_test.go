package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pizzaria/internal/adapters/out/postgres/orderrepo"
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

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
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

	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE order_items").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newDeliveryOrder() *order.Order {
	pizza, err := order.NewItem(1, "Pizza Margherita", decimal.NewFromFloat(10.00), 2, "")
	suite.Require().NoError(err)
	drink, err := order.NewItem(7, "Guaraná 2L", decimal.NewFromFloat(5.50), 1, "gelado")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(time.Now()),
		order.Customer{
			Name:         "Ana",
			Phone:        "11 99999-0000",
			Address:      "Av. Paulista, 1578",
			Neighborhood: "Bela Vista",
			Reference:    "próximo ao MASP",
		},
		order.TypeDelivery,
		order.Payment{Method: order.PaymentMethodDinheiro, Value: decimal.NewFromFloat(50.00)},
		[]order.Item{pizza, drink},
		decimal.NewFromFloat(7.00),
		"sem cebola",
		"45 min",
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()
	aggregate := suite.newDeliveryOrder()

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(aggregate.ID()))
	suite.Equal(aggregate.Number(), restored.Number())
	suite.Equal(aggregate.Customer(), restored.Customer())
	suite.Equal(order.TypeDelivery, restored.OrderType())
	suite.Equal(order.StatusNovo, restored.Status())
	// 2*10.00 + 5.50 + 7.00
	suite.True(restored.TotalAmount().Equal(decimal.NewFromFloat(32.50)))
	// dinheiro with 50.00 tendered
	suite.True(restored.ChangeAmount().Equal(decimal.NewFromFloat(17.50)))
	suite.Require().Len(restored.Items(), 2)
	suite.Equal("Pizza Margherita", restored.Items()[0].ProductName())
	suite.Equal("gelado", restored.Items()[1].Notes())
}

func (suite *GormOrderRepositoryTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Contains(err.Error(), "not found")
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsStatusAndTimestamps() {
	ctx := context.Background()
	aggregate := suite.newDeliveryOrder()
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.TransitionTo(order.StatusAceito))
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAceito, restored.Status())
	suite.Require().NotNil(restored.AcceptedAt())
	suite.Nil(restored.CompletedAt())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_WritesClearedFields() {
	ctx := context.Background()
	aggregate := suite.newDeliveryOrder()
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.Cancel(""))
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCancelado, restored.Status())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	aggregate := suite.newDeliveryOrder()

	err := suite.repo.Update(context.Background(), aggregate)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "not found")
}

func (suite *GormOrderRepositoryTestSuite) TestReplaceItems_SwapsAllItemRows() {
	ctx := context.Background()
	aggregate := suite.newDeliveryOrder()
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	replacement, err := order.NewItem(3, "Pizza Calabresa", decimal.NewFromFloat(49.90), 1, "borda recheada")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.ReplaceItems([]order.Item{replacement}))

	suite.Require().NoError(suite.repo.ReplaceItems(ctx, aggregate))
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Items(), 1)
	suite.Equal("Pizza Calabresa", restored.Items()[0].ProductName())
	// 49.90 + 7.00 fee
	suite.True(restored.TotalAmount().Equal(decimal.NewFromFloat(56.90)))

	var count int64
	err = suite.db.Table("order_items").Where("order_id = ?", aggregate.ID().Bytes()).Count(&count).Error
	suite.Require().NoError(err)
	suite.EqualValues(1, count)
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}

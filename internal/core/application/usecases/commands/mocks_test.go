package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/domain/model/event"
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/domain/model/quote"
	"pizzaria/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceItems(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventLog struct{ mock.Mock }

func (m *MockEventLog) Append(ctx context.Context, entry event.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEventLog) ReadSince(_ context.Context, _ int64) ([]event.Entry, int64, error) {
	return nil, 0, errors.New("not implemented in mock")
}

type MockSettingsStore struct{ mock.Mock }

func (m *MockSettingsStore) GetPauseFlag(ctx context.Context) (ports.PauseFlag, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.PauseFlag), args.Error(1)
}

func (m *MockSettingsStore) SetPauseFlag(ctx context.Context, flag ports.PauseFlag) error {
	args := m.Called(ctx, flag)
	return args.Error(0)
}

func (m *MockSettingsStore) GetPricingConfig(ctx context.Context) (ports.PricingConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.PricingConfig), args.Error(1)
}

type MockQuoteCache struct{ mock.Mock }

func (m *MockQuoteCache) Get(ctx context.Context, addressHash string) (quote.CacheEntry, bool, error) {
	args := m.Called(ctx, addressHash)
	return args.Get(0).(quote.CacheEntry), args.Bool(1), args.Error(2)
}

func (m *MockQuoteCache) Put(ctx context.Context, entry quote.CacheEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, apiKey, address string) (kernel.Coordinates, bool, error) {
	args := m.Called(ctx, apiKey, address)
	return args.Get(0).(kernel.Coordinates), args.Bool(1), args.Error(2)
}

func (m *MockGeocoder) RouteDistance(
	ctx context.Context, apiKey string, origin, destination kernel.Coordinates,
) (int, error) {
	args := m.Called(ctx, apiKey, origin, destination)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testItemInputs() []commands.CreateOrderItemInput {
	return []commands.CreateOrderItemInput{
		{ProductID: 1, ProductName: "Pizza Margherita", ProductPrice: decimal.NewFromFloat(45.90), Quantity: 1},
		{ProductID: 7, ProductName: "Guaraná 2L", ProductPrice: decimal.NewFromFloat(12.00), Quantity: 2},
	}
}

func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem(1, "Pizza Margherita", decimal.NewFromFloat(45.90), 1, "")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"20260315-0001",
		order.Customer{Name: "Ana", Phone: "11 99999-0000", Address: "Rua A, 1"},
		order.TypeDelivery,
		order.Payment{Method: "pix", Value: decimal.Zero},
		[]order.Item{item},
		decimal.NewFromFloat(8.00),
		"",
		"45 min",
	)
	require.NoError(t, err)

	steps := map[order.Status][]order.Status{
		order.StatusNovo:       {},
		order.StatusAceito:     {order.StatusAceito},
		order.StatusProducao:   {order.StatusAceito, order.StatusProducao},
		order.StatusEntrega:    {order.StatusAceito, order.StatusEntrega},
		order.StatusFinalizado: {order.StatusAceito, order.StatusProducao, order.StatusFinalizado},
		order.StatusCancelado:  {order.StatusCancelado},
	}
	for _, step := range steps[status] {
		require.NoError(t, aggregate.TransitionTo(step))
	}
	return aggregate
}

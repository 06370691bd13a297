package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pizzaria/internal/core/domain/model/event"
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/ports"
)

// ErrOrdersPaused is the sentinel error for creation attempts while the
// store has ordering paused.
var ErrOrdersPaused = errors.New("orders are paused")

// OrdersPausedError carries the staff-configured message shown to customers
// while ordering is paused.
type OrdersPausedError struct {
	Message string
}

func (e *OrdersPausedError) Error() string {
	if e.Message == "" {
		return ErrOrdersPaused.Error()
	}
	return fmt.Sprintf("%s: %s", ErrOrdersPaused, e.Message)
}

func (e *OrdersPausedError) Unwrap() error {
	return ErrOrdersPaused
}

// CreateOrderCommandHandler creates orders. It checks the global pause flag
// before anything else, persists the order and its items in one
// transaction, and appends an order_created event only after the commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, settings, eventLog, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrdersPaused) {
//	    // surface the pause message to the customer
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	settings   ports.SettingsStore
	eventLog   ports.EventLog
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	settings ports.SettingsStore,
	eventLog ports.EventLog,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		eventLog:   eventLog,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the creation command and returns the created aggregate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	flag, err := h.settings.GetPauseFlag(ctx)
	if err != nil {
		return nil, err
	}
	if flag.Paused {
		return nil, &OrdersPausedError{Message: flag.Message}
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, itemErr := order.NewItem(
			input.ProductID, input.ProductName, input.ProductPrice, input.Quantity, input.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(time.Now()),
		cmd.Customer(),
		cmd.OrderType(),
		order.Payment{Method: cmd.PaymentMethod(), Value: cmd.PaymentValue()},
		items,
		cmd.DeliveryFee(),
		cmd.Notes(),
		cmd.EstimatedDeliveryTime(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	appendEvent(ctx, h.eventLog, h.logger, event.TypeOrderCreated, event.OrderCreatedPayload{
		OrderID:     aggregate.ID().String(),
		OrderNumber: aggregate.Number(),
		Status:      aggregate.Status().String(),
	})

	return aggregate, nil
}

package commands

import (
	"context"
	"log/slog"

	"pizzaria/internal/core/domain/model/event"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order, recording the reason in the
// order notes. Finalized orders cannot be cancelled; the aggregate enforces
// that rule. An order_cancelled event is appended after commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	eventLog   ports.EventLog
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	eventLog ports.EventLog,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		eventLog:   eventLog,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation and returns the updated aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	appendEvent(ctx, h.eventLog, h.logger, event.TypeOrderCancelled, event.OrderCancelledPayload{
		OrderID: aggregate.ID().String(),
		Reason:  cmd.Reason(),
	})

	return aggregate, nil
}

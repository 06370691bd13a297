package commands

import (
	"context"
	"log/slog"

	"pizzaria/internal/core/domain/model/event"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/ports"
)

// ChangeOrderStatusCommandHandler advances an order through its lifecycle.
// The transition is validated by the aggregate against the enumerated
// transition table; on success the updated order is persisted and an
// order_status_changed event is appended after commit.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	eventLog   ports.EventLog
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	eventLog ports.EventLog,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		eventLog:   eventLog,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle processes the transition command and returns the updated aggregate.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	appendEvent(ctx, h.eventLog, h.logger, event.TypeOrderStatusChanged, event.OrderStatusChangedPayload{
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
	})

	return aggregate, nil
}

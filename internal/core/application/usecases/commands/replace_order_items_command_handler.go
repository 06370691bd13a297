package commands

import (
	"context"
	"log/slog"

	"pizzaria/internal/core/domain/model/event"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/ports"
)

// ReplaceOrderItemsCommandHandler swaps all line items of an order inside a
// single transaction: delete-and-reinsert of the items plus the recomputed
// totals on the order row either all land or none do. An
// order_items_replaced event is appended after commit.
type ReplaceOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	eventLog   ports.EventLog
	logger     *slog.Logger
}

// NewReplaceOrderItemsCommandHandler creates a handler for item replacement.
func NewReplaceOrderItemsCommandHandler(
	uowFactory OrderUoWFactory,
	eventLog ports.EventLog,
	logger *slog.Logger,
) ReplaceOrderItemsCommandHandler {
	return ReplaceOrderItemsCommandHandler{
		uowFactory: uowFactory,
		eventLog:   eventLog,
		logger:     logger.With("component", "replace_order_items"),
	}
}

// Handle processes the replacement and returns the updated aggregate.
func (h *ReplaceOrderItemsCommandHandler) Handle(
	ctx context.Context, cmd ReplaceOrderItemsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(
			input.ProductID, input.ProductName, input.ProductPrice, input.Quantity, input.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
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

	if err = aggregate.ReplaceItems(items); err != nil {
		return nil, err
	}

	if err = repo.ReplaceItems(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	appendEvent(ctx, h.eventLog, h.logger, event.TypeOrderItemsReplaced, event.OrderItemsReplacedPayload{
		OrderID:     aggregate.ID().String(),
		TotalAmount: aggregate.TotalAmount().StringFixed(2),
	})

	return aggregate, nil
}

package commands

import (
	"errors"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

// ErrReplaceOrderItemsCommandIsNotConstructed is returned when a zero-value
// command reaches a handler.
var ErrReplaceOrderItemsCommandIsNotConstructed = errors.New(
	"ReplaceOrderItemsCommand must be created via NewReplaceOrderItemsCommand constructor",
)

// ReplaceOrderItemsCommand requests an atomic swap of every line item of an
// order. Totals are recomputed server-side; the existing delivery fee is
// preserved.
type ReplaceOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []CreateOrderItemInput

	guard guard.ConstructorGuard
}

// NewReplaceOrderItemsCommand validates the order id and that at least one
// item was supplied.
func NewReplaceOrderItemsCommand(orderID kernel.UUID, items []CreateOrderItemInput) (ReplaceOrderItemsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReplaceOrderItemsCommand{}, err
	}
	if len(items) == 0 {
		return ReplaceOrderItemsCommand{}, errs.NewValueIsRequiredError("items")
	}

	return ReplaceOrderItemsCommand{
		orderID: orderID,
		items:   items,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderItemsCommandIsNotConstructed)
}

// OrderID returns the order whose items are replaced.
func (c ReplaceOrderItemsCommand) OrderID() kernel.UUID { return c.orderID }

// Items returns the replacement line items.
func (c ReplaceOrderItemsCommand) Items() []CreateOrderItemInput { return c.items }

// Package ports defines the contracts between the application core and the
// infrastructure adapters: persistence, the event log, geocoding/routing
// providers and the settings store. The interfaces enable dependency
// inversion and keep the use cases testable with mocks.
package ports

import (
	"context"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Multi-row writes (order plus items) run inside the ambient unit-of-work
// transaction; a failure at any step rolls back the whole operation so no
// partial order/items state is ever observable.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's own row (status,
	// timestamps, totals, notes). Items are not touched; use ReplaceItems
	// for item mutations.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceItems atomically deletes and reinserts all items belonging to
	// the order, matching the aggregate's current item list.
	ReplaceItems(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by surrogate id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// Package commands contains the business operations that modify system
// state. All commands follow the same pattern: a guarded command object
// validated at construction, a handler that manages the transaction through
// a unit of work, and exactly one event-log append after a successful
// commit, never before, so rolled-back writes produce no phantom
// notifications.
package commands

import (
	"context"

	"pizzaria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Narrow per-command interfaces keep the handlers mockable.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository bound to
	// the current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

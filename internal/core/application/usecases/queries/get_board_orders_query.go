// Package queries contains the read side of the application: handlers that
// query the database directly and return plain response structs, bypassing
// the domain aggregates.
package queries

import (
	"errors"
	"time"

	"pizzaria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBoardOrdersQueryIsNotConstructed = errors.New(
	"GetBoardOrdersQuery must be created via NewGetBoardOrdersQuery constructor",
)

// GetBoardOrdersQuery retrieves every order still moving through the
// pipeline for the kitchen board. Terminal orders (finalizado, cancelado)
// are excluded; they remain reachable individually via GetOrderQuery.
type GetBoardOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBoardOrdersQuery creates the parameterless board query.
func NewGetBoardOrdersQuery() GetBoardOrdersQuery {
	return GetBoardOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBoardOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardOrdersQueryIsNotConstructed)
}

// OrderResponse is the read model of one order, as shown on the board and
// in the single-order lookup.
type OrderResponse struct {
	ID                    string
	Number                string
	CustomerName          string
	CustomerPhone         string
	CustomerAddress       string
	OrderType             string
	PaymentMethod         string
	PaymentStatus         string
	PaymentValue          decimal.Decimal
	ChangeAmount          decimal.Decimal
	DeliveryFee           decimal.Decimal
	TotalAmount           decimal.Decimal
	Notes                 string
	EstimatedDeliveryTime string
	Status                string
	AcceptedAt            *time.Time
	ProductionStartedAt   *time.Time
	DeliveryStartedAt     *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
	Items                 []ItemResponse
}

// ItemResponse is the read model of one order line item.
type ItemResponse struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
	Notes       string
}

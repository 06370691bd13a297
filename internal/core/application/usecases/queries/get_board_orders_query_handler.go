package queries

import (
	"context"
	"database/sql"
	"time"

	"pizzaria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBoardOrdersQueryHandler reads the board orders straight from the
// database. Orders come back oldest first so the board reflects arrival
// order; items are fetched in one batch and attached in memory.
type GetBoardOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBoardOrdersQueryHandler creates a handler for board queries.
func NewGetBoardOrdersQueryHandler(db *gorm.DB) GetBoardOrdersQueryHandler {
	return GetBoardOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all non-terminal orders with their
// items.
func (h GetBoardOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBoardOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_name,
			customer_phone,
			customer_address,
			order_type,
			payment_method,
			payment_status,
			payment_value,
			change_amount,
			delivery_fee,
			total_amount,
			notes,
			estimated_delivery_time,
			status,
			accepted_at,
			production_started_at,
			delivery_started_at,
			completed_at,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, order.StatusFinalizado.String(), order.StatusCancelado.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		resp, id, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := h.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}

	return orders, nil
}

// scanOrderRow maps one orders row to its response form. Shared with the
// single-order query so both read models stay identical.
func scanOrderRow(rows *sql.Rows) (OrderResponse, uuid.UUID, error) {
	var resp OrderResponse
	var id uuid.UUID
	var acceptedAt, productionStartedAt, deliveryStartedAt, completedAt sql.NullTime

	err := rows.Scan(
		&id,
		&resp.Number,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerAddress,
		&resp.OrderType,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&resp.PaymentValue,
		&resp.ChangeAmount,
		&resp.DeliveryFee,
		&resp.TotalAmount,
		&resp.Notes,
		&resp.EstimatedDeliveryTime,
		&resp.Status,
		&acceptedAt,
		&productionStartedAt,
		&deliveryStartedAt,
		&completedAt,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, uuid.UUID{}, err
	}

	resp.ID = id.String()
	resp.AcceptedAt = nullableTime(acceptedAt)
	resp.ProductionStartedAt = nullableTime(productionStartedAt)
	resp.DeliveryStartedAt = nullableTime(deliveryStartedAt)
	resp.CompletedAt = nullableTime(completedAt)
	resp.Items = make([]ItemResponse, 0)

	return resp, id, nil
}

func (h GetBoardOrdersQueryHandler) loadItems(
	ctx context.Context, orderIDs []uuid.UUID,
) (map[string][]ItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			product_name,
			unit_price,
			quantity,
			subtotal,
			notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[string][]ItemResponse)
	for rows.Next() {
		var orderID uuid.UUID
		var item ItemResponse

		err = rows.Scan(
			&orderID,
			&item.ProductID,
			&item.ProductName,
			&item.UnitPrice,
			&item.Quantity,
			&item.Subtotal,
			&item.Notes,
		)
		if err != nil {
			return nil, err
		}

		key := orderID.String()
		itemsByOrder[key] = append(itemsByOrder[key], item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}

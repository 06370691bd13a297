package http

import (
	"time"

	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/application/usecases/queries"
	"pizzaria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type createOrderItemRequest struct {
	ProductID    int64           `json:"product_id" validate:"required,gt=0"`
	ProductName  string          `json:"product_name" validate:"required"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	Notes        string          `json:"notes"`
}

type createOrderRequest struct {
	CustomerName          string                   `json:"customer_name" validate:"required"`
	CustomerPhone         string                   `json:"customer_phone" validate:"required"`
	CustomerAddress       string                   `json:"customer_address"`
	CustomerNeighborhood  string                   `json:"customer_neighborhood"`
	CustomerReference     string                   `json:"customer_reference"`
	OrderType             string                   `json:"order_type" validate:"required"`
	PaymentMethod         string                   `json:"payment_method" validate:"required"`
	PaymentValue          decimal.Decimal          `json:"payment_value"`
	DeliveryFee           decimal.Decimal          `json:"delivery_fee"`
	Notes                 string                   `json:"notes"`
	EstimatedDeliveryTime string                   `json:"estimated_delivery_time"`
	Items                 []createOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type replaceItemsRequest struct {
	Items []createOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type quoteRequest struct {
	Zip          string `json:"zip"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
}

type pauseRequest struct {
	Paused  bool   `json:"paused"`
	Message string `json:"message"`
}

type pauseResponse struct {
	Paused  bool   `json:"paused"`
	Message string `json:"message,omitempty"`
}

// createOrderResponse is the creation envelope: the storefront only needs
// the identifiers and the server-computed total to render the confirmation.
type createOrderResponse struct {
	Success bool             `json:"success"`
	Data    orderCreatedData `json:"data"`
}

type orderCreatedData struct {
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type quoteResponse struct {
	Success    bool            `json:"success"`
	Cached     bool            `json:"cached"`
	DistanceKm decimal.Decimal `json:"distance_km"`
	Fee        decimal.Decimal `json:"fee"`
}

type orderItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Notes       string          `json:"notes,omitempty"`
}

type orderResponse struct {
	ID                    string              `json:"id"`
	Number                string              `json:"number"`
	CustomerName          string              `json:"customer_name"`
	CustomerPhone         string              `json:"customer_phone"`
	CustomerAddress       string              `json:"customer_address,omitempty"`
	OrderType             string              `json:"order_type"`
	PaymentMethod         string              `json:"payment_method"`
	PaymentStatus         string              `json:"payment_status"`
	PaymentValue          decimal.Decimal     `json:"payment_value"`
	ChangeAmount          decimal.Decimal     `json:"change_amount"`
	DeliveryFee           decimal.Decimal     `json:"delivery_fee"`
	TotalAmount           decimal.Decimal     `json:"total_amount"`
	Notes                 string              `json:"notes,omitempty"`
	EstimatedDeliveryTime string              `json:"estimated_delivery_time,omitempty"`
	Status                string              `json:"status"`
	AcceptedAt            *time.Time          `json:"accepted_at,omitempty"`
	ProductionStartedAt   *time.Time          `json:"production_started_at,omitempty"`
	DeliveryStartedAt     *time.Time          `json:"delivery_started_at,omitempty"`
	CompletedAt           *time.Time          `json:"completed_at,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	Items                 []orderItemResponse `json:"items"`
}

func itemInputsFromRequest(items []createOrderItemRequest) []commands.CreateOrderItemInput {
	inputs := make([]commands.CreateOrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.CreateOrderItemInput{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			Notes:        item.Notes,
		})
	}
	return inputs
}

func orderResponseFromAggregate(aggregate *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
			Notes:       item.Notes(),
		})
	}

	return orderResponse{
		ID:                    aggregate.ID().String(),
		Number:                aggregate.Number(),
		CustomerName:          aggregate.Customer().Name,
		CustomerPhone:         aggregate.Customer().Phone,
		CustomerAddress:       aggregate.Customer().Address,
		OrderType:             string(aggregate.OrderType()),
		PaymentMethod:         aggregate.Payment().Method,
		PaymentStatus:         string(aggregate.PaymentStatus()),
		PaymentValue:          aggregate.Payment().Value,
		ChangeAmount:          aggregate.ChangeAmount(),
		DeliveryFee:           aggregate.DeliveryFee(),
		TotalAmount:           aggregate.TotalAmount(),
		Notes:                 aggregate.Notes(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		Status:                aggregate.Status().String(),
		AcceptedAt:            aggregate.AcceptedAt(),
		ProductionStartedAt:   aggregate.ProductionStartedAt(),
		DeliveryStartedAt:     aggregate.DeliveryStartedAt(),
		CompletedAt:           aggregate.CompletedAt(),
		CreatedAt:             aggregate.CreatedAt(),
		Items:                 items,
	}
}

func orderResponseFromQuery(resp queries.OrderResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
			Notes:       item.Notes,
		})
	}

	return orderResponse{
		ID:                    resp.ID,
		Number:                resp.Number,
		CustomerName:          resp.CustomerName,
		CustomerPhone:         resp.CustomerPhone,
		CustomerAddress:       resp.CustomerAddress,
		OrderType:             resp.OrderType,
		PaymentMethod:         resp.PaymentMethod,
		PaymentStatus:         resp.PaymentStatus,
		PaymentValue:          resp.PaymentValue,
		ChangeAmount:          resp.ChangeAmount,
		DeliveryFee:           resp.DeliveryFee,
		TotalAmount:           resp.TotalAmount,
		Notes:                 resp.Notes,
		EstimatedDeliveryTime: resp.EstimatedDeliveryTime,
		Status:                resp.Status,
		AcceptedAt:            resp.AcceptedAt,
		ProductionStartedAt:   resp.ProductionStartedAt,
		DeliveryStartedAt:     resp.DeliveryStartedAt,
		CompletedAt:           resp.CompletedAt,
		CreatedAt:             resp.CreatedAt,
		Items:                 items,
	}
}

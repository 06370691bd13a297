// Package orderrepo persists order aggregates with GORM. It maps the
// aggregate to an orders row plus one order_items row per line item and
// reconstructs the aggregate through the domain restore constructors.
package orderrepo

import (
	"time"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database row for an order. Money columns are
// decimal(10,2); statuses and timestamps mirror the aggregate exactly so
// restore is lossless.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"size:16;index"`

	CustomerName         string `gorm:"size:255"`
	CustomerPhone        string `gorm:"size:32"`
	CustomerAddress      string `gorm:"size:255"`
	CustomerNeighborhood string `gorm:"size:128"`
	CustomerReference    string `gorm:"size:255"`

	OrderType string `gorm:"size:16"`

	PaymentMethod string          `gorm:"size:32"`
	PaymentValue  decimal.Decimal `gorm:"type:decimal(10,2)"`
	PaymentStatus string          `gorm:"size:16"`
	ChangeAmount  decimal.Decimal `gorm:"type:decimal(10,2)"`

	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)"`

	Notes                 string `gorm:"type:text"`
	EstimatedDeliveryTime string `gorm:"size:64"`

	Status              string `gorm:"size:16;index"`
	AcceptedAt          *time.Time
	ProductionStartedAt *time.Time
	DeliveryStartedAt   *time.Time
	CompletedAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the database row for one order line item. The subtotal is
// stored as computed at write time, not rederived on read.
type ItemDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   int64
	ProductName string          `gorm:"size:255"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2)"`
	Quantity    int
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)"`
	Notes       string          `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	return OrderDTO{
		ID:                    id,
		Number:                aggregate.Number(),
		CustomerName:          aggregate.Customer().Name,
		CustomerPhone:         aggregate.Customer().Phone,
		CustomerAddress:       aggregate.Customer().Address,
		CustomerNeighborhood:  aggregate.Customer().Neighborhood,
		CustomerReference:     aggregate.Customer().Reference,
		OrderType:             string(aggregate.OrderType()),
		PaymentMethod:         aggregate.Payment().Method,
		PaymentValue:          aggregate.Payment().Value,
		PaymentStatus:         string(aggregate.PaymentStatus()),
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
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 itemsFromDomain(id, aggregate.Items()),
	}
}

func itemsFromDomain(orderID uuid.UUID, items []order.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			OrderID:     orderID,
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
			Notes:       item.Notes(),
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(
			item.ProductID, item.ProductName, item.UnitPrice, item.Quantity, item.Subtotal, item.Notes))
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:     id,
		Number: dto.Number,
		Customer: order.Customer{
			Name:         dto.CustomerName,
			Phone:        dto.CustomerPhone,
			Address:      dto.CustomerAddress,
			Neighborhood: dto.CustomerNeighborhood,
			Reference:    dto.CustomerReference,
		},
		OrderType:             order.Type(dto.OrderType),
		Payment:               order.Payment{Method: dto.PaymentMethod, Value: dto.PaymentValue},
		PaymentStatus:         order.PaymentStatus(dto.PaymentStatus),
		ChangeAmount:          dto.ChangeAmount,
		Items:                 items,
		DeliveryFee:           dto.DeliveryFee,
		TotalAmount:           dto.TotalAmount,
		Notes:                 dto.Notes,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		Status:                status,
		AcceptedAt:            dto.AcceptedAt,
		ProductionStartedAt:   dto.ProductionStartedAt,
		DeliveryStartedAt:     dto.DeliveryStartedAt,
		CompletedAt:           dto.CompletedAt,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
	})
}

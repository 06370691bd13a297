package commands

import (
	"errors"

	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a zero-value
// command reaches a handler.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItemInput is one requested line item. Price and name are
// snapshots supplied by the storefront; the subtotal is recomputed
// server-side and never trusted from the client.
type CreateOrderItemInput struct {
	ProductID    int64
	ProductName  string
	ProductPrice decimal.Decimal
	Quantity     int
	Notes        string
}

// CreateOrderCommand carries everything needed to create an order: customer
// contact, order type, payment intent, items, and the externally-obtained
// delivery fee (zero for non-delivery types).
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer              order.Customer
	orderType             order.Type
	paymentMethod         string
	paymentValue          decimal.Decimal
	items                 []CreateOrderItemInput
	deliveryFee           decimal.Decimal
	notes                 string
	estimatedDeliveryTime string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the required creation fields: customer
// name and phone, payment method, non-empty items, and an address when the
// order type is delivery. Field-level item validation happens in the domain
// layer when the aggregate is built.
func NewCreateOrderCommand(
	customer order.Customer,
	orderType order.Type,
	paymentMethod string,
	paymentValue decimal.Decimal,
	items []CreateOrderItemInput,
	deliveryFee decimal.Decimal,
	notes string,
	estimatedDeliveryTime string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes:                 notes,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer, orderType),
		cmd.setOrderType(orderType),
		cmd.setPayment(paymentMethod, paymentValue),
		cmd.setItems(items),
		cmd.setDeliveryFee(deliveryFee, orderType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the customer contact fields.
func (c CreateOrderCommand) Customer() order.Customer { return c.customer }

// OrderType returns the requested order type.
func (c CreateOrderCommand) OrderType() order.Type { return c.orderType }

// PaymentMethod returns the requested payment method.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

// PaymentValue returns the tendered amount, zero when not supplied.
func (c CreateOrderCommand) PaymentValue() decimal.Decimal { return c.paymentValue }

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []CreateOrderItemInput { return c.items }

// DeliveryFee returns the externally-quoted fee, zero for non-delivery.
func (c CreateOrderCommand) DeliveryFee() decimal.Decimal { return c.deliveryFee }

// Notes returns the free-form order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// EstimatedDeliveryTime returns the display estimate shown to the customer.
func (c CreateOrderCommand) EstimatedDeliveryTime() string { return c.estimatedDeliveryTime }

func (c *CreateOrderCommand) setCustomer(customer order.Customer, orderType order.Type) error {
	if customer.Name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if customer.Phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	if orderType == order.TypeDelivery && customer.Address == "" {
		return errs.NewValueIsRequiredError("customerAddress")
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	switch orderType {
	case order.TypeDelivery, order.TypeRetirada, order.TypeBalcao:
		c.orderType = orderType
		return nil
	default:
		return errs.NewValueIsInvalidError("orderType")
	}
}

func (c *CreateOrderCommand) setPayment(method string, value decimal.Decimal) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	if value.IsNegative() {
		return errs.NewValueIsInvalidError("paymentValue")
	}
	c.paymentMethod = method
	c.paymentValue = value
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(fee decimal.Decimal, orderType order.Type) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	// Non-delivery orders never carry a fee regardless of what the client sent.
	if orderType != order.TypeDelivery {
		fee = decimal.Zero
	}
	c.deliveryFee = fee
	return nil
}

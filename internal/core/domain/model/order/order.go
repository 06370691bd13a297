package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Type classifies how the customer receives the order.
type Type string

const (
	// TypeDelivery means the order is delivered to the customer's address.
	TypeDelivery Type = "delivery"
	// TypeRetirada means the customer picks the order up at the counter.
	TypeRetirada Type = "retirada"
	// TypeBalcao means the order is consumed at the store.
	TypeBalcao Type = "balcão"
)

// PaymentStatus tracks whether the order has been paid.
type PaymentStatus string

const (
	// PaymentPaid marks a settled order.
	PaymentPaid PaymentStatus = "paid"
	// PaymentUnpaid marks an order still awaiting payment.
	PaymentUnpaid PaymentStatus = "unpaid"
)

// PaymentMethodDinheiro is the cash payment method. It is the only method
// for which a change amount is derived from the tendered value.
const PaymentMethodDinheiro = "dinheiro"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyFinalized is returned when cancelling an order that
	// already reached finalizado.
	ErrOrderAlreadyFinalized = errors.New("order is already finalized and cannot be cancelled")
)

// Customer bundles the contact fields captured with every order.
// Address, neighborhood and reference are only required for delivery orders.
type Customer struct {
	Name         string
	Phone        string
	Address      string
	Neighborhood string
	Reference    string
}

// Payment bundles the payment fields captured with every order. Value is
// the amount tendered by the customer and may be zero for non-cash methods.
type Payment struct {
	Method string
	Value  decimal.Decimal
}

// Order is the aggregate root for the order pipeline. It owns its line
// items exclusively and is the only place order totals and the status state
// machine are enforced.
//
// Invariants:
//   - totalAmount = sum(item.subtotal) + deliveryFee, recomputed on every
//     item mutation, never taken from the client
//   - status changes only through TransitionTo/Cancel and follow the
//     enumerated transition table
//   - per-status timestamps are stamped once and never reset
//   - orders are never deleted; cancellation is a status
type Order struct {
	id     kernel.UUID
	number string

	customer  Customer
	orderType Type

	payment       Payment
	paymentStatus PaymentStatus
	changeAmount  decimal.Decimal

	items       []Item
	deliveryFee decimal.Decimal
	totalAmount decimal.Decimal

	notes                 string
	estimatedDeliveryTime string

	status              Status
	acceptedAt          *time.Time
	productionStartedAt *time.Time
	deliveryStartedAt   *time.Time
	completedAt         *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in status novo, validating required fields and
// computing totals. The delivery fee comes from the quoting flow and must be
// zero for non-delivery order types; it is trusted here because quoting
// already validated it.
func NewOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	orderType Type,
	payment Payment,
	items []Item,
	deliveryFee decimal.Decimal,
	notes string,
	estimatedDeliveryTime string,
) (*Order, error) {
	o := &Order{
		status:        StatusNovo,
		paymentStatus: PaymentUnpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer, orderType),
		o.setOrderType(orderType),
		o.setPayment(payment),
		o.setItems(items),
		o.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	o.notes = notes
	o.estimatedDeliveryTime = estimatedDeliveryTime

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	o.recomputeTotals()

	return o, nil
}

// RestoreParams carries every persisted attribute needed to rehydrate an
// order aggregate from storage.
type RestoreParams struct {
	ID                    kernel.UUID
	Number                string
	Customer              Customer
	OrderType             Type
	Payment               Payment
	PaymentStatus         PaymentStatus
	ChangeAmount          decimal.Decimal
	Items                 []Item
	DeliveryFee           decimal.Decimal
	TotalAmount           decimal.Decimal
	Notes                 string
	EstimatedDeliveryTime string
	Status                Status
	AcceptedAt            *time.Time
	ProductionStartedAt   *time.Time
	DeliveryStartedAt     *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RestoreOrder rebuilds an aggregate from persistence. Stored totals are
// kept as-is; the status must be one of the known values.
func RestoreOrder(p RestoreParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                    p.ID,
		number:                p.Number,
		customer:              p.Customer,
		orderType:             p.OrderType,
		payment:               p.Payment,
		paymentStatus:         p.PaymentStatus,
		changeAmount:          p.ChangeAmount,
		items:                 p.Items,
		deliveryFee:           p.DeliveryFee,
		totalAmount:           p.TotalAmount,
		notes:                 p.Notes,
		estimatedDeliveryTime: p.EstimatedDeliveryTime,
		status:                p.Status,
		acceptedAt:            p.AcceptedAt,
		productionStartedAt:   p.ProductionStartedAt,
		deliveryStartedAt:     p.DeliveryStartedAt,
		completedAt:           p.CompletedAt,
		createdAt:             p.CreatedAt,
		updatedAt:             p.UpdatedAt,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// TransitionTo moves the order to target if the transition table allows it.
// The timestamp belonging to the target status is stamped only when still
// unset, so re-entering a status never resets its original timestamp.
func (o *Order) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(target) {
		return &InvalidTransitionError{From: o.status, To: target}
	}

	o.status = target
	o.stampStatusTimestamp(target)
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel marks the order cancelado and records the reason in the notes with
// a literal "[CANCELADO] Motivo:" marker, preserving prior notes. Finalized
// orders cannot be cancelled; cancelling an already cancelled order is a
// no-op that succeeds.
func (o *Order) Cancel(reason string) error {
	if o.status == StatusFinalizado {
		return ErrOrderAlreadyFinalized
	}
	if o.status == StatusCancelado {
		return nil
	}

	o.status = StatusCancelado
	if reason != "" {
		marker := fmt.Sprintf("[CANCELADO] Motivo: %s", reason)
		if strings.TrimSpace(o.notes) == "" {
			o.notes = marker
		} else {
			o.notes = o.notes + "\n" + marker
		}
	}
	o.updatedAt = time.Now().UTC()
	return nil
}

// ReplaceItems swaps every line item and recomputes subtotals and the total
// amount, preserving the existing delivery fee.
func (o *Order) ReplaceItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	o.items = items
	o.recomputeTotals()
	o.updatedAt = time.Now().UTC()
	return nil
}

// MarkPaid settles the order payment.
func (o *Order) MarkPaid() {
	o.paymentStatus = PaymentPaid
	o.updatedAt = time.Now().UTC()
}

// recomputeTotals enforces total = sum(subtotals) + deliveryFee and derives
// the change amount for cash payments tendering more than the total.
func (o *Order) recomputeTotals() {
	sum := decimal.Zero
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	o.totalAmount = sum.Add(o.deliveryFee)

	o.changeAmount = decimal.Zero
	if o.payment.Method == PaymentMethodDinheiro && o.payment.Value.GreaterThan(o.totalAmount) {
		o.changeAmount = o.payment.Value.Sub(o.totalAmount)
	}
}

func (o *Order) stampStatusTimestamp(target Status) {
	now := time.Now().UTC()
	switch target {
	case StatusAceito:
		if o.acceptedAt == nil {
			o.acceptedAt = &now
		}
	case StatusProducao:
		if o.productionStartedAt == nil {
			o.productionStartedAt = &now
		}
	case StatusEntrega:
		if o.deliveryStartedAt == nil {
			o.deliveryStartedAt = &now
		}
	case StatusFinalizado:
		if o.completedAt == nil {
			o.completedAt = &now
		}
	case StatusNovo, StatusCancelado:
		// no dedicated timestamp
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer Customer, orderType Type) error {
	if customer.Name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if customer.Phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	if orderType == TypeDelivery && customer.Address == "" {
		return errs.NewValueIsRequiredError("customerAddress")
	}
	o.customer = customer
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	switch orderType {
	case TypeDelivery, TypeRetirada, TypeBalcao:
		o.orderType = orderType
		return nil
	default:
		return errs.NewValueIsInvalidError("orderType")
	}
}

func (o *Order) setPayment(payment Payment) error {
	if payment.Method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	if payment.Value.IsNegative() {
		return errs.NewValueIsInvalidError("paymentValue")
	}
	o.payment = payment
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

func (o *Order) setDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	o.deliveryFee = fee
	return nil
}

// ID returns the order's surrogate identity.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the date-prefixed business key shown to customers.
func (o *Order) Number() string { return o.number }

// Customer returns the contact fields captured at creation.
func (o *Order) Customer() Customer { return o.customer }

// OrderType returns how the customer receives the order.
func (o *Order) OrderType() Type { return o.orderType }

// Payment returns the payment method and tendered value.
func (o *Order) Payment() Payment { return o.payment }

// PaymentStatus reports whether the order has been paid.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// ChangeAmount returns the derived change for cash payments.
func (o *Order) ChangeAmount() decimal.Decimal { return o.changeAmount }

// Items returns the order's line items.
func (o *Order) Items() []Item { return o.items }

// DeliveryFee returns the fee merged from the quoting flow.
func (o *Order) DeliveryFee() decimal.Decimal { return o.deliveryFee }

// TotalAmount returns sum(item subtotals) + delivery fee.
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }

// Notes returns the free-form order notes, including cancellation markers.
func (o *Order) Notes() string { return o.notes }

// EstimatedDeliveryTime returns the display estimate captured at creation.
func (o *Order) EstimatedDeliveryTime() string { return o.estimatedDeliveryTime }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// AcceptedAt returns when the order first reached aceito, if ever.
func (o *Order) AcceptedAt() *time.Time { return o.acceptedAt }

// ProductionStartedAt returns when the order first reached producao, if ever.
func (o *Order) ProductionStartedAt() *time.Time { return o.productionStartedAt }

// DeliveryStartedAt returns when the order first reached entrega, if ever.
func (o *Order) DeliveryStartedAt() *time.Time { return o.deliveryStartedAt }

// CompletedAt returns when the order first reached finalizado, if ever.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation time.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

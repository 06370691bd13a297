package order

import (
	"pizzaria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a line item owned by exactly one Order. Product name and unit
// price are snapshotted at order time so historical orders stay accurate
// when the live catalog changes. The subtotal is computed at construction
// and never trusted from the client.
type Item struct {
	productID   int64
	productName string
	unitPrice   decimal.Decimal
	quantity    int
	subtotal    decimal.Decimal
	notes       string

	isConstructed bool
}

// NewItem creates a line item, computing subtotal = unitPrice * quantity.
// The unit price must not be negative and the quantity must be positive.
func NewItem(productID int64, productName string, unitPrice decimal.Decimal, quantity int, notes string) (Item, error) {
	if productID <= 0 {
		return Item{}, errs.NewValueIsRequiredError("productId")
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("productPrice")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidError("quantity")
	}

	return Item{
		productID:     productID,
		productName:   productName,
		unitPrice:     unitPrice,
		quantity:      quantity,
		subtotal:      unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		notes:         notes,
		isConstructed: true,
	}, nil
}

// RestoreItem rehydrates a line item from persistence without recomputing
// the stored subtotal.
func RestoreItem(
	productID int64, productName string, unitPrice decimal.Decimal, quantity int,
	subtotal decimal.Decimal, notes string,
) Item {
	return Item{
		productID:     productID,
		productName:   productName,
		unitPrice:     unitPrice,
		quantity:      quantity,
		subtotal:      subtotal,
		notes:         notes,
		isConstructed: true,
	}
}

// ProductID returns the catalog id the item was ordered from.
func (i Item) ProductID() int64 {
	return i.productID
}

// ProductName returns the name snapshotted at order time.
func (i Item) ProductName() string {
	return i.productName
}

// UnitPrice returns the price snapshotted at order time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unitPrice * quantity as computed at write time.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

// Notes returns the per-item notes (e.g. "sem cebola").
func (i Item) Notes() string {
	return i.notes
}

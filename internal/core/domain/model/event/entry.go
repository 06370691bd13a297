// Package event defines the domain event entries appended to the shared
// event log and consumed by polling clients. Known event types get typed
// payloads; unrecognized types decode to a raw payload so readers stay
// forward-compatible with entries written by newer versions.
package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Known event types. The string tags are part of the wire contract with the
// admin board and storefront pollers.
const (
	TypeOrderCreated       = "order_created"
	TypeOrderStatusChanged = "order_status_changed"
	TypeOrderCancelled     = "order_cancelled"
	TypeOrderItemsReplaced = "order_items_replaced"
	TypeOrdersPauseUpdated = "orders_pause_updated"
)

// Entry is one line of the append-only event log. IDs are ULIDs, so they are
// time-derived, sortable and unique with high probability even when writers
// race; readers advance by byte offset, never by id, so an id tie is
// harmless.
type Entry struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEntry builds an Entry for the given type, serializing the payload.
func NewEntry(eventType string, payload any) (Entry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	now := time.Now().UTC()
	return Entry{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Type:      eventType,
		Payload:   raw,
		Timestamp: now,
	}, nil
}

// OrderCreatedPayload announces a freshly created order.
type OrderCreatedPayload struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
}

// OrderStatusChangedPayload announces a lifecycle transition.
type OrderStatusChangedPayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// OrderCancelledPayload announces a cancellation with its optional reason.
type OrderCancelledPayload struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason,omitempty"`
}

// OrderItemsReplacedPayload announces an item replacement and the new total.
type OrderItemsReplacedPayload struct {
	OrderID     string `json:"order_id"`
	TotalAmount string `json:"total_amount"`
}

// OrdersPauseUpdatedPayload announces a change of the global pause flag.
type OrdersPauseUpdatedPayload struct {
	Paused  bool   `json:"paused"`
	Message string `json:"message,omitempty"`
}

// DecodePayload converts an entry's raw payload into its typed form.
// Unknown event types return the raw payload unchanged so callers can pass
// them through without loss.
func DecodePayload(e Entry) (any, error) {
	switch e.Type {
	case TypeOrderCreated:
		var p OrderCreatedPayload
		return p, unmarshalPayload(e, &p)
	case TypeOrderStatusChanged:
		var p OrderStatusChangedPayload
		return p, unmarshalPayload(e, &p)
	case TypeOrderCancelled:
		var p OrderCancelledPayload
		return p, unmarshalPayload(e, &p)
	case TypeOrderItemsReplaced:
		var p OrderItemsReplacedPayload
		return p, unmarshalPayload(e, &p)
	case TypeOrdersPauseUpdated:
		var p OrdersPauseUpdatedPayload
		return p, unmarshalPayload(e, &p)
	default:
		return e.Payload, nil
	}
}

func unmarshalPayload(e Entry, dst any) error {
	if err := json.Unmarshal(e.Payload, dst); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}

package event_test

import (
	"encoding/json"
	"testing"

	"pizzaria/internal/core/domain/model/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("ids_are_time_sortable_and_unique", func(t *testing.T) {
		first, err := event.NewEntry(event.TypeOrderCreated, event.OrderCreatedPayload{OrderID: "a"})
		require.NoError(t, err)
		second, err := event.NewEntry(event.TypeOrderCreated, event.OrderCreatedPayload{OrderID: "b"})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Less(t, first.ID, second.ID)
		assert.Len(t, first.ID, 26)
	})

	t.Run("serializes_payload_as_json", func(t *testing.T) {
		entry, err := event.NewEntry(event.TypeOrdersPauseUpdated, event.OrdersPauseUpdatedPayload{
			Paused:  true,
			Message: "voltamos às 18h",
		})
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(entry.Payload, &payload))
		assert.Equal(t, true, payload["paused"])
		assert.Equal(t, "voltamos às 18h", payload["message"])
	})
}

func TestDecodePayload(t *testing.T) {
	t.Run("known_types_decode_to_typed_payloads", func(t *testing.T) {
		entry, err := event.NewEntry(event.TypeOrderStatusChanged, event.OrderStatusChangedPayload{
			OrderID: "550e8400-e29b-41d4-a716-446655440000",
			Status:  "aceito",
		})
		require.NoError(t, err)

		decoded, err := event.DecodePayload(entry)

		require.NoError(t, err)
		payload, ok := decoded.(event.OrderStatusChangedPayload)
		require.True(t, ok)
		assert.Equal(t, "aceito", payload.Status)
	})

	t.Run("unknown_types_fall_back_to_raw_payload", func(t *testing.T) {
		entry, err := event.NewEntry("products_updated", map[string]any{"category": 3})
		require.NoError(t, err)

		decoded, err := event.DecodePayload(entry)

		require.NoError(t, err)
		raw, ok := decoded.(json.RawMessage)
		require.True(t, ok)
		assert.JSONEq(t, `{"category":3}`, string(raw))
	})

	t.Run("corrupt_payload_surfaces_an_error", func(t *testing.T) {
		entry := event.Entry{Type: event.TypeOrderCreated, Payload: []byte("{not json")}

		_, err := event.DecodePayload(entry)

		require.Error(t, err)
	})
}

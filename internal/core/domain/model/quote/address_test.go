package quote_test

import (
	"testing"

	"pizzaria/internal/core/domain/model/quote"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("accepts_complete_address", func(t *testing.T) {
		a, err := quote.NewAddress("01310-100", "Av. Paulista", "1578", "Bela Vista", "São Paulo")

		require.NoError(t, err)
		assert.Equal(t, "Av. Paulista, 1578 - Bela Vista, São Paulo, 01310-100", a.Text())
	})

	t.Run("rejects_missing_fields_naming_them", func(t *testing.T) {
		_, err := quote.NewAddress("01310-100", "", "1578", "", "São Paulo")

		require.ErrorIs(t, err, quote.ErrIncompleteAddress)

		var incompleteErr *quote.IncompleteAddressError
		require.ErrorAs(t, err, &incompleteErr)
		assert.Equal(t, []string{"street", "neighborhood"}, incompleteErr.Missing)
	})

	t.Run("whitespace_only_fields_count_as_missing", func(t *testing.T) {
		_, err := quote.NewAddress("01310-100", "Av. Paulista", "  ", "Bela Vista", "São Paulo")

		require.ErrorIs(t, err, quote.ErrIncompleteAddress)
	})
}

func TestAddress_Hash(t *testing.T) {
	t.Run("stable_under_case_and_whitespace_variation", func(t *testing.T) {
		a, err := quote.NewAddress("01310-100", "Av. Paulista", "1578", "Bela Vista", "São Paulo")
		require.NoError(t, err)
		b, err := quote.NewAddress("01310-100", "AV.   PAULISTA", "1578", "bela  vista", "SÃO PAULO")
		require.NoError(t, err)

		assert.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("distinct_addresses_get_distinct_hashes", func(t *testing.T) {
		a, err := quote.NewAddress("01310-100", "Av. Paulista", "1578", "Bela Vista", "São Paulo")
		require.NoError(t, err)
		b, err := quote.NewAddress("01310-100", "Av. Paulista", "1580", "Bela Vista", "São Paulo")
		require.NoError(t, err)

		assert.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("field_boundaries_are_not_conflated", func(t *testing.T) {
		// "Rua A" + number "12" must differ from "Rua A 1" + number "2"
		a, err := quote.NewAddress("01310-100", "Rua A", "12", "Centro", "São Paulo")
		require.NoError(t, err)
		b, err := quote.NewAddress("01310-100", "Rua A 1", "2", "Centro", "São Paulo")
		require.NoError(t, err)

		assert.NotEqual(t, a.Hash(), b.Hash())
	})
}

func TestQuote_DistanceKm(t *testing.T) {
	q := quote.Quote{DistanceMeters: 4375, Fee: decimal.NewFromInt(9)}

	assert.True(t, q.DistanceKm().Equal(decimal.RequireFromString("4.38")),
		"distance = %s", q.DistanceKm())
}

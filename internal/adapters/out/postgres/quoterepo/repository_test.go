package quoterepo_test

import (
	"testing"

	"pizzaria/internal/adapters/out/postgres/quoterepo"
	"pizzaria/internal/core/domain/model/quote"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCache(t *testing.T) *quoterepo.GormQuoteCache {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&quoterepo.QuoteDTO{}))

	return quoterepo.NewGormQuoteCache(db)
}

func testEntry() quote.CacheEntry {
	return quote.CacheEntry{
		AddressHash:    "a3f5c9d2e8b1479a3f5c9d2e8b1479a3f5c9d2e8b1479a3f5c9d2e8b1479ffff",
		Lat:            -23.563987,
		Lng:            -46.654321,
		DistanceMeters: 4300,
		Fee:            decimal.NewFromFloat(8.60),
	}
}

func TestGormQuoteCache_GetMiss(t *testing.T) {
	cache := newTestCache(t)

	_, found, err := cache.Get(t.Context(), "unknown-hash")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGormQuoteCache_PutThenGet(t *testing.T) {
	cache := newTestCache(t)
	entry := testEntry()

	require.NoError(t, cache.Put(t.Context(), entry))

	got, found, err := cache.Get(t.Context(), entry.AddressHash)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entry.AddressHash, got.AddressHash)
	assert.InDelta(t, entry.Lat, got.Lat, 1e-9)
	assert.InDelta(t, entry.Lng, got.Lng, 1e-9)
	assert.Equal(t, entry.DistanceMeters, got.DistanceMeters)
	assert.True(t, got.Fee.Equal(entry.Fee))
}

func TestGormQuoteCache_PutTwiceKeepsFirstEntry(t *testing.T) {
	cache := newTestCache(t)
	entry := testEntry()

	require.NoError(t, cache.Put(t.Context(), entry))

	later := entry
	later.DistanceMeters = 9999
	later.Fee = decimal.NewFromFloat(99.00)
	require.NoError(t, cache.Put(t.Context(), later))

	got, found, err := cache.Get(t.Context(), entry.AddressHash)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 4300, got.DistanceMeters)
}

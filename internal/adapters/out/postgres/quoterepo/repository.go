// Package quoterepo persists resolved delivery quotes keyed by the
// normalized-address hash. Entries are written once and never expire;
// repeated quotes for the same address skip the external provider entirely.
package quoterepo

import (
	"context"
	"errors"
	"time"

	"pizzaria/internal/core/domain/model/quote"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuoteDTO is the database row for one cached delivery quote.
type QuoteDTO struct {
	AddressHash    string          `gorm:"size:64;primaryKey"`
	Lat            float64
	Lng            float64
	DistanceMeters int
	Fee            decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "delivery_quotes".
func (QuoteDTO) TableName() string {
	return "delivery_quotes"
}

// GormQuoteCache implements ports.QuoteCache using GORM.
type GormQuoteCache struct {
	db *gorm.DB
}

// NewGormQuoteCache creates a new GORM quote cache.
func NewGormQuoteCache(db *gorm.DB) *GormQuoteCache {
	return &GormQuoteCache{db: db}
}

// Get returns the cached quote for the address hash, if any.
func (r *GormQuoteCache) Get(ctx context.Context, addressHash string) (quote.CacheEntry, bool, error) {
	var dto QuoteDTO
	err := r.db.WithContext(ctx).First(&dto, "address_hash = ?", addressHash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return quote.CacheEntry{}, false, nil
	}
	if err != nil {
		return quote.CacheEntry{}, false, err
	}

	return quote.CacheEntry{
		AddressHash:    dto.AddressHash,
		Lat:            dto.Lat,
		Lng:            dto.Lng,
		DistanceMeters: dto.DistanceMeters,
		Fee:            dto.Fee,
	}, true, nil
}

// Put stores a freshly computed quote. Concurrent quotes for the same
// address race benignly; the first writer wins and later writes are ignored.
func (r *GormQuoteCache) Put(ctx context.Context, entry quote.CacheEntry) error {
	dto := QuoteDTO{
		AddressHash:    entry.AddressHash,
		Lat:            entry.Lat,
		Lng:            entry.Lng,
		DistanceMeters: entry.DistanceMeters,
		Fee:            entry.Fee,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

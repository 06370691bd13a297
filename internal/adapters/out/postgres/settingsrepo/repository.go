// Package settingsrepo persists the singleton store settings: the global
// order-pause flag and the delivery pricing configuration. Each lives in its
// own one-row table keyed by a fixed id, so reads and writes stay trivial.
package settingsrepo

import (
	"context"
	"errors"
	"time"

	"pizzaria/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const singletonID = 1

// PauseFlagDTO is the one-row table holding the order-pause flag.
type PauseFlagDTO struct {
	ID        int    `gorm:"primaryKey"`
	Paused    bool
	Message   string `gorm:"size:255"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "order_pause".
func (PauseFlagDTO) TableName() string {
	return "order_pause"
}

// PricingConfigDTO is the one-row table holding delivery pricing settings.
type PricingConfigDTO struct {
	ID              int `gorm:"primaryKey"`
	OriginLat       float64
	OriginLng       float64
	PricePerKm      decimal.Decimal `gorm:"type:decimal(10,2)"`
	MinDeliveryFee  decimal.Decimal `gorm:"type:decimal(10,2)"`
	GeocodingAPIKey string          `gorm:"size:255"`
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming to use "delivery_pricing".
func (PricingConfigDTO) TableName() string {
	return "delivery_pricing"
}

// GormSettingsStore implements ports.SettingsStore using GORM.
type GormSettingsStore struct {
	db *gorm.DB
}

// NewGormSettingsStore creates a new GORM settings store.
func NewGormSettingsStore(db *gorm.DB) *GormSettingsStore {
	return &GormSettingsStore{db: db}
}

// GetPauseFlag reads the pause flag. A missing row reads as not paused.
func (r *GormSettingsStore) GetPauseFlag(ctx context.Context) (ports.PauseFlag, error) {
	var dto PauseFlagDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.PauseFlag{}, nil
	}
	if err != nil {
		return ports.PauseFlag{}, err
	}

	return ports.PauseFlag{Paused: dto.Paused, Message: dto.Message}, nil
}

// SetPauseFlag upserts the pause flag row.
func (r *GormSettingsStore) SetPauseFlag(ctx context.Context, flag ports.PauseFlag) error {
	dto := PauseFlagDTO{ID: singletonID, Paused: flag.Paused, Message: flag.Message}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"paused", "message", "updated_at"}),
		}).
		Create(&dto).Error
}

// GetPricingConfig reads the pricing configuration. A missing row returns
// the zero value, which the quoter reports as misconfigured.
func (r *GormSettingsStore) GetPricingConfig(ctx context.Context) (ports.PricingConfig, error) {
	var dto PricingConfigDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.PricingConfig{}, nil
	}
	if err != nil {
		return ports.PricingConfig{}, err
	}

	return ports.PricingConfig{
		OriginLat:       dto.OriginLat,
		OriginLng:       dto.OriginLng,
		PricePerKm:      dto.PricePerKm,
		MinDeliveryFee:  dto.MinDeliveryFee,
		GeocodingAPIKey: dto.GeocodingAPIKey,
	}, nil
}

// SetPricingConfig upserts the pricing configuration row.
func (r *GormSettingsStore) SetPricingConfig(ctx context.Context, config ports.PricingConfig) error {
	dto := PricingConfigDTO{
		ID:              singletonID,
		OriginLat:       config.OriginLat,
		OriginLng:       config.OriginLng,
		PricePerKm:      config.PricePerKm,
		MinDeliveryFee:  config.MinDeliveryFee,
		GeocodingAPIKey: config.GeocodingAPIKey,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"origin_lat", "origin_lng", "price_per_km", "min_delivery_fee",
				"geocoding_api_key", "updated_at",
			}),
		}).
		Create(&dto).Error
}

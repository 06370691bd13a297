package settingsrepo_test

import (
	"testing"

	"pizzaria/internal/adapters/out/postgres/settingsrepo"
	"pizzaria/internal/core/ports"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *settingsrepo.GormSettingsStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&settingsrepo.PauseFlagDTO{}, &settingsrepo.PricingConfigDTO{}))

	return settingsrepo.NewGormSettingsStore(db)
}

func TestGormSettingsStore_PauseFlag(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	t.Run("missing row reads as not paused", func(t *testing.T) {
		flag, err := store.GetPauseFlag(ctx)
		require.NoError(t, err)
		assert.False(t, flag.Paused)
		assert.Empty(t, flag.Message)
	})

	t.Run("set and read back", func(t *testing.T) {
		err := store.SetPauseFlag(ctx, ports.PauseFlag{Paused: true, Message: "Voltamos às 18h"})
		require.NoError(t, err)

		flag, err := store.GetPauseFlag(ctx)
		require.NoError(t, err)
		assert.True(t, flag.Paused)
		assert.Equal(t, "Voltamos às 18h", flag.Message)
	})

	t.Run("second set overwrites the singleton row", func(t *testing.T) {
		err := store.SetPauseFlag(ctx, ports.PauseFlag{Paused: false})
		require.NoError(t, err)

		flag, err := store.GetPauseFlag(ctx)
		require.NoError(t, err)
		assert.False(t, flag.Paused)
		assert.Empty(t, flag.Message)
	})
}

func TestGormSettingsStore_PricingConfig(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	t.Run("missing row reads as zero config", func(t *testing.T) {
		config, err := store.GetPricingConfig(ctx)
		require.NoError(t, err)
		assert.Empty(t, config.GeocodingAPIKey)
		assert.True(t, config.PricePerKm.IsZero())
	})

	t.Run("set and read back", func(t *testing.T) {
		err := store.SetPricingConfig(ctx, ports.PricingConfig{
			OriginLat:       -23.561684,
			OriginLng:       -46.655981,
			PricePerKm:      decimal.NewFromFloat(2.00),
			MinDeliveryFee:  decimal.NewFromFloat(5.00),
			GeocodingAPIKey: "prod-key",
		})
		require.NoError(t, err)

		config, err := store.GetPricingConfig(ctx)
		require.NoError(t, err)
		assert.InDelta(t, -23.561684, config.OriginLat, 1e-9)
		assert.InDelta(t, -46.655981, config.OriginLng, 1e-9)
		assert.True(t, config.PricePerKm.Equal(decimal.NewFromFloat(2.00)))
		assert.True(t, config.MinDeliveryFee.Equal(decimal.NewFromFloat(5.00)))
		assert.Equal(t, "prod-key", config.GeocodingAPIKey)
	})
}

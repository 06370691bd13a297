package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PauseFlag is the single global record gating order creation. When paused,
// the message is shown to customers attempting to order.
type PauseFlag struct {
	Paused  bool
	Message string
}

// PricingConfig is the single pricing/geocoding configuration row consumed
// by the delivery quoter. Origin coordinates of (0, 0) mean the origin has
// not been configured.
type PricingConfig struct {
	OriginLat       float64
	OriginLng       float64
	PricePerKm      decimal.Decimal
	MinDeliveryFee  decimal.Decimal
	GeocodingAPIKey string
}

// SettingsStore reads and writes the singleton settings rows. Reads are
// simple snapshot reads; staff updates are infrequent and a request that
// started just before an update seeing the old value is acceptable.
type SettingsStore interface {
	// GetPauseFlag reads the global order-pause flag. A missing row reads
	// as not paused.
	GetPauseFlag(ctx context.Context) (PauseFlag, error)

	// SetPauseFlag writes the global order-pause flag.
	SetPauseFlag(ctx context.Context, flag PauseFlag) error

	// GetPricingConfig reads the delivery pricing configuration. A missing
	// row returns the zero value, which the quoter reports as
	// misconfigured.
	GetPricingConfig(ctx context.Context) (PricingConfig, error)
}

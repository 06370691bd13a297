package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/quote"
	"pizzaria/internal/core/ports"

	"github.com/shopspring/decimal"
)

var (
	// ErrPricingMisconfigured is returned when the geocoding key, origin
	// coordinates, or price-per-km are not set up.
	ErrPricingMisconfigured = errors.New("delivery pricing is not configured")

	// ErrGeocodeFailed is returned when the provider could not locate the
	// address. Treated as "cannot quote", not a server fault.
	ErrGeocodeFailed = errors.New("could not locate address")

	// ErrRouteFailed is returned when the provider could not compute a
	// route distance to the resolved coordinates.
	ErrRouteFailed = errors.New("could not compute route")
)

// DeliveryQuoter is the domain service that prices a delivery to a customer
// address. It orchestrates the pricing configuration, the persistent quote
// cache, and the external geocoding/routing provider.
//
// The cache exists because the external calls dominate checkout latency and
// cost. Caching is by exact normalized address: nearby but distinct
// addresses are never deduplicated.
//
// Example:
//
//	quoter := services.NewDeliveryQuoter(settings, cache, geocoder, logger)
//	address, _ := quote.NewAddress("01310-100", "Av. Paulista", "1578", "Bela Vista", "São Paulo")
//	q, err := quoter.Quote(ctx, address)
//	if errors.Is(err, services.ErrGeocodeFailed) {
//	    // ask the customer to double-check the address
//	}
type DeliveryQuoter struct {
	settings ports.SettingsStore
	cache    ports.QuoteCache
	geocoder ports.Geocoder
	logger   *slog.Logger
}

// NewDeliveryQuoter creates the quoting service with its collaborators.
func NewDeliveryQuoter(
	settings ports.SettingsStore,
	cache ports.QuoteCache,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) DeliveryQuoter {
	return DeliveryQuoter{
		settings: settings,
		cache:    cache,
		geocoder: geocoder,
		logger:   logger.With("component", "delivery_quoter"),
	}
}

// Quote prices a delivery to the given address. Cached quotes are served
// without touching the external provider; on a miss the result is persisted
// best-effort, so a cache-write failure only skips caching and never fails
// the quote itself.
func (s DeliveryQuoter) Quote(ctx context.Context, address quote.Address) (quote.Quote, error) {
	config, err := s.settings.GetPricingConfig(ctx)
	if err != nil {
		return quote.Quote{}, err
	}

	origin, err := validateConfig(config)
	if err != nil {
		return quote.Quote{}, err
	}

	hash := address.Hash()
	if entry, found, cacheErr := s.cache.Get(ctx, hash); cacheErr != nil {
		return quote.Quote{}, cacheErr
	} else if found {
		return quote.Quote{DistanceMeters: entry.DistanceMeters, Fee: entry.Fee, Cached: true}, nil
	}

	destination, err := s.resolve(ctx, config.GeocodingAPIKey, address)
	if err != nil {
		return quote.Quote{}, err
	}

	meters, err := s.geocoder.RouteDistance(ctx, config.GeocodingAPIKey, origin, destination)
	if err != nil {
		return quote.Quote{}, err
	}
	if meters <= 0 {
		return quote.Quote{}, ErrRouteFailed
	}

	result := quote.Quote{DistanceMeters: meters, Fee: computeFee(config, meters), Cached: false}

	if putErr := s.cache.Put(ctx, quote.CacheEntry{
		AddressHash:    hash,
		Lat:            destination.Lat(),
		Lng:            destination.Lng(),
		DistanceMeters: meters,
		Fee:            result.Fee,
	}); putErr != nil {
		s.logger.WarnContext(ctx, "Quote cache write failed, skipping cache",
			"address_hash", hash, "error", putErr)
	}

	return result, nil
}

// resolve geocodes the address, appending the city as a hint when the
// geocoding text would otherwise lack it.
func (s DeliveryQuoter) resolve(ctx context.Context, apiKey string, address quote.Address) (kernel.Coordinates, error) {
	text := address.Text()
	if !strings.Contains(strings.ToLower(text), strings.ToLower(address.City)) {
		text = text + ", " + address.City
	}

	coords, found, err := s.geocoder.Geocode(ctx, apiKey, text)
	if err != nil {
		return kernel.Coordinates{}, err
	}
	if !found {
		return kernel.Coordinates{}, ErrGeocodeFailed
	}
	return coords, nil
}

// computeFee applies fee = max(minFee, distanceKm * pricePerKm).
func computeFee(config ports.PricingConfig, meters int) decimal.Decimal {
	distanceKm := decimal.NewFromInt(int64(meters)).Div(decimal.NewFromInt(1000))
	fee := distanceKm.Mul(config.PricePerKm).Round(2)
	if fee.LessThan(config.MinDeliveryFee) {
		return config.MinDeliveryFee
	}
	return fee
}

func validateConfig(config ports.PricingConfig) (kernel.Coordinates, error) {
	if config.GeocodingAPIKey == "" || !config.PricePerKm.IsPositive() {
		return kernel.Coordinates{}, ErrPricingMisconfigured
	}
	if config.OriginLat == 0 && config.OriginLng == 0 {
		return kernel.Coordinates{}, ErrPricingMisconfigured
	}

	origin, err := kernel.NewCoordinates(config.OriginLat, config.OriginLng)
	if err != nil {
		return kernel.Coordinates{}, ErrPricingMisconfigured
	}
	return origin, nil
}

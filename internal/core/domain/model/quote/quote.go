// Package quote holds the delivery-quoting value objects: the normalized
// customer address with its deterministic cache key, and the resulting
// distance/fee quote.
package quote

import "github.com/shopspring/decimal"

// Quote is the result of pricing a delivery to a specific address.
// Cached reports whether it was served from the persistent cache or
// computed through the external geocoding/routing providers.
type Quote struct {
	DistanceMeters int
	Fee            decimal.Decimal
	Cached         bool
}

// DistanceKm returns the route distance in kilometers with two decimals,
// the unit shown to customers and used for fee arithmetic.
func (q Quote) DistanceKm() decimal.Decimal {
	return decimal.NewFromInt(int64(q.DistanceMeters)).Div(decimal.NewFromInt(1000)).Round(2)
}

// CacheEntry is the persistent record of a resolved quote, keyed by the
// address hash. Entries are immutable once written; there is no expiry.
type CacheEntry struct {
	AddressHash    string
	Lat            float64
	Lng            float64
	DistanceMeters int
	Fee            decimal.Decimal
}

package ports

import (
	"context"

	"pizzaria/internal/core/domain/model/kernel"
)

// Geocoder resolves addresses and route distances through the external
// geocoding/routing provider. Both calls block on outbound HTTP and carry a
// bounded timeout; the context cancels them early.
type Geocoder interface {
	// Geocode resolves an address string to coordinates. found is false
	// when the provider returned no result for the address.
	Geocode(ctx context.Context, apiKey, address string) (coords kernel.Coordinates, found bool, err error)

	// RouteDistance returns the driving distance in meters between two
	// coordinate pairs. A zero distance means the provider could not
	// compute a route.
	RouteDistance(ctx context.Context, apiKey string, origin, destination kernel.Coordinates) (meters int, err error)
}

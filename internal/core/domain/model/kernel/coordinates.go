package kernel

import (
	"errors"
	"fmt"

	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when validating a zero-value
// Coordinates. Instances must be created via NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates is an immutable value object holding a WGS84 latitude/longitude
// pair. It represents both the store origin from the pricing configuration
// and geocoded customer addresses.
//
// Example:
//
//	origin, err := kernel.NewCoordinates(-23.5505, -46.6333)
//	if err != nil {
//	    // out-of-range coordinate
//	}
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinates creates a Coordinates pair, rejecting values outside the
// valid WGS84 ranges.
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLat(lat), c.setLng(lng)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Lat returns the latitude in decimal degrees.
func (c Coordinates) Lat() float64 {
	return c.lat
}

// Lng returns the longitude in decimal degrees.
func (c Coordinates) Lng() float64 {
	return c.lng
}

// IsEqual reports whether two coordinate pairs are identical.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.lat == other.lat && c.lng == other.lng
}

// String renders the pair as "lat,lng", the format expected by the routing
// provider's origin/destination parameters.
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.lat, c.lng)
}

// Validate rejects zero-value instances that bypassed the constructor.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c *Coordinates) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}
	c.lat = lat
	return nil
}

func (c *Coordinates) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}
	c.lng = lng
	return nil
}

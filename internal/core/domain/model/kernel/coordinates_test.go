package kernel_test

import (
	"testing"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("creates_valid_pair", func(t *testing.T) {
		c, err := kernel.NewCoordinates(-23.5505, -46.6333)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.InDelta(t, -23.5505, c.Lat(), 0.0001)
		assert.InDelta(t, -46.6333, c.Lng(), 0.0001)
	})

	tests := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{"latitude_above_max", 90.1, 0},
		{"latitude_below_min", -90.1, 0},
		{"longitude_above_max", 0, 180.1},
		{"longitude_below_min", 0, -180.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.NewCoordinates(tt.lat, tt.lng)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestCoordinates_String(t *testing.T) {
	t.Run("renders_lat_comma_lng", func(t *testing.T) {
		c, err := kernel.NewCoordinates(-23.5, -46.62)

		require.NoError(t, err)
		assert.Equal(t, "-23.5,-46.62", c.String())
	})
}

func TestCoordinates_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var c kernel.Coordinates

		require.ErrorIs(t, c.Validate(), kernel.ErrCoordinatesAreNotConstructed)
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	a, err := kernel.NewCoordinates(1, 2)
	require.NoError(t, err)
	b, err := kernel.NewCoordinates(1, 2)
	require.NoError(t, err)
	c, err := kernel.NewCoordinates(1, 3)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-sea-effect/internal/weather"
	"github.com/i474232898/weather-sea-effect/internal/weather/weathertest"
)

func TestDistanceFrom(t *testing.T) {
	cities := weathertest.Cities()
	mumbai, pune := cities[0], cities[3]

	d, err := pune.DistanceFrom(mumbai, weather.RoadDistance)
	require.NoError(t, err)
	assert.Equal(t, 120.0, d)

	d, err = pune.DistanceFrom(mumbai, "")
	require.NoError(t, err)
	assert.Equal(t, 120.0, d)

	// Straight-line Mumbai to Pune is roughly 120 km.
	d, err = pune.DistanceFrom(mumbai, weather.GreatCircleDistance)
	require.NoError(t, err)
	assert.InDelta(t, 120, d, 10)

	d, err = mumbai.DistanceFrom(mumbai, weather.GreatCircleDistance)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)

	_, err = pune.DistanceFrom(mumbai, "manhattan")
	assert.Error(t, err)
}

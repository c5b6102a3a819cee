package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-sea-effect/internal/weather"
	"github.com/i474232898/weather-sea-effect/internal/weather/weathertest"
)

func TestReshapeConstantTemperature(t *testing.T) {
	raw := weathertest.Constant(20, "25", weathertest.Reading{
		TempC: 25, Humidity: 60, Pressure: 1010, WindKmph: 10, WindDeg: 180,
	})

	records, err := weather.Reshape(raw)
	require.NoError(t, err)
	require.Len(t, records, 20)

	for _, rec := range records {
		assert.Equal(t, "25", rec.AvgTempC)
		assert.Len(t, rec.Temperature, weather.SlotsPerDay)
		for _, v := range rec.Temperature {
			assert.Equal(t, 25.0, v)
		}
	}
}

func TestReshapeSeriesLength(t *testing.T) {
	records, err := weather.Reshape(weathertest.SeaEffect(weathertest.Cities()[3]))
	require.NoError(t, err)

	for _, rec := range records {
		for _, m := range weather.NumericMeasurements() {
			series, err := rec.Series(m)
			require.NoError(t, err)
			assert.Len(t, series, weather.SlotsPerDay, m)
		}
		assert.Len(t, rec.WeatherDescription, weather.SlotsPerDay)
		assert.Equal(t, "Partly cloudy", rec.WeatherDescription[0])
		assert.Equal(t, weather.HourBoundaries, rec.Hour)
	}
}

func TestReshapeShortDay(t *testing.T) {
	raw := weathertest.Constant(3, "25", weathertest.Reading{TempC: 25})
	raw[1].Hourly = raw[1].Hourly[:5]

	_, err := weather.Reshape(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, weather.ErrMalformedRecord)
}

func TestReshapeNonNumeric(t *testing.T) {
	raw := weathertest.Constant(1, "25", weathertest.Reading{TempC: 25})
	raw[0].Hourly[2].Humidity = "n/a"

	_, err := weather.Reshape(raw)
	assert.ErrorIs(t, err, weather.ErrMalformedRecord)
}

func TestReshapeMissingDescription(t *testing.T) {
	raw := weathertest.Constant(1, "25", weathertest.Reading{TempC: 25})
	raw[0].Hourly[0].WeatherDesc = nil

	_, err := weather.Reshape(raw)
	assert.ErrorIs(t, err, weather.ErrMalformedRecord)
}

func TestReshapeEmpty(t *testing.T) {
	_, err := weather.Reshape(nil)
	assert.ErrorIs(t, err, weather.ErrMalformedRecord)
}

func TestSeriesUnknownMeasurement(t *testing.T) {
	_, err := weather.DayRecord{}.Series(weather.WeatherDescription)
	assert.ErrorIs(t, err, weather.ErrUnknownMeasurement)
}

func TestMeasurementNumeric(t *testing.T) {
	rec := weather.DayRecord{}
	for _, m := range weather.NumericMeasurements() {
		assert.True(t, m.Numeric(), m)
		_, err := rec.Series(m)
		assert.NoError(t, err, m)
	}
	assert.False(t, weather.WeatherDescription.Numeric())
	assert.False(t, weather.Measurement("rainfall").Numeric())

	// Callers get their own copy.
	list := weather.NumericMeasurements()
	list[0] = "rainfall"
	assert.Equal(t, weather.Temperature, weather.NumericMeasurements()[0])
}

func TestDatasetDay(t *testing.T) {
	ds := weather.Dataset{"Pune": make([]weather.DayRecord, 2)}

	_, err := ds.Day("Pune", 1)
	assert.NoError(t, err)
	_, err = ds.Day("Pune", 2)
	assert.Error(t, err)
	_, err = ds.Day("Nowhere", 0)
	assert.Error(t, err)
}

func TestDateRangeDays(t *testing.T) {
	assert.Equal(t, 20, weathertest.Window.Days())
	assert.Equal(t, "2019-07-01", weathertest.Window.StartDate())
	assert.Equal(t, "2019-07-20", weathertest.Window.EndDate())
}

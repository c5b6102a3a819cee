package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-sea-effect/internal/analysis"
	"github.com/i474232898/weather-sea-effect/internal/config"
	"github.com/i474232898/weather-sea-effect/internal/store"
	"github.com/i474232898/weather-sea-effect/internal/weather"
	"github.com/i474232898/weather-sea-effect/internal/weather/weathertest"
)

func newAnalyzer(t *testing.T, cities int) *Analyzer {
	t.Helper()
	study, err := config.DefaultStudy()
	require.NoError(t, err)

	mem := store.NewMemoryStore()
	for _, c := range study.Cities[:cities] {
		require.NoError(t, mem.Save(c.Name, weathertest.SeaEffect(c)))
	}
	svc := weather.NewService(mem, nil, study.Cities, weathertest.Window)
	return NewAnalyzer(svc, study, weather.RoadDistance)
}

func TestPlotSpecFileName(t *testing.T) {
	plots := DefaultPlots()
	assert.Equal(t, "temperature_timeseries.png", plots[0].FileName())
	assert.Equal(t, "temperature_max_extremes.png", plots[1].FileName())
	assert.Equal(t, "humidity_min_extremes.png", plots[5].FileName())
}

func TestDefaultPlotsAreFixed(t *testing.T) {
	plots := DefaultPlots()
	plots[0].Measurement = weather.Pressure

	fresh := DefaultPlots()
	require.Len(t, fresh, 6)
	assert.Equal(t, weather.Temperature, fresh[0].Measurement)
	assert.Equal(t, analysis.Max, fresh[1].Extreme)
}

func TestRunnerWritesSixPlots(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plots")
	files, err := NewRunner(newAnalyzer(t, 10), out).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 6)

	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRunnerMissingCache(t *testing.T) {
	_, err := NewRunner(newAnalyzer(t, 9), t.TempDir()).Run(context.Background())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files, err := NewRunner(newAnalyzer(t, 10), t.TempDir()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, files)
}

func TestAnalyzerFit(t *testing.T) {
	a := newAnalyzer(t, 10)
	ds, err := a.Dataset()
	require.NoError(t, err)

	fit, err := a.Fit(ds, weather.Humidity, analysis.Min)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mumbai", "Thane", "Badlapur"}, fit.NearCities)
	assert.Less(t, fit.Near.Slope, 0.0)
	assert.Len(t, fit.Points, 10)
}

func TestAnalyzerUnknownKind(t *testing.T) {
	a := newAnalyzer(t, 10)
	ds, err := a.Dataset()
	require.NoError(t, err)

	_, err = a.Plot(ds, PlotSpec{Kind: "pie", Measurement: weather.Temperature})
	assert.Error(t, err)
}

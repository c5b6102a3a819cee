package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-sea-effect/internal/weather"
	"github.com/i474232898/weather-sea-effect/internal/weather/weathertest"
)

var studySVR = LinearSVR{C: 1000, Epsilon: 0.1}

func seaEffectDataset(t *testing.T) weather.Dataset {
	t.Helper()
	ds := make(weather.Dataset)
	for _, c := range weathertest.Cities() {
		recs, err := weather.Reshape(weathertest.SeaEffect(c))
		require.NoError(t, err)
		ds[c.Name] = recs
	}
	return ds
}

func TestBucketMembership(t *testing.T) {
	cities := weathertest.Cities()
	points := make([]CityExtreme, len(cities))
	for i, c := range cities {
		points[i] = CityExtreme{City: c.Name, Distance: float64(c.DistanceKm), Max: 1, Min: 0}
	}

	near, far := Buckets{NearBelow: 100, FarAbove: 50}.Split(points, Max)
	assert.Equal(t, []string{"Mumbai", "Thane", "Badlapur"}, near.Cities)
	assert.Equal(t, []string{"Pune", "Solapur", "Shirdi", "Ahmednagar", "Ratnagiri", "Aurangabad", "Ichalkaranji"}, far.Cities)
	assert.Equal(t, []float64{0, 27, 49}, near.X)
	assert.Equal(t, 7, far.Len())
}

func TestBucketsOverlap(t *testing.T) {
	points := []CityExtreme{{City: "Midway", Distance: 75, Max: 10, Min: 5}}
	near, far := Buckets{NearBelow: 100, FarAbove: 50}.Split(points, Min)
	assert.Equal(t, []float64{5}, near.Y)
	assert.Equal(t, []float64{5}, far.Y)
}

func TestCityExtremes(t *testing.T) {
	ds := seaEffectDataset(t)
	cities := weathertest.Cities()

	points, err := CityExtremes(ds, cities, cities[0], weather.RoadDistance, weather.Temperature, 0)
	require.NoError(t, err)
	require.Len(t, points, len(cities))

	// Pune: trend 29.4 swinging by one degree.
	pune := points[3]
	assert.Equal(t, "Pune", pune.City)
	assert.Equal(t, 120.0, pune.Distance)
	assert.InDelta(t, 30.4, pune.Max, 1e-9)
	assert.InDelta(t, 28.4, pune.Min, 1e-9)
	assert.Equal(t, pune.Min, pune.Value(Min))
}

func TestCityExtremesMissingCity(t *testing.T) {
	cities := weathertest.Cities()
	_, err := CityExtremes(weather.Dataset{}, cities, cities[0], weather.RoadDistance, weather.Temperature, 0)
	assert.Error(t, err)
}

func TestIntersectAnalytic(t *testing.T) {
	near := Line{Slope: 0.01, Intercept: 29}
	far := Line{Slope: -0.005, Intercept: 30}

	p, err := Intersect(near, far, 0)
	require.NoError(t, err)
	assert.InDelta(t, 66.6667, p.X, 1e-3)
	assert.InDelta(t, 29.6667, p.Y, 1e-3)
}

func TestIntersectParallel(t *testing.T) {
	_, err := Intersect(Line{Slope: 0.01, Intercept: 29}, Line{Slope: 0.01, Intercept: 30}, 0)
	assert.ErrorIs(t, err, ErrFitDegenerate)

	_, err = Intersect(Line{Slope: 0.01, Intercept: 29}, Line{Slope: 0.01, Intercept: 29}, 0)
	assert.ErrorIs(t, err, ErrFitDegenerate)
}

func TestIntersectFarOut(t *testing.T) {
	_, err := Intersect(Line{Slope: 1e-7, Intercept: 0}, Line{Slope: 0, Intercept: 1}, 0)
	assert.ErrorIs(t, err, ErrFitDegenerate)
}

func TestSVRCollinear(t *testing.T) {
	xs := []float64{0, 50, 100, 150, 200, 250, 300}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 0.05*x + 20
	}

	l, err := studySVR.Fit(xs, ys)
	require.NoError(t, err)
	// The tube lets the slope flatten until the end points touch its edges.
	assert.InDelta(t, 0.05-0.2/300, l.Slope, 1e-4)
	assert.InDelta(t, 0.05, l.Slope, 0.0025)
	assert.InDelta(t, 20.1, l.Intercept, 1e-2)
	for i, x := range xs {
		assert.InDelta(t, ys[i], l.At(x), studySVR.Epsilon+1e-3)
	}
}

func TestSVRFlat(t *testing.T) {
	xs := []float64{120, 182, 195, 202, 223, 261, 304}
	ys := []float64{25, 25, 25, 25, 25, 25, 25}

	l, err := studySVR.Fit(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, 0, l.Slope, 1e-6)
	assert.InDelta(t, 25, l.Intercept, 1e-3)
}

func TestSVRDegenerate(t *testing.T) {
	_, err := studySVR.Fit([]float64{10}, []float64{1})
	assert.ErrorIs(t, err, ErrFitDegenerate)

	_, err = studySVR.Fit([]float64{10, 10, 10}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrFitDegenerate)

	_, err = LinearSVR{C: 0, Epsilon: 0.1}.Fit([]float64{1, 2}, []float64{1, 2})
	assert.Error(t, err)
}

func TestFitterSeaEffect(t *testing.T) {
	ds := seaEffectDataset(t)
	cities := weathertest.Cities()
	points, err := CityExtremes(ds, cities, cities[0], weather.RoadDistance, weather.Temperature, 0)
	require.NoError(t, err)

	fit, err := Fitter{Buckets: Buckets{NearBelow: 100, FarAbove: 50}, SVR: studySVR}.Fit(points, Max)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mumbai", "Thane", "Badlapur"}, fit.NearCities)
	assert.Len(t, fit.FarCities, 7)
	assert.Greater(t, fit.Near.Slope, 0.0)
	assert.Less(t, fit.Far.Slope, 0.0)
	assert.Greater(t, fit.Intersection.X, 0.0)
	assert.Less(t, fit.Intersection.X, 400.0)
	assert.InDelta(t, fit.Near.At(fit.Intersection.X), fit.Far.At(fit.Intersection.X), 1e-6)
}

func TestFitterSmallBucket(t *testing.T) {
	points := []CityExtreme{
		{City: "Mumbai", Distance: 0, Max: 30},
		{City: "Pune", Distance: 120, Max: 29},
		{City: "Solapur", Distance: 182, Max: 28},
	}
	_, err := Fitter{Buckets: Buckets{NearBelow: 100, FarAbove: 50}, SVR: studySVR}.Fit(points, Max)
	assert.ErrorIs(t, err, ErrFitDegenerate)
	assert.Contains(t, err.Error(), "near bucket")
}

func TestSteps(t *testing.T) {
	assert.Equal(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90}, Steps(10, 100, 10))
	assert.Equal(t, []float64{50, 100, 150, 200, 250, 300, 350}, Steps(50, 400, 50))
	assert.Equal(t, []float64{1}, Steps(1, 2, 5))
	assert.Nil(t, Steps(5, 5, 1))
}

func TestPredict(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 5}, Predict(Line{Slope: 2, Intercept: 1}, []float64{0, 1, 2}))
}

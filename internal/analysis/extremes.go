// Package analysis fits the distance-vs-extreme regressions of the study.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/i474232898/weather-sea-effect/internal/weather"
)

// Extreme selects the daily maximum or minimum of a series.
type Extreme string

const (
	Max Extreme = "max"
	Min Extreme = "min"
)

// CityExtreme is one city's daily max and min of a measurement.
type CityExtreme struct {
	City     string  `json:"city"`
	Distance float64 `json:"distanceKm"`
	Max      float64 `json:"max"`
	Min      float64 `json:"min"`
}

// Value returns the requested extreme.
func (c CityExtreme) Value(e Extreme) float64 {
	if e == Min {
		return c.Min
	}
	return c.Max
}

// CityExtremes computes, for every city, the max and min of measurement m on
// the given day, paired with the city's distance from ref.
func CityExtremes(ds weather.Dataset, cities []weather.City, ref weather.City, metric weather.DistanceMetric, m weather.Measurement, day int) ([]CityExtreme, error) {
	out := make([]CityExtreme, 0, len(cities))
	for _, c := range cities {
		rec, err := ds.Day(c.Name, day)
		if err != nil {
			return nil, err
		}
		series, err := rec.Series(m)
		if err != nil {
			return nil, err
		}
		if len(series) != weather.SlotsPerDay {
			return nil, fmt.Errorf("%w: %s has %d %s values", weather.ErrMalformedRecord, c.Name, len(series), m)
		}
		dist, err := c.DistanceFrom(ref, metric)
		if err != nil {
			return nil, err
		}
		out = append(out, CityExtreme{
			City:     c.Name,
			Distance: dist,
			Max:      floats.Max(series),
			Min:      floats.Min(series),
		})
	}
	return out, nil
}

// Buckets splits cities by distance. The ranges are allowed to overlap.
type Buckets struct {
	NearBelow float64
	FarAbove  float64
}

// Sample is a set of (distance, value) points.
type Sample struct {
	X      []float64
	Y      []float64
	Cities []string
}

// Len returns the number of points.
func (s Sample) Len() int {
	return len(s.X)
}

func (s *Sample) add(city string, x, y float64) {
	s.Cities = append(s.Cities, city)
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

// Split returns the near (distance < NearBelow) and far (distance > FarAbove)
// samples of the chosen extreme.
func (b Buckets) Split(points []CityExtreme, e Extreme) (near, far Sample) {
	for _, p := range points {
		v := p.Value(e)
		if p.Distance < b.NearBelow {
			near.add(p.City, p.Distance, v)
		}
		if p.Distance > b.FarAbove {
			far.add(p.City, p.Distance, v)
		}
	}
	return near, far
}

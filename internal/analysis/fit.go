package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ExtremesFit is the two-segment regression of one extreme against distance.
type ExtremesFit struct {
	Extreme      Extreme       `json:"extreme"`
	Points       []CityExtreme `json:"points"`
	Near         Line          `json:"near"`
	Far          Line          `json:"far"`
	NearCities   []string      `json:"nearCities"`
	FarCities    []string      `json:"farCities"`
	Intersection Point         `json:"intersection"`
}

// Fitter fits near and far lines and intersects them.
type Fitter struct {
	Buckets Buckets
	SVR     LinearSVR
	// Guess is the starting point of the intersection solver.
	Guess float64
}

// Fit splits points into buckets, fits each one and intersects the lines.
func (f Fitter) Fit(points []CityExtreme, e Extreme) (ExtremesFit, error) {
	near, far := f.Buckets.Split(points, e)

	nearLine, err := f.SVR.Fit(near.X, near.Y)
	if err != nil {
		return ExtremesFit{}, fmt.Errorf("near bucket: %w", err)
	}
	farLine, err := f.SVR.Fit(far.X, far.Y)
	if err != nil {
		return ExtremesFit{}, fmt.Errorf("far bucket: %w", err)
	}

	poi, err := Intersect(nearLine, farLine, f.Guess)
	if err != nil {
		return ExtremesFit{}, err
	}

	return ExtremesFit{
		Extreme:      e,
		Points:       points,
		Near:         nearLine,
		Far:          farLine,
		NearCities:   near.Cities,
		FarCities:    far.Cities,
		Intersection: poi,
	}, nil
}

// Predict evaluates l at every x in xs.
func Predict(l Line, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = l.At(x)
	}
	return ys
}

// Steps returns from, from+step, ... while below to, like a half-open range.
func Steps(from, to, step float64) []float64 {
	if step <= 0 || to <= from {
		return nil
	}
	n := int((to-from)/step + 0.5)
	if from+float64(n)*step < to {
		n++
	}
	if n == 1 {
		return []float64{from}
	}
	xs := make([]float64, n)
	floats.Span(xs, from, from+float64(n-1)*step)
	return xs
}

package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	maxNewtonSteps = 50
	// Roots further out than this are outside any distance the study covers.
	maxRootMagnitude = 1e6
)

// Point is an (x, y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Intersect finds x where l1 and l2 meet, starting from x0. It solves
// l1(x) - l2(x) = 0 by Newton iteration with a central-difference derivative.
// Parallel lines and roots beyond maxRootMagnitude yield ErrFitDegenerate.
func Intersect(l1, l2 Line, x0 float64) (Point, error) {
	f := func(x float64) float64 { return l1.At(x) - l2.At(x) }
	settings := &fd.Settings{Formula: fd.Central}

	scale := 1 + math.Abs(l1.Intercept) + math.Abs(l2.Intercept)
	// Below this the difference quotient is rounding noise.
	flat := 1e-9 * scale
	x := x0
	for i := 0; i < maxNewtonSteps; i++ {
		slope := fd.Derivative(f, x, settings)
		if math.Abs(slope) <= flat {
			return Point{}, fmt.Errorf("%w: lines are parallel (slopes %g, %g)", ErrFitDegenerate, l1.Slope, l2.Slope)
		}

		fx := f(x)
		if math.Abs(fx) <= 1e-12*scale {
			return checkedRoot(l1, x)
		}
		x -= fx / slope
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Point{}, fmt.Errorf("%w: solver diverged", ErrFitDegenerate)
		}
	}
	return checkedRoot(l1, x)
}

func checkedRoot(l Line, x float64) (Point, error) {
	if math.Abs(x) > maxRootMagnitude {
		return Point{}, fmt.Errorf("%w: intersection at x=%g", ErrFitDegenerate, x)
	}
	return Point{X: x, Y: l.At(x)}, nil
}

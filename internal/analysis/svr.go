package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrFitDegenerate is returned when a regression or intersection has no
// meaningful answer: too few points, no spread in x, or parallel lines.
var ErrFitDegenerate = errors.New("fit degenerate, no intersection")

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// LinearSVR is an epsilon-insensitive support vector regression with a
// linear kernel on a single feature. It minimizes
//
//	0.5*w^2 + C * sum(max(0, |y - (w*x + b)| - Epsilon))
//
// with an unregularized intercept b.
type LinearSVR struct {
	C       float64
	Epsilon float64
}

const ternaryIterations = 300

// Fit returns the fitted line for the sample.
func (r LinearSVR) Fit(xs, ys []float64) (Line, error) {
	if len(xs) != len(ys) {
		return Line{}, fmt.Errorf("sample has %d x and %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Line{}, fmt.Errorf("%w: %d points", ErrFitDegenerate, len(xs))
	}
	spread := false
	for _, x := range xs[1:] {
		if x != xs[0] {
			spread = true
			break
		}
	}
	if !spread {
		return Line{}, fmt.Errorf("%w: all points share x=%g", ErrFitDegenerate, xs[0])
	}
	if r.C <= 0 || r.Epsilon < 0 {
		return Line{}, fmt.Errorf("invalid svr parameters C=%g epsilon=%g", r.C, r.Epsilon)
	}

	// Minimizing over b for a fixed w leaves a strictly convex function of w.
	objective := func(w float64) float64 {
		_, loss := r.bestIntercept(xs, ys, w)
		return 0.5*w*w + r.C*loss
	}

	// The optimum cannot cost more than w=0, which bounds |w|.
	bound := math.Sqrt(2*objective(0)) + 1
	lo, hi := -bound, bound
	for i := 0; i < ternaryIterations; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if objective(m1) < objective(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}

	w := (lo + hi) / 2
	b, _ := r.bestIntercept(xs, ys, w)
	return Line{Slope: w, Intercept: b}, nil
}

// bestIntercept minimizes the epsilon-insensitive loss over b for slope w.
// The loss is piecewise linear and convex in b, so its minimizers form an
// interval bounded by breakpoints; the midpoint of that interval is returned.
func (r LinearSVR) bestIntercept(xs, ys []float64, w float64) (float64, float64) {
	candidates := make([]float64, 0, 2*len(xs))
	for i := range xs {
		res := ys[i] - w*xs[i]
		candidates = append(candidates, res-r.Epsilon, res+r.Epsilon)
	}

	best := math.Inf(1)
	losses := make([]float64, len(candidates))
	for i, b := range candidates {
		losses[i] = r.loss(xs, ys, w, b)
		if losses[i] < best {
			best = losses[i]
		}
	}

	tol := 1e-12 * (1 + best)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, b := range candidates {
		if losses[i] <= best+tol {
			lo = math.Min(lo, b)
			hi = math.Max(hi, b)
		}
	}
	return (lo + hi) / 2, best
}

func (r LinearSVR) loss(xs, ys []float64, w, b float64) float64 {
	var sum float64
	for i := range xs {
		if d := math.Abs(ys[i]-(w*xs[i]+b)) - r.Epsilon; d > 0 {
			sum += d
		}
	}
	return sum
}

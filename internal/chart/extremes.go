package chart

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/i474232898/weather-sea-effect/internal/analysis"
)

const (
	width  = 8 * vg.Inch
	height = 5 * vg.Inch

	extrapolationPoints = 31
	extrapolationMax    = 300
)

// extrapolation returns the x values over which both fits are extended so
// that they visibly meet at the intersection.
func extrapolation() []float64 {
	xs := make([]float64, extrapolationPoints)
	floats.Span(xs, 0, extrapolationMax)
	return xs
}

// Extremes plots the raw extremes, the near fit over 10..90 km, the far fit
// over 50..350 km, both fits extrapolated over 0..300 km and their intersection.
func Extremes(fit analysis.ExtremesFit, title, yLabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance in Km"
	p.Y.Label.Text = yLabel
	p.X.Min = 0
	p.X.Max = 400
	p.Add(plotter.NewGrid())

	nearLine, err := fitLine(fit.Near, analysis.Steps(10, 100, 10))
	if err != nil {
		return nil, err
	}
	nearLine.LineStyle.Color = red
	p.Add(nearLine)
	p.Legend.Add("Strong sea effect", nearLine)

	farLine, err := fitLine(fit.Far, analysis.Steps(50, 400, 50))
	if err != nil {
		return nil, err
	}
	farLine.LineStyle.Color = blue
	p.Add(farLine)
	p.Legend.Add("Light sea effect", farLine)

	for _, ext := range []struct {
		line  analysis.Line
		color color.Color
	}{
		{fit.Near, red},
		{fit.Far, blue},
	} {
		l, err := fitLine(ext.line, extrapolation())
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = ext.color
		l.LineStyle.Width = vg.Points(0.75)
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(l)
	}

	data := make(plotter.XYs, len(fit.Points))
	for i, pt := range fit.Points {
		data[i].X = pt.Distance
		data[i].Y = pt.Value(fit.Extreme)
	}
	scatter, err := plotter.NewScatter(data)
	if err != nil {
		return nil, fmt.Errorf("failed to plot data points: %w", err)
	}
	scatter.GlyphStyle.Color = purple
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("data", scatter)

	poi, err := plotter.NewScatter(plotter.XYs{{X: fit.Intersection.X, Y: fit.Intersection.Y}})
	if err != nil {
		return nil, fmt.Errorf("failed to plot intersection: %w", err)
	}
	poi.GlyphStyle.Color = red
	poi.GlyphStyle.Shape = draw.CircleGlyph{}
	poi.GlyphStyle.Radius = vg.Points(4)
	p.Add(poi)

	return p, nil
}

func fitLine(l analysis.Line, xs []float64) (*plotter.Line, error) {
	ys := analysis.Predict(l, xs)
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to plot fit: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	return line, nil
}

// Save writes p to path; the format follows the file extension.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", filepath.Base(path), err)
	}
	return nil
}

// WritePNG renders p as PNG into w.
func WritePNG(p *plot.Plot, w io.Writer) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

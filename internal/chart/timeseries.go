// Package chart renders the study's plots with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/i474232898/weather-sea-effect/internal/weather"
)

var (
	green  = color.RGBA{G: 128, A: 255}
	red    = color.RGBA{R: 220, A: 255}
	blue   = color.RGBA{B: 220, A: 255}
	purple = color.RGBA{R: 128, B: 128, A: 255}
)

// Group is a set of cities drawn in one color under one legend entry.
type Group struct {
	Label  string
	Color  color.Color
	Cities []string
}

// SeaGroups returns the close-to-sea (green) and far-from-sea (red) groups.
func SeaGroups(coastal, inland []string) []Group {
	return []Group{
		{Label: "Close to sea", Color: green, Cities: coastal},
		{Label: "Far from sea", Color: red, Cities: inland},
	}
}

// SlotTicks labels the SlotsPerDay positions "0:00", "3:00", ... "21:00".
func SlotTicks() []plot.Tick {
	ticks := make([]plot.Tick, weather.SlotsPerDay)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("%d:00", weather.HourBoundaries[i]/100)}
	}
	return ticks
}

// TimeSeries plots the intraday series of m on the given day for every
// city in groups. Each group gets a single legend entry.
func TimeSeries(ds weather.Dataset, groups []Group, m weather.Measurement, day int, title, yLabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.ConstantTicks(SlotTicks())
	p.X.Tick.Label.Rotation = -math.Pi / 4
	p.Add(plotter.NewGrid())

	for _, g := range groups {
		for i, city := range g.Cities {
			rec, err := ds.Day(city, day)
			if err != nil {
				return nil, err
			}
			series, err := rec.Series(m)
			if err != nil {
				return nil, err
			}

			pts := make(plotter.XYs, len(series))
			for slot, v := range series {
				pts[slot].X = float64(slot)
				pts[slot].Y = v
			}

			line, err := plotter.NewLine(pts)
			if err != nil {
				return nil, fmt.Errorf("failed to plot %s: %w", city, err)
			}
			line.LineStyle.Color = g.Color
			line.LineStyle.Width = vg.Points(1.5)
			p.Add(line)

			if i == 0 {
				p.Legend.Add(g.Label, line)
			}
		}
	}

	return p, nil
}

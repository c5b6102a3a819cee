// Package report produces the study's fixed set of plots.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"

	"github.com/i474232898/weather-sea-effect/internal/analysis"
	"github.com/i474232898/weather-sea-effect/internal/chart"
	"github.com/i474232898/weather-sea-effect/internal/config"
	"github.com/i474232898/weather-sea-effect/internal/logger"
	"github.com/i474232898/weather-sea-effect/internal/weather"
)

// DatasetSource builds a fresh dataset for every analysis.
type DatasetSource interface {
	BuildDataset() (weather.Dataset, error)
}

// Kind is the chart type of a PlotSpec.
type Kind string

const (
	TimeSeries Kind = "timeseries"
	Extremes   Kind = "extremes"
)

// PlotSpec describes one chart of the run.
type PlotSpec struct {
	Kind        Kind
	Measurement weather.Measurement
	Extreme     analysis.Extreme
	Title       string
	YLabel      string
}

// FileName is the output file name of the spec.
func (s PlotSpec) FileName() string {
	if s.Kind == Extremes {
		return fmt.Sprintf("%s_%s_%s.png", s.Measurement, s.Extreme, s.Kind)
	}
	return fmt.Sprintf("%s_%s.png", s.Measurement, s.Kind)
}

// DefaultPlots returns the fixed analysis sequence.
func DefaultPlots() []PlotSpec {
	return []PlotSpec{
		{Kind: TimeSeries, Measurement: weather.Temperature, Title: "Temperature of Six Cities\n3 far from sea and 3 close", YLabel: "Temp in C"},
		{Kind: Extremes, Measurement: weather.Temperature, Extreme: analysis.Max, Title: "Max Temperature of 10 cities", YLabel: "Temp in C"},
		{Kind: Extremes, Measurement: weather.Temperature, Extreme: analysis.Min, Title: "Min Temperature of 10 cities", YLabel: "Temp in C"},
		{Kind: TimeSeries, Measurement: weather.Humidity, Title: "Humidity of Six Cities\n3 far from sea and 3 close", YLabel: "Humidity"},
		{Kind: Extremes, Measurement: weather.Humidity, Extreme: analysis.Max, Title: "Max Humidity of 10 cities", YLabel: "Humidity"},
		{Kind: Extremes, Measurement: weather.Humidity, Extreme: analysis.Min, Title: "Min Humidity of 10 cities", YLabel: "Humidity"},
	}
}

// Analyzer turns a dataset into fits and plots according to the study.
type Analyzer struct {
	source DatasetSource
	study  *config.Study
	metric weather.DistanceMetric
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(source DatasetSource, study *config.Study, metric weather.DistanceMetric) *Analyzer {
	return &Analyzer{source: source, study: study, metric: metric}
}

// Study returns the study the analyzer works on.
func (a *Analyzer) Study() *config.Study {
	return a.study
}

// Dataset builds a fresh dataset.
func (a *Analyzer) Dataset() (weather.Dataset, error) {
	return a.source.BuildDataset()
}

func (a *Analyzer) fitter() analysis.Fitter {
	return analysis.Fitter{
		Buckets: analysis.Buckets{NearBelow: a.study.Buckets.NearBelow, FarAbove: a.study.Buckets.FarAbove},
		SVR:     analysis.LinearSVR{C: a.study.SVR.C, Epsilon: a.study.SVR.Epsilon},
		Guess:   0,
	}
}

// Fit computes the extremes fit of m on ds.
func (a *Analyzer) Fit(ds weather.Dataset, m weather.Measurement, e analysis.Extreme) (analysis.ExtremesFit, error) {
	ref, _ := a.study.City(a.study.Reference)
	points, err := analysis.CityExtremes(ds, a.study.Cities, ref, a.metric, m, a.study.DayIndex)
	if err != nil {
		return analysis.ExtremesFit{}, err
	}
	fit, err := a.fitter().Fit(points, e)
	if err != nil {
		return analysis.ExtremesFit{}, fmt.Errorf("%s %s: %w", e, m, err)
	}
	return fit, nil
}

// Plot renders spec on ds.
func (a *Analyzer) Plot(ds weather.Dataset, spec PlotSpec) (*plot.Plot, error) {
	switch spec.Kind {
	case TimeSeries:
		groups := chart.SeaGroups(a.study.CloseToSea, a.study.FarFromSea)
		return chart.TimeSeries(ds, groups, spec.Measurement, a.study.DayIndex, spec.Title, spec.YLabel)
	case Extremes:
		fit, err := a.Fit(ds, spec.Measurement, spec.Extreme)
		if err != nil {
			return nil, err
		}
		logger.With(logrus.Fields{
			"measurement":    spec.Measurement,
			"extreme":        spec.Extreme,
			"near_slope":     fit.Near.Slope,
			"near_intercept": fit.Near.Intercept,
			"far_slope":      fit.Far.Slope,
			"far_intercept":  fit.Far.Intercept,
			"poi_x":          fit.Intersection.X,
			"poi_y":          fit.Intersection.Y,
		}).Info("fitted extremes")
		return chart.Extremes(fit, spec.Title, spec.YLabel)
	default:
		return nil, fmt.Errorf("unknown plot kind %q", spec.Kind)
	}
}

// Runner writes every plot of a run into a directory.
type Runner struct {
	analyzer *Analyzer
	outDir   string
	plots    []PlotSpec
}

// NewRunner creates a Runner for DefaultPlots.
func NewRunner(analyzer *Analyzer, outDir string) *Runner {
	return &Runner{analyzer: analyzer, outDir: outDir, plots: DefaultPlots()}
}

// Run builds the dataset once and renders every plot, stopping at the first error.
// It returns the written file paths.
func (r *Runner) Run(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	ds, err := r.analyzer.Dataset()
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset: %w", err)
	}

	written := make([]string, 0, len(r.plots))
	for _, spec := range r.plots {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		p, err := r.analyzer.Plot(ds, spec)
		if err != nil {
			return written, fmt.Errorf("plot %s: %w", spec.FileName(), err)
		}

		path := filepath.Join(r.outDir, spec.FileName())
		if err := chart.Save(p, path); err != nil {
			return written, err
		}
		logger.With(logrus.Fields{"file": path}).Info("wrote plot")
		written = append(written, path)
	}
	return written, nil
}

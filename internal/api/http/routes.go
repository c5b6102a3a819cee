package httpapi

import (
	"bytes"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-sea-effect/internal/analysis"
	"github.com/i474232898/weather-sea-effect/internal/chart"
	"github.com/i474232898/weather-sea-effect/internal/common"
	"github.com/i474232898/weather-sea-effect/internal/report"
	"github.com/i474232898/weather-sea-effect/internal/store"
	"github.com/i474232898/weather-sea-effect/internal/weather"
)

var validate = newValidator()

// newValidator registers the "measurement" tag, which accepts the plottable
// measurements of the weather package.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("measurement", func(fl validator.FieldLevel) bool {
		return weather.Measurement(fl.Field().String()).Numeric()
	})
	return v
}

// ErrorHandler renders every error as a JSON body with its status code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, analyzer *report.Analyzer) {
	v1 := app.Group("/api/v1")

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(analyzer.Study().Cities)
	})

	v1.Get("/cities/:city/days", func(c *fiber.Ctx) error {
		city := common.CanonicalCity(c.Params("city"))
		if _, ok := analyzer.Study().City(city); !ok {
			return fiber.NewError(fiber.StatusNotFound, "unknown city")
		}

		ds, err := analyzer.Dataset()
		if err != nil {
			return datasetError(err)
		}

		return c.JSON(fiber.Map{
			"city": city,
			"days": ds[city],
		})
	})

	v1.Get("/extremes", func(c *fiber.Ctx) error {
		var q extremesQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ds, err := analyzer.Dataset()
		if err != nil {
			return datasetError(err)
		}

		fit, err := analyzer.Fit(ds, q.measurement(), q.extreme())
		if err != nil {
			return fitError(err)
		}
		return c.JSON(fit)
	})

	v1.Get("/charts/timeseries", func(c *fiber.Ctx) error {
		q := measurementQuery{Measurement: c.Query("measurement")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		spec := report.PlotSpec{
			Kind:        report.TimeSeries,
			Measurement: weather.Measurement(q.Measurement),
			Title:       q.Measurement + " of six cities",
			YLabel:      q.Measurement,
		}
		return renderPNG(c, analyzer, spec)
	})

	v1.Get("/charts/extremes", func(c *fiber.Ctx) error {
		var q extremesQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		spec := report.PlotSpec{
			Kind:        report.Extremes,
			Measurement: q.measurement(),
			Extreme:     q.extreme(),
			Title:       q.Extreme + " " + q.Measurement + " of all cities",
			YLabel:      q.Measurement,
		}
		return renderPNG(c, analyzer, spec)
	})
}

func renderPNG(c *fiber.Ctx, analyzer *report.Analyzer, spec report.PlotSpec) error {
	ds, err := analyzer.Dataset()
	if err != nil {
		return datasetError(err)
	}

	p, err := analyzer.Plot(ds, spec)
	if err != nil {
		return fitError(err)
	}

	var buf bytes.Buffer
	if err := chart.WritePNG(p, &buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

func datasetError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "no cached weather data; run fetch first")
	}
	if errors.Is(err, weather.ErrMalformedRecord) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to build dataset")
}

func fitError(err error) error {
	if errors.Is(err, analysis.ErrFitDegenerate) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

// measurementQuery holds the measurement query parameter.
type measurementQuery struct {
	Measurement string `validate:"required,measurement"`
}

// extremesQuery holds query parameters for the extremes endpoints.
type extremesQuery struct {
	Measurement string `validate:"required,measurement"`
	Extreme     string `validate:"required,oneof=max min"`
}

func (q *extremesQuery) bind(c *fiber.Ctx) error {
	q.Measurement = c.Query("measurement")
	q.Extreme = c.Query("extreme", string(analysis.Max))
	return validate.Struct(q)
}

func (q extremesQuery) measurement() weather.Measurement {
	return weather.Measurement(q.Measurement)
}

func (q extremesQuery) extreme() analysis.Extreme {
	return analysis.Extreme(q.Extreme)
}

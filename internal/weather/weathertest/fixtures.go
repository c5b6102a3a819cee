// Package weathertest builds synthetic archive data for tests.
package weathertest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/i474232898/weather-sea-effect/internal/config"
	"github.com/i474232898/weather-sea-effect/internal/weather"
)

// Window is the study's default 20-day window.
var Window = weather.DateRange{
	Start: time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2019, 7, 20, 0, 0, 0, 0, time.UTC),
}

// Reading holds the numeric values of one synthetic hourly entry.
type Reading struct {
	TempC     float64
	Humidity  float64
	Pressure  float64
	WindKmph  float64
	WindDeg   float64
	Condition string
}

// Hourly converts r into the archive's string-valued form.
func (r Reading) Hourly(slot int) weather.RawHourly {
	cond := r.Condition
	if cond == "" {
		cond = "Partly cloudy"
	}
	return weather.RawHourly{
		Time:          strconv.Itoa(slot * 300),
		TempC:         format(r.TempC),
		Humidity:      format(r.Humidity),
		Pressure:      format(r.Pressure),
		WeatherDesc:   []weather.TextItem{{Value: cond}},
		WindspeedKmph: format(r.WindKmph),
		WinddirDegree: format(r.WindDeg),
	}
}

// Days builds n days of 8 slots each, taking values from gen.
func Days(n int, avgTemp string, gen func(day, slot int) Reading) []weather.RawDay {
	days := make([]weather.RawDay, 0, n)
	for d := 0; d < n; d++ {
		day := weather.RawDay{
			Date:     Window.Start.AddDate(0, 0, d).Format("2006-01-02"),
			AvgTempC: avgTemp,
		}
		for s := 0; s < weather.SlotsPerDay; s++ {
			day.Hourly = append(day.Hourly, gen(d, s).Hourly(s))
		}
		days = append(days, day)
	}
	return days
}

// Constant builds n days where every slot carries r.
func Constant(n int, avgTemp string, r Reading) []weather.RawDay {
	return Days(n, avgTemp, func(int, int) Reading { return r })
}

// Cities is the city table of the embedded study, in table order.
func Cities() []weather.City {
	study, err := config.DefaultStudy()
	if err != nil {
		panic(fmt.Sprintf("weathertest: embedded study: %v", err))
	}
	return study.Cities
}

// SeaEffect builds a city's days so that temperature and humidity follow
// a steep coastal trend below 100 km and a shallow inland trend above it.
// Readings swing by +-1 around the trend during the day.
func SeaEffect(c weather.City) []weather.RawDay {
	d := float64(c.DistanceKm)
	temp := 30 - 0.005*d
	hum := 70 - 0.02*d
	if c.DistanceKm < 100 {
		temp = 29 + 0.01*d
		hum = 80 - 0.05*d
	}
	return Days(Window.Days(), format(temp), func(_, slot int) Reading {
		swing := float64(slot%3 - 1)
		return Reading{
			TempC:    temp + swing,
			Humidity: hum + swing,
			Pressure: 1008,
			WindKmph: 12,
			WindDeg:  240,
		}
	})
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

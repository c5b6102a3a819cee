package weather

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Reshape converts a city's raw archive days into day records. Every day must
// carry exactly SlotsPerDay hourly readings with numeric values; anything else
// yields an error wrapping ErrMalformedRecord.
func Reshape(raw []RawDay) ([]DayRecord, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no days", ErrMalformedRecord)
	}

	records := make([]DayRecord, 0, len(raw))
	for i, day := range raw {
		rec, err := reshapeDay(day)
		if err != nil {
			return nil, fmt.Errorf("day %d (%s): %w", i, day.Date, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func reshapeDay(day RawDay) (DayRecord, error) {
	if len(day.Hourly) != SlotsPerDay {
		return DayRecord{}, fmt.Errorf("%w: %d hourly entries, want %d", ErrMalformedRecord, len(day.Hourly), SlotsPerDay)
	}
	if err := validate.Struct(day); err != nil {
		return DayRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	rec := DayRecord{
		AvgTempC:           day.AvgTempC,
		Temperature:        make([]float64, 0, SlotsPerDay),
		Humidity:           make([]float64, 0, SlotsPerDay),
		Pressure:           make([]float64, 0, SlotsPerDay),
		WeatherDescription: make([]string, 0, SlotsPerDay),
		WindSpeed:          make([]float64, 0, SlotsPerDay),
		WindDegree:         make([]float64, 0, SlotsPerDay),
		Hour:               HourBoundaries,
	}

	for slot, h := range day.Hourly {
		vals, err := parseFloats(h.TempC, h.Humidity, h.Pressure, h.WindspeedKmph, h.WinddirDegree)
		if err != nil {
			return DayRecord{}, fmt.Errorf("%w: slot %d: %v", ErrMalformedRecord, slot, err)
		}
		rec.Temperature = append(rec.Temperature, vals[0])
		rec.Humidity = append(rec.Humidity, vals[1])
		rec.Pressure = append(rec.Pressure, vals[2])
		rec.WindSpeed = append(rec.WindSpeed, vals[3])
		rec.WindDegree = append(rec.WindDegree, vals[4])
		rec.WeatherDescription = append(rec.WeatherDescription, h.WeatherDesc[0].Value)
	}

	return rec, nil
}

func parseFloats(values ...string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

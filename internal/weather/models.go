package weather

import (
	"fmt"
	"time"
)

// SlotsPerDay is the number of 3-hourly readings the archive returns per day.
const SlotsPerDay = 8

// HourBoundaries are the slot edges in the archive's "hhmm" notation. They are
// only used as axis labels.
var HourBoundaries = [SlotsPerDay + 1]int{0, 300, 600, 900, 1200, 1500, 1800, 2100, 2400}

// Measurement names one per-slot series of a DayRecord.
type Measurement string

const (
	Temperature        Measurement = "temperature"
	Humidity           Measurement = "humidity"
	Pressure           Measurement = "pressure"
	WeatherDescription Measurement = "weather_description"
	WindSpeed          Measurement = "wind_speed"
	WindDegree         Measurement = "wind_degree"
)

// NumericMeasurements lists the measurements that can be plotted.
func NumericMeasurements() []Measurement {
	return []Measurement{Temperature, Humidity, Pressure, WindSpeed, WindDegree}
}

// Numeric reports whether m has a numeric series.
func (m Measurement) Numeric() bool {
	for _, n := range NumericMeasurements() {
		if m == n {
			return true
		}
	}
	return false
}

// City is one location of the study with its fixed road distance from the
// reference city.
type City struct {
	Name       string  `json:"name" yaml:"name" validate:"required"`
	DistanceKm int     `json:"distanceKm" yaml:"distance_km" validate:"gte=0"`
	Lat        float64 `json:"lat" yaml:"lat" validate:"latitude"`
	Lon        float64 `json:"lon" yaml:"lon" validate:"longitude"`
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// StartDate formats Start the way the archive API expects.
func (r DateRange) StartDate() string {
	return r.Start.Format("2006-01-02")
}

// EndDate formats End the way the archive API expects.
func (r DateRange) EndDate() string {
	return r.End.Format("2006-01-02")
}

// RawDay mirrors one entry of the archive's data.weather list. Numbers are
// transmitted as strings and are kept that way until reshaping.
type RawDay struct {
	Date     string      `json:"date"`
	AvgTempC string      `json:"avgtempC"`
	MaxTempC string      `json:"maxtempC,omitempty"`
	MinTempC string      `json:"mintempC,omitempty"`
	Hourly   []RawHourly `json:"hourly" validate:"len=8,dive"`
}

// RawHourly is one 3-hourly reading of a RawDay.
type RawHourly struct {
	Time          string     `json:"time,omitempty"`
	TempC         string     `json:"tempC" validate:"required,numeric"`
	Humidity      string     `json:"humidity" validate:"required,numeric"`
	Pressure      string     `json:"pressure" validate:"required,numeric"`
	WeatherDesc   []TextItem `json:"weatherDesc" validate:"min=1"`
	WindspeedKmph string     `json:"windspeedKmph" validate:"required,numeric"`
	WinddirDegree string     `json:"winddirDegree" validate:"required,numeric"`
}

// TextItem is the archive's {"value": "..."} wrapper.
type TextItem struct {
	Value string `json:"value"`
}

// DayRecord is one day of a city reshaped into parallel per-slot series.
type DayRecord struct {
	AvgTempC           string               `json:"avgtemp"`
	Temperature        []float64            `json:"temperature"`
	Humidity           []float64            `json:"humidity"`
	Pressure           []float64            `json:"pressure"`
	WeatherDescription []string             `json:"weather_description"`
	WindSpeed          []float64            `json:"wind_speed"`
	WindDegree         []float64            `json:"wind_degree"`
	Hour               [SlotsPerDay + 1]int `json:"hour"`
}

// Series returns the numeric series for m.
func (d DayRecord) Series(m Measurement) ([]float64, error) {
	switch m {
	case Temperature:
		return d.Temperature, nil
	case Humidity:
		return d.Humidity, nil
	case Pressure:
		return d.Pressure, nil
	case WindSpeed:
		return d.WindSpeed, nil
	case WindDegree:
		return d.WindDegree, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeasurement, m)
	}
}

// Dataset maps a city name to its day records, ordered by date.
type Dataset map[string][]DayRecord

// Day returns the record of city at index day.
func (ds Dataset) Day(city string, day int) (DayRecord, error) {
	days, ok := ds[city]
	if !ok {
		return DayRecord{}, fmt.Errorf("no data for city %q", city)
	}
	if day < 0 || day >= len(days) {
		return DayRecord{}, fmt.Errorf("day %d out of range for %s (%d days)", day, city, len(days))
	}
	return days[day], nil
}

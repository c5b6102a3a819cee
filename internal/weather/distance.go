package weather

import (
	"fmt"

	"github.com/umahmood/haversine"
)

// DistanceMetric selects how a city's distance from the reference city is measured.
type DistanceMetric string

const (
	// RoadDistance uses the fixed road distances of the study table.
	RoadDistance DistanceMetric = "road"
	// GreatCircleDistance uses the haversine distance between coordinates.
	GreatCircleDistance DistanceMetric = "great-circle"
)

// DistanceFrom returns the distance in km between c and ref under metric.
func (c City) DistanceFrom(ref City, metric DistanceMetric) (float64, error) {
	switch metric {
	case RoadDistance, "":
		return float64(c.DistanceKm), nil
	case GreatCircleDistance:
		_, km := haversine.Distance(
			haversine.Coord{Lat: ref.Lat, Lon: ref.Lon},
			haversine.Coord{Lat: c.Lat, Lon: c.Lon},
		)
		return km, nil
	default:
		return 0, fmt.Errorf("unknown distance metric %q", metric)
	}
}

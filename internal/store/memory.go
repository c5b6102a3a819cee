package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/i474232898/weather-sea-effect/internal/weather"
)

var (
	// ErrNotFound is returned when no cached data is available for a city.
	ErrNotFound = errors.New("no cached weather data for city")
)

// MemoryStore is a concurrency-safe in-memory raw cache.
type MemoryStore struct {
	mu sync.RWMutex

	// key: city name
	data map[string][]weather.RawDay
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]weather.RawDay),
	}
}

// Save replaces the days stored for city with a deep copy of days.
func (s *MemoryStore) Save(city string, days []weather.RawDay) error {
	cp := cloneDays(days)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[city] = cp
	return nil
}

// Load returns a deep copy of the days stored for city.
func (s *MemoryStore) Load(city string) ([]weather.RawDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days, ok := s.data[city]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, city)
	}
	return cloneDays(days), nil
}

// Cities returns the cities with stored data.
func (s *MemoryStore) Cities() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.data))
	for c := range s.data {
		out = append(out, c)
	}
	return out
}

func cloneDays(days []weather.RawDay) []weather.RawDay {
	out := make([]weather.RawDay, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Hourly = make([]weather.RawHourly, len(d.Hourly))
		for j, h := range d.Hourly {
			out[i].Hourly[j] = h
			out[i].Hourly[j].WeatherDesc = append([]weather.TextItem(nil), h.WeatherDesc...)
		}
	}
	return out
}

var _ weather.RawStore = (*MemoryStore)(nil)

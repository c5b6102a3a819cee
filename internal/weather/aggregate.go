package weather

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-sea-effect/internal/logger"
)

// BuildDataset loads every city from the raw cache and reshapes it.
// A missing cache entry aborts the whole build; there is no live-fetch fallback.
func (s *Service) BuildDataset() (Dataset, error) {
	want := s.window.Days()
	ds := make(Dataset, len(s.cities))

	for _, c := range s.cities {
		log := logger.With(logrus.Fields{"city": c.Name})
		log.Debug("working on city")

		raw, err := s.store.Load(c.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", c.Name, err)
		}
		log.Debug("loaded data")

		records, err := Reshape(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to reshape %s: %w", c.Name, err)
		}
		if len(records) != want {
			return nil, fmt.Errorf("%w: %s has %d days, want %d", ErrMalformedRecord, c.Name, len(records), want)
		}

		ds[c.Name] = records
		log.WithField("days", len(records)).Debug("completed city")
	}

	return ds, nil
}

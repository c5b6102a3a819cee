package weather

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-sea-effect/internal/logger"
)

// Service ties the fetcher, the raw cache and the study's cities together.
type Service struct {
	store   RawStore
	fetcher Fetcher
	cities  []City
	window  DateRange
}

// NewService creates a new Service. fetcher may be nil when only cached data is used.
func NewService(store RawStore, fetcher Fetcher, cities []City, window DateRange) *Service {
	return &Service{
		store:   store,
		fetcher: fetcher,
		cities:  cities,
		window:  window,
	}
}

// Cities returns the study's cities in table order.
func (s *Service) Cities() []City {
	return s.cities
}

// Window returns the date window the service fetches and expects.
func (s *Service) Window() DateRange {
	return s.window
}

// RefreshOptions controls how Refresh reacts to a failed city.
type RefreshOptions struct {
	// SkipFailed keeps going after a fetch error instead of aborting.
	SkipFailed bool
}

// RefreshReport lists the outcome of a Refresh.
type RefreshReport struct {
	Saved  []string
	Failed map[string]error
}

// RefreshCity fetches one city and overwrites its cache entry.
// Nothing is written when the fetch fails.
func (s *Service) RefreshCity(ctx context.Context, city string) error {
	if s.fetcher == nil {
		return fmt.Errorf("no weather fetcher configured")
	}

	days, err := s.fetcher.FetchHistory(ctx, city, s.window)
	if err != nil {
		return err
	}
	if err := s.store.Save(city, days); err != nil {
		return fmt.Errorf("failed to cache %s: %w", city, err)
	}
	return nil
}

// Refresh fetches every city one after the other and caches the results.
func (s *Service) Refresh(ctx context.Context, opts RefreshOptions) (RefreshReport, error) {
	report := RefreshReport{Failed: make(map[string]error)}

	for _, c := range s.cities {
		log := logger.With(logrus.Fields{"city": c.Name})
		log.Debug("fetching history")

		err := s.RefreshCity(ctx, c.Name)
		if err == nil {
			report.Saved = append(report.Saved, c.Name)
			log.Info("cached history")
			continue
		}

		report.Failed[c.Name] = err
		var fe *FetchError
		if errors.As(err, &fe) {
			log = log.WithField("kind", fe.Kind)
		}
		log.WithError(err).Warn("refresh failed")

		if !opts.SkipFailed || !errors.Is(err, ErrFetchFailed) {
			return report, fmt.Errorf("refresh aborted at %s: %w", c.Name, err)
		}
	}

	return report, nil
}

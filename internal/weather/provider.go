package weather

import (
	"context"
)

//go:generate mockgen -source=provider.go -destination=mock/mock.go -package=mock

// Fetcher retrieves a city's raw archive days for a date window.
type Fetcher interface {
	Name() string
	FetchHistory(ctx context.Context, city string, window DateRange) ([]RawDay, error)
}

// RawStore is the contract the file cache (and the in-memory store) must satisfy.
type RawStore interface {
	Save(city string, days []RawDay) error
	Load(city string) ([]RawDay, error)
}

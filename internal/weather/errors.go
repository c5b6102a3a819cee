package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed is matched by every *FetchError.
	ErrFetchFailed = errors.New("weather fetch failed")
	// ErrMalformedRecord is returned when raw data does not have the expected shape.
	ErrMalformedRecord = errors.New("malformed day record")
	// ErrUnknownMeasurement is returned for a measurement with no numeric series.
	ErrUnknownMeasurement = errors.New("unknown measurement")
)

// FetchKind classifies why a fetch failed.
type FetchKind string

const (
	FetchNetwork     FetchKind = "network"
	FetchStatus      FetchKind = "status"
	FetchDecode      FetchKind = "decode"
	FetchAPI         FetchKind = "api"
	FetchCircuitOpen FetchKind = "circuit-open"
)

// FetchError describes a failed archive request for one city.
type FetchError struct {
	City       string
	Kind       FetchKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: %s %d: %v", e.City, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.City, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports ErrFetchFailed as a match so callers need not know the concrete type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-sea-effect/internal/weather"
)

// DefaultWorldWeatherURL is the past-weather endpoint of World Weather Online.
const DefaultWorldWeatherURL = "https://api.worldweatheronline.com/premium/v1/past-weather.ashx"

// WorldWeatherOptions configures a WorldWeatherProvider.
type WorldWeatherOptions struct {
	BaseURL    string
	APIKey     string
	MaxRetries int
	// RatePerSecond caps outbound requests; 0 disables the limiter.
	RatePerSecond float64
	// TripAfter is the number of consecutive failures that opens the circuit.
	// Set it above the city count so a full refresh tries every city.
	TripAfter uint32
}

// DefaultTripAfter is used when TripAfter is zero.
const DefaultTripAfter = 20

// WorldWeatherProvider implements weather.Fetcher for the World Weather Online archive.
type WorldWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWorldWeatherProvider(client *http.Client, opts WorldWeatherOptions) *WorldWeatherProvider {
	tripAfter := opts.TripAfter
	if tripAfter == 0 {
		tripAfter = DefaultTripAfter
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "worldweatheronline",
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
	})

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultWorldWeatherURL
	}

	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1)
	}

	return &WorldWeatherProvider{
		name:    "worldweatheronline",
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      opts.MaxRetries,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
			Limiter: limiter,
		},
		circuit: cb,
	}
}

func (p *WorldWeatherProvider) Name() string {
	return p.name
}

// pastWeatherResponse is the envelope of the past-weather endpoint. Errors are
// reported with HTTP 200 and a data.error list.
type pastWeatherResponse struct {
	Data struct {
		Error []struct {
			Msg string `json:"msg"`
		} `json:"error"`
		Weather []weather.RawDay `json:"weather"`
	} `json:"data"`
}

// FetchHistory returns the data.weather list for city over window.
func (p *WorldWeatherProvider) FetchHistory(ctx context.Context, city string, window weather.DateRange) ([]weather.RawDay, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("world weather online api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", city)
		values.Set("format", "json")
		values.Set("date", window.StartDate())
		values.Set("enddate", window.EndDate())
		values.Set("tp", "3")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, city, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload pastWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &weather.FetchError{City: city, Kind: weather.FetchDecode, Err: err}
	}

	if len(payload.Data.Error) > 0 {
		msgs := make([]string, 0, len(payload.Data.Error))
		for _, e := range payload.Data.Error {
			msgs = append(msgs, e.Msg)
		}
		return nil, &weather.FetchError{City: city, Kind: weather.FetchAPI, Err: errors.New(strings.Join(msgs, "; "))}
	}
	if len(payload.Data.Weather) == 0 {
		return nil, &weather.FetchError{City: city, Kind: weather.FetchDecode, Err: errors.New("response has no weather entries")}
	}

	return payload.Data.Weather, nil
}

var _ weather.Fetcher = (*WorldWeatherProvider)(nil)

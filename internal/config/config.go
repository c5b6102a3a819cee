package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-sea-effect/internal/logger"
	"github.com/i474232898/weather-sea-effect/internal/weather"
)

var validate = validator.New()

type AppConfig struct {
	APIKey  string
	BaseURL string `validate:"required,url"`

	// Archive window, inclusive.
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
	Window    weather.DateRange

	CacheDir  string `validate:"required"`
	OutputDir string `validate:"required"`

	// HTTPTimeout of 0 keeps the http.Client default (no timeout).
	HTTPTimeout     time.Duration `validate:"gte=0"`
	FetchMaxRetries int           `validate:"gte=0"`
	FetchRatePerSec float64       `validate:"gte=0"`

	RefreshInterval time.Duration `validate:"gt=0"`
	Port            string        `validate:"required,numeric"`
	LogLevel        string        `validate:"oneof=trace debug info warn warning error"`
	DistanceMetric  string        `validate:"oneof=road great-circle"`

	Study *Study
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug(fmt.Sprintf("no .env file found or error loading it: %v", err))
	}
	cfg := &AppConfig{}

	cfg.APIKey = os.Getenv("WWO_API_KEY")
	cfg.BaseURL = getenvDefault("WWO_BASE_URL", "https://api.worldweatheronline.com/premium/v1/past-weather.ashx")
	cfg.StartDate = getenvDefault("WINDOW_START", "2019-07-01")
	cfg.EndDate = getenvDefault("WINDOW_END", "2019-07-20")
	cfg.CacheDir = getenvDefault("CACHE_DIR", ".")
	cfg.OutputDir = getenvDefault("OUTPUT_DIR", "plots")
	cfg.FetchMaxRetries = getenvInt("FETCH_MAX_RETRIES", 0)
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.DistanceMetric = getenvDefault("DISTANCE_METRIC", string(weather.RoadDistance))

	rps, err := strconv.ParseFloat(getenvDefault("FETCH_RATE_PER_SEC", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_RATE_PER_SEC: %w", err)
	}
	cfg.FetchRatePerSec = rps

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	window, err := parseWindow(cfg.StartDate, cfg.EndDate)
	if err != nil {
		return nil, err
	}
	cfg.Window = window

	study, err := loadStudy(os.Getenv("STUDY_FILE"))
	if err != nil {
		return nil, err
	}
	cfg.Study = study

	return cfg, nil
}

// RequireAPIKey reports whether live fetching is possible.
func (c *AppConfig) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("WWO_API_KEY is required to fetch weather history")
	}
	return nil
}

func parseWindow(start, end string) (weather.DateRange, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return weather.DateRange{}, fmt.Errorf("invalid WINDOW_START: %w", err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return weather.DateRange{}, fmt.Errorf("invalid WINDOW_END: %w", err)
	}
	if e.Before(s) {
		return weather.DateRange{}, fmt.Errorf("WINDOW_END %s is before WINDOW_START %s", end, start)
	}
	return weather.DateRange{Start: s, End: e}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

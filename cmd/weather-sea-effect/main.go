package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	httpapi "github.com/i474232898/weather-sea-effect/internal/api/http"
	"github.com/i474232898/weather-sea-effect/internal/config"
	"github.com/i474232898/weather-sea-effect/internal/logger"
	"github.com/i474232898/weather-sea-effect/internal/report"
	"github.com/i474232898/weather-sea-effect/internal/scheduler"
	"github.com/i474232898/weather-sea-effect/internal/store"
	"github.com/i474232898/weather-sea-effect/internal/weather"
	"github.com/i474232898/weather-sea-effect/internal/weather/providers"
)

const usage = `usage: weather-sea-effect [flags] [fetch|analyze|run|serve|schedule]

  fetch     download the archive window for every city into the cache
  analyze   render the six plots from the cache
  run       fetch, then analyze (default)
  serve     serve the cached data and charts over HTTP
  schedule  refresh and analyze every REFRESH_INTERVAL
`

func main() {
	skipFailed := flag.Bool("skip-failed", false, "keep fetching when a city fails")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	command := "run"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(err)
	}

	log := logger.With(logrus.Fields{"run_id": uuid.NewString(), "command": command})

	app, err := newApp(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialise")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch command {
	case "fetch":
		err = app.fetch(ctx, log, *skipFailed)
	case "analyze":
		err = app.analyze(ctx, log)
	case "run":
		if err = app.fetch(ctx, log, *skipFailed); err == nil {
			err = app.analyze(ctx, log)
		}
	case "serve":
		err = app.serve(ctx, log)
	case "schedule":
		err = app.schedule(ctx, log)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

type application struct {
	cfg      *config.AppConfig
	service  *weather.Service
	analyzer *report.Analyzer
	runner   *report.Runner
}

func newApp(cfg *config.AppConfig) (*application, error) {
	// Shared HTTP client for outbound archive calls.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	cache, err := store.NewFileStore(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	fetcher := providers.NewWorldWeatherProvider(httpClient, providers.WorldWeatherOptions{
		BaseURL:       cfg.BaseURL,
		APIKey:        cfg.APIKey,
		MaxRetries:    cfg.FetchMaxRetries,
		RatePerSecond: cfg.FetchRatePerSec,
		TripAfter:     uint32(len(cfg.Study.Cities)) + 1,
	})

	service := weather.NewService(cache, fetcher, cfg.Study.Cities, cfg.Window)
	analyzer := report.NewAnalyzer(service, cfg.Study, weather.DistanceMetric(cfg.DistanceMetric))

	return &application{
		cfg:      cfg,
		service:  service,
		analyzer: analyzer,
		runner:   report.NewRunner(analyzer, cfg.OutputDir),
	}, nil
}

func (a *application) fetch(ctx context.Context, log *logrus.Entry, skipFailed bool) error {
	if err := a.cfg.RequireAPIKey(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"start":  a.cfg.Window.StartDate(),
		"end":    a.cfg.Window.EndDate(),
		"cities": len(a.service.Cities()),
	}).Info("fetching weather history")

	rep, err := a.service.Refresh(ctx, weather.RefreshOptions{SkipFailed: skipFailed})
	if err != nil {
		return err
	}
	for city, ferr := range rep.Failed {
		log.WithField("city", city).WithError(ferr).Warn("skipped city")
	}
	log.WithField("saved", len(rep.Saved)).Info("fetch complete")
	return nil
}

func (a *application) analyze(ctx context.Context, log *logrus.Entry) error {
	files, err := a.runner.Run(ctx)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"plots": len(files), "dir": a.cfg.OutputDir}).Info("analysis complete")
	return nil
}

func (a *application) schedule(ctx context.Context, log *logrus.Entry) error {
	if err := a.cfg.RequireAPIKey(); err != nil {
		return err
	}

	sched := scheduler.New(a.cfg.RefreshInterval, a.service, a.runner)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	log.WithField("interval", a.cfg.RefreshInterval.String()).Info("scheduler started")
	<-ctx.Done()
	return nil
}

func (a *application) serve(ctx context.Context, log *logrus.Entry) error {
	app := fiber.New(fiber.Config{
		AppName:               "weather-sea-effect",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-sea-effect",
		})
	})

	httpapi.RegisterRoutes(app, a.analyzer)

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", a.cfg.Port).Info("listening")
		errCh <- app.Listen(":" + a.cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("fiber server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	return nil
}

package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-sea-effect/internal/logger"
	"github.com/i474232898/weather-sea-effect/internal/weather"
)

// Refresher refreshes the raw weather cache.
type Refresher interface {
	Refresh(ctx context.Context, opts weather.RefreshOptions) (weather.RefreshReport, error)
}

// Reporter renders the plots from the current cache.
type Reporter interface {
	Run(ctx context.Context) ([]string, error)
}

// Scheduler periodically refreshes the cache and regenerates the plots.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	reporter  Reporter
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. reporter may be nil to only refresh the cache.
func New(interval time.Duration, refresher Refresher, reporter Reporter) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		reporter:  reporter,
		interval:  interval,
		timeout:   10 * time.Minute,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 24 * 60
	}

	if _, err := s.scheduler.Every(minutes).Minutes().Do(s.RunOnce); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce performs a single refresh followed by a report.
// Failed cities are skipped so one bad city does not stall the schedule.
func (s *Scheduler) RunOnce() {
	log := logger.With(logrus.Fields{"job": "refresh", "run_id": uuid.NewString()})
	log.Info("scheduler: running refresh job")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rep, err := s.refresher.Refresh(ctx, weather.RefreshOptions{SkipFailed: true})
	if err != nil {
		log.WithError(err).Error("scheduler: refresh failed")
		return
	}
	log = log.WithFields(logrus.Fields{"saved": len(rep.Saved), "failed": len(rep.Failed)})

	if s.reporter == nil {
		log.Info("scheduler: completed refresh job")
		return
	}

	files, err := s.reporter.Run(ctx)
	if err != nil {
		log.WithError(err).Error("scheduler: report failed")
		return
	}
	log.WithField("plots", len(files)).Info("scheduler: completed refresh job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

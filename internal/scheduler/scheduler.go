package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/service"
)

// SlateRunner forecasts a batch of fixtures
type SlateRunner interface {
	Forecast(ctx context.Context, matches []models.Match) ([]service.MatchForecast, error)
}

// FixtureSource returns the fixtures to forecast on each run
type FixtureSource func() []models.Match

// Scheduler manages scheduled slate refresh jobs
type Scheduler struct {
	cron            *cron.Cron
	runner          SlateRunner
	logger          *logrus.Entry
	mu              sync.RWMutex
	isRunning       bool
	jobIDs          []cron.EntryID
	runTimeout      time.Duration
	gracefulTimeout time.Duration
}

// NewScheduler creates a new scheduler. Overlapping runs of the same job
// are skipped.
func NewScheduler(runner SlateRunner, log *logrus.Logger) *Scheduler {
	entry := log.WithField("component", "scheduler")
	cl := cronLogger{entry}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		runner:          runner,
		logger:          entry,
		jobIDs:          make([]cron.EntryID, 0),
		runTimeout:      5 * time.Minute,
		gracefulTimeout: 30 * time.Second,
	}
}

// ScheduleSlateRefresh schedules a forecast of the fixtures returned by
// fixtures on the standard five field cron expression.
func (s *Scheduler) ScheduleSlateRefresh(cronExpression string, fixtures FixtureSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return errors.New("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
		defer cancel()

		if err := s.refresh(ctx, fixtures()); err != nil {
			s.logger.WithError(err).Error("Scheduled slate refresh failed")
		}
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("Scheduled slate refresh job")

	return nil
}

// RunNow forecasts fixtures immediately, outside the cron schedule
func (s *Scheduler) RunNow(ctx context.Context, fixtures []models.Match) error {
	return s.refresh(ctx, fixtures)
}

func (s *Scheduler) refresh(ctx context.Context, fixtures []models.Match) error {
	if len(fixtures) == 0 {
		s.logger.Debug("No fixtures to forecast")
		return nil
	}
	forecasts, err := s.runner.Forecast(ctx, fixtures)
	s.logger.WithFields(logrus.Fields{
		"fixtures":  len(fixtures),
		"forecasts": len(forecasts),
	}).Info("Slate refresh completed")
	return err
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return errors.New("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return errors.New("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")

	return nil
}

// Stop stops the scheduler, waiting up to the graceful timeout for running
// jobs to finish
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.gracefulTimeout)
	defer cancel()

	s.isRunning = false
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() && !entry.Next.IsZero() {
			if nextRun.IsZero() || entry.Next.Before(nextRun) {
				nextRun = entry.Next
			}
		}
	}

	return nextRun
}

// Entries returns information about scheduled entries
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]cron.Entry, 0, len(s.jobIDs))
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			entries = append(entries, entry)
		}
	}

	return entries
}

// cronLogger routes cron's own logging through logrus
type cronLogger struct {
	entry *logrus.Entry
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.entry.WithError(err).WithFields(fields(keysAndValues)).Error(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return f
}

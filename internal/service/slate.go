package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/matchcast/internal/ensemble"
	"github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/models"
)

// MatchForecast is the complete forecast of one fixture
type MatchForecast struct {
	RunID       uuid.UUID                       `json:"run_id"`
	Match       models.Match                    `json:"match"`
	Predictions map[string]models.Prediction    `json:"predictions"`
	Ensemble    ensemble.Combination            `json:"ensemble"`
	Markets     *models.BettingMarketPrediction `json:"markets"`
	GeneratedAt time.Time                       `json:"generated_at"`
}

// SlateService forecasts batches of fixtures and serves the latest results
type SlateService struct {
	predictor   *PredictionService
	cache       *ForecastCache
	maxParallel int

	mu      sync.RWMutex
	ready   bool
	lastRun time.Time

	log        *logrus.Logger
	predLogger *logger.PredictionLogger
}

// NewSlateService creates a slate service. maxParallel bounds the number of
// fixtures forecast at once.
func NewSlateService(predictor *PredictionService, cache *ForecastCache, maxParallel int, log *logrus.Logger) *SlateService {
	if maxParallel <= 0 {
		maxParallel = 1
	}
	if log == nil {
		log = logger.Discard()
	}
	return &SlateService{
		predictor:   predictor,
		cache:       cache,
		maxParallel: maxParallel,
		log:         log,
		predLogger:  logger.NewPredictionLogger(log),
	}
}

// Forecast predicts every fixture and derives its markets from the
// ensemble. Successful forecasts are cached even when others fail; the
// returned slice is ordered by kickoff.
func (s *SlateService) Forecast(ctx context.Context, matches []models.Match) ([]MatchForecast, error) {
	start := time.Now()
	runID := uuid.New()

	results := make([]*MatchForecast, len(matches))
	errs := make([]error, len(matches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)
	for i, match := range matches {
		i, match := i, match
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			f, err := s.forecastOne(gctx, runID, match)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", match, err)
				return nil
			}
			s.cache.Set(f)
			results[i] = f
			return nil
		})
	}
	_ = g.Wait()
	if n := s.evictDropped(matches); n > 0 {
		s.log.WithField("evicted", n).Debug("Dropped forecasts of fixtures no longer on the slate")
	}

	out := make([]MatchForecast, 0, len(matches))
	failed := 0
	for i := range matches {
		if errs[i] != nil {
			failed++
			s.log.WithError(errs[i]).WithField("match_id", matches[i].ID.String()).Warn("Fixture forecast failed")
			continue
		}
		out = append(out, *results[i])
	}
	sortForecasts(out)

	elapsed := time.Since(start)
	status := metrics.StatusSuccess
	if failed > 0 {
		status = metrics.StatusError
	}
	metrics.RecordSlateRefresh(status, elapsed.Seconds())
	metrics.UpdateSlateSize(len(out))
	s.predLogger.LogSlateRefresh(runID.String(), len(matches), failed, float64(elapsed.Milliseconds()))

	s.mu.Lock()
	s.ready = true
	s.lastRun = start
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, errors.Join(errs...)
}

// evictDropped removes cached forecasts of fixtures missing from matches
func (s *SlateService) evictDropped(matches []models.Match) int {
	current := make(map[uuid.UUID]struct{}, len(matches))
	for _, m := range matches {
		current[m.ID] = struct{}{}
	}
	evicted := 0
	for _, f := range s.cache.Items() {
		if _, ok := current[f.Match.ID]; !ok {
			s.cache.Invalidate(f.Match.ID)
			evicted++
		}
	}
	return evicted
}

func (s *SlateService) forecastOne(ctx context.Context, runID uuid.UUID, match models.Match) (*MatchForecast, error) {
	res, err := s.predictor.Predict(ctx, Request{Match: match})
	if err != nil {
		return nil, err
	}
	mk, err := s.predictor.DeriveMarkets(ctx, match, res.Ensemble.Prediction)
	if err != nil {
		return nil, err
	}
	return &MatchForecast{
		RunID:       runID,
		Match:       match,
		Predictions: res.Predictions,
		Ensemble:    res.Ensemble,
		Markets:     mk,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Get returns the cached forecast of a fixture
func (s *SlateService) Get(matchID uuid.UUID) (*MatchForecast, bool) {
	return s.cache.Get(matchID)
}

// All returns every cached forecast ordered by kickoff
func (s *SlateService) All() []MatchForecast {
	items := s.cache.Items()
	out := make([]MatchForecast, len(items))
	for i, f := range items {
		out[i] = *f
	}
	sortForecasts(out)
	return out
}

// Ready reports whether at least one slate run has completed
func (s *SlateService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// LastRun returns the start time of the most recent slate run
func (s *SlateService) LastRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// CacheStats returns the forecast cache statistics
func (s *SlateService) CacheStats() CacheStats {
	return s.cache.Stats()
}

func sortForecasts(fs []MatchForecast) {
	sort.SliceStable(fs, func(i, j int) bool {
		a, b := fs[i].Match, fs[j].Match
		if !a.Kickoff.Equal(b.Kickoff) {
			return a.Kickoff.Before(b.Kickoff)
		}
		return a.HomeTeam < b.HomeTeam
	})
}

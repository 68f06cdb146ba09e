// Package service exposes the prediction engine: per-model and ensemble
// predictions, derived betting markets, insight extraction and batch slate
// forecasting.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/matchcast/internal/ensemble"
	"github.com/yourusername/matchcast/internal/insights"
	"github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/marketdata"
	"github.com/yourusername/matchcast/internal/markets"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

// Options configures a PredictionService
type Options struct {
	Tables outcome.Tables
	// Market supplies bookmaker data when a request carries none. Nil
	// leaves the market model to simulate its own.
	Market marketdata.Source
	// Seed drives every simulated draw. Zero means time-seeded.
	Seed int64
	// Weights are the initial ensemble weights. Nil selects confidence weighting.
	Weights         ensemble.Weights
	DefaultMatchday int
	Logger          *logrus.Logger
}

// Request is a prediction request with its optional context
type Request struct {
	Match   models.Match
	Weather *models.WeatherConditions
	Market  *models.MarketData
}

// Result is the full output of one prediction request
type Result struct {
	Predictions map[string]models.Prediction `json:"predictions"`
	Ensemble    ensemble.Combination         `json:"ensemble"`
	Market      *models.MarketData           `json:"market,omitempty"`
}

// PredictionService runs the outcome models and combines their output
type PredictionService struct {
	models    []outcome.Model
	extractor *insights.Extractor
	generator *markets.Generator
	market    marketdata.Source
	validate  *validator.Validate
	seed      int64
	matchday  int

	mu      sync.RWMutex
	weights ensemble.Weights

	log        *logrus.Logger
	predLogger *logger.PredictionLogger
}

// NewPredictionService creates a prediction service
func NewPredictionService(opts Options) (*PredictionService, error) {
	if opts.Tables == nil {
		return nil, errors.New("reference tables are required")
	}
	if err := opts.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("initial weights: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	matchday := opts.DefaultMatchday
	if matchday <= 0 {
		matchday = models.DefaultMatchday
	}

	return &PredictionService{
		models:     outcome.NewAll(opts.Tables),
		extractor:  insights.NewExtractor(opts.Tables),
		generator:  markets.NewGenerator(),
		market:     opts.Market,
		validate:   validator.New(),
		seed:       opts.Seed,
		matchday:   matchday,
		weights:    opts.Weights.Clone(),
		log:        log,
		predLogger: logger.NewPredictionLogger(log),
	}, nil
}

// GetModelPredictions returns every model's prediction for match plus the
// ensemble under ensemble.Name.
func (s *PredictionService) GetModelPredictions(ctx context.Context, match models.Match) (map[string]models.Prediction, error) {
	res, err := s.Predict(ctx, Request{Match: match})
	if err != nil {
		return nil, err
	}
	return res.Predictions, nil
}

// Predict runs all models concurrently and combines them with a snapshot of
// the current ensemble weights.
func (s *PredictionService) Predict(ctx context.Context, req Request) (*Result, error) {
	if err := s.validateMatch(req.Match); err != nil {
		return nil, err
	}

	matchID := req.Match.ID.String()
	market := req.Market
	if market == nil && s.market != nil {
		data, err := s.market.Fetch(ctx, req.Match)
		switch {
		case err == nil:
			market = data
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			s.log.WithError(err).WithField("match_id", matchID).Warn("Market data unavailable, market model will simulate")
		}
	}

	match := s.resolveMatchday(req.Match)
	preds := make([]models.Prediction, len(s.models))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range s.models {
		i, m := i, m
		g.Go(func() error {
			start := time.Now()
			in := outcome.Inputs{
				Weather: req.Weather,
				Market:  market,
				Rand:    outcome.MatchRand(s.seed, match, m.Name()),
			}
			p, err := m.Predict(gctx, match, in)
			elapsed := time.Since(start)
			if err != nil {
				metrics.RecordModelPrediction(m.Name(), metrics.StatusError, elapsed.Seconds())
				return fmt.Errorf("%s: %w", m.Name(), err)
			}
			if err := s.validatePrediction(p); err != nil {
				metrics.RecordModelPrediction(m.Name(), metrics.StatusError, elapsed.Seconds())
				return fmt.Errorf("%s: %w", m.Name(), err)
			}
			metrics.RecordModelPrediction(m.Name(), metrics.StatusSuccess, elapsed.Seconds())
			metrics.RecordModelConfidence(m.Name(), p.Confidence)
			s.predLogger.LogModelPrediction(matchID, m.Name(), p.HomeWin, p.Draw, p.AwayWin, p.Confidence, float64(elapsed.Microseconds())/1000)
			preds[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]models.Prediction, len(s.models)+1)
	for i, m := range s.models {
		out[m.Name()] = preds[i]
	}

	combo, err := ensemble.CombineDetailed(out, s.EnsembleWeights())
	if err != nil {
		return nil, err
	}
	out[ensemble.Name] = combo.Prediction

	metrics.RecordEnsembleCombination(string(combo.Mode))
	ep := combo.Prediction
	s.predLogger.LogEnsemble(matchID, string(combo.Mode), len(preds), ep.HomeWin, ep.Draw, ep.AwayWin, ep.Confidence)

	return &Result{Predictions: out, Ensemble: combo, Market: market}, nil
}

func (s *PredictionService) validateMatch(match models.Match) error {
	if err := s.validate.Struct(match); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on %s", models.ErrInvalidMatch, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", models.ErrInvalidMatch, err)
	}
	return nil
}

func (s *PredictionService) validatePrediction(p models.Prediction) error {
	if !p.IsFinite() {
		return fmt.Errorf("%w: non-finite value", models.ErrInvalidPrediction)
	}
	if err := s.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on %s", models.ErrInvalidPrediction, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", models.ErrInvalidPrediction, err)
	}
	return nil
}

// resolveMatchday fills in the configured default matchday
func (s *PredictionService) resolveMatchday(match models.Match) models.Match {
	if match.Matchday <= 0 {
		match.Matchday = s.matchday
	}
	return match
}

// DeriveMarkets derives the betting markets implied by base
func (s *PredictionService) DeriveMarkets(ctx context.Context, match models.Match, base models.Prediction) (*models.BettingMarketPrediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := s.generator.Derive(base)
	if err != nil {
		return nil, err
	}
	metrics.RecordDerivedMarkets()
	s.predLogger.LogMarkets(match.ID.String(), base.ExpectedGoals.Total(), m.Over25Goals, m.BothTeamsScore, len(m.CorrectScoreProbabilities))
	return m, nil
}

// GetTacticalInsights describes the tactical matchup of two teams
func (s *PredictionService) GetTacticalInsights(homeTeam, awayTeam string) insights.TacticalInsightView {
	return s.extractor.Tactical(homeTeam, awayTeam)
}

// GetStrategicInsights describes the season context of two teams at the
// default matchday.
func (s *PredictionService) GetStrategicInsights(homeTeam, awayTeam string) insights.StrategicInsightView {
	return s.GetStrategicInsightsAt(homeTeam, awayTeam, s.matchday)
}

// GetStrategicInsightsAt is GetStrategicInsights for a given matchday
func (s *PredictionService) GetStrategicInsightsAt(homeTeam, awayTeam string, matchday int) insights.StrategicInsightView {
	rng := outcome.NewRand(s.seed, homeTeam, awayTeam, outcome.NameStrategic)
	return s.extractor.Strategic(homeTeam, awayTeam, matchday, rng)
}

// GetMatchStrategicInsights describes the season context of a fixture from
// the same draws the Strategic model uses when predicting it
func (s *PredictionService) GetMatchStrategicInsights(match models.Match) insights.StrategicInsightView {
	match = s.resolveMatchday(match)
	rng := outcome.MatchRand(s.seed, match, outcome.NameStrategic)
	return s.extractor.Strategic(match.HomeTeam, match.AwayTeam, match.Matchday, rng)
}

// GetMatchInjuryReports simulates both injury lists of a fixture from the
// same draws the Injury model uses when predicting it
func (s *PredictionService) GetMatchInjuryReports(match models.Match) (home, away models.TeamInjuries) {
	rng := outcome.MatchRand(s.seed, match, outcome.NameInjury)
	home = s.extractor.InjuryReport(match.HomeTeam, rng)
	away = s.extractor.InjuryReport(match.AwayTeam, rng)
	return home, away
}

// GetInjuryReport simulates the current injury list of team
func (s *PredictionService) GetInjuryReport(team string) models.TeamInjuries {
	return s.extractor.InjuryReport(team, outcome.NewRand(s.seed, team, outcome.NameInjury))
}

// GetMarketInsights fetches market data for match and analyses it
func (s *PredictionService) GetMarketInsights(ctx context.Context, match models.Match) (insights.MarketInsightView, error) {
	if err := s.validateMatch(match); err != nil {
		return insights.MarketInsightView{}, err
	}
	var data models.MarketData
	if s.market != nil {
		d, err := s.market.Fetch(ctx, match)
		if err != nil {
			return insights.MarketInsightView{}, err
		}
		data = *d
	} else {
		data = outcome.SimulateMarket(outcome.MatchRand(s.seed, match, outcome.StreamMarket))
	}
	return insights.Market(data), nil
}

// SetEnsembleWeights replaces the static weights. Partial maps are allowed;
// nil switches to confidence weighting. Predictions already in flight keep
// the weights they started with.
func (s *PredictionService) SetEnsembleWeights(weights ensemble.Weights) error {
	return s.setWeights("api", weights)
}

// ApplyPreset replaces the weights with a named preset
func (s *PredictionService) ApplyPreset(name string) error {
	w, err := ensemble.Preset(name)
	if err != nil {
		return err
	}
	return s.setWeights("preset:"+name, w)
}

func (s *PredictionService) setWeights(source string, weights ensemble.Weights) error {
	if err := weights.Validate(); err != nil {
		return err
	}
	next := weights.Clone()

	s.mu.Lock()
	prev := s.weights
	s.weights = next
	s.mu.Unlock()

	s.predLogger.LogWeightsChanged(source, prev, next)
	return nil
}

// EnsembleWeights returns a copy of the current weights
func (s *PredictionService) EnsembleWeights() ensemble.Weights {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weights.Clone()
}

// ModelNames lists the models in evaluation order
func (s *PredictionService) ModelNames() []string {
	names := make([]string, len(s.models))
	for i, m := range s.models {
		names[i] = m.Name()
	}
	return names
}

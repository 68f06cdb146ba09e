package outcome

import (
	"context"
	"math"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

const (
	baseHomeRate     = 1.5
	baseAwayRate     = 1.1
	averageRating    = 75.0
	statisticalGrid  = 10
	maxSampleWeight  = 0.6
	fullSampleLength = 40.0
)

// StatisticalModel derives Poisson scoring rates from attack and defence
// ratings and reads the outcome off the score grid
type StatisticalModel struct {
	stats StatsLookup
}

// NewStatisticalModel creates a statistical rate model
func NewStatisticalModel(stats StatsLookup) *StatisticalModel {
	return &StatisticalModel{stats: stats}
}

// Name returns the model name
func (m *StatisticalModel) Name() string { return NameStatistical }

// Rates returns the goal expectancies of both sides
func Rates(home, away models.TeamStats) (float64, float64) {
	homeRate := baseHomeRate * ratingRatio(home.AttackingRating) / ratingRatio(away.DefensiveRating)
	awayRate := baseAwayRate * ratingRatio(away.AttackingRating) / ratingRatio(home.DefensiveRating)
	return homeRate, awayRate
}

// Predict blends the Poisson grid with the prior by sample size
func (m *StatisticalModel) Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error) {
	home, okHome := m.stats.Stats(match.HomeTeam)
	away, okAway := m.stats.Stats(match.AwayTeam)
	if !okHome || !okAway {
		return probability.Prior(), nil
	}

	homeRate, awayRate := Rates(home, away)
	gridHome, gridDraw, gridAway := probability.OutcomeGrid(homeRate, awayRate, statisticalGrid)

	played := math.Min(float64(home.MatchesPlayed()), float64(away.MatchesPlayed()))
	w := math.Min(maxSampleWeight, played/fullSampleLength)

	h, d, a := probability.Normalize(
		w*gridHome+(1-w)*probability.PriorHomeWin,
		w*gridDraw+(1-w)*probability.PriorDraw,
		w*gridAway+(1-w)*probability.PriorAwayWin,
	)
	confidence := capConfidence(0.6+0.3*math.Abs(h-a), 0.9)

	return buildPrediction(h, d, a, confidence, homeRate, awayRate), nil
}

// ratingRatio scales a 0-100 rating around the league average; a missing
// rating counts as average
func ratingRatio(rating float64) float64 {
	if rating <= 0 || math.IsNaN(rating) {
		return 1
	}
	return rating / averageRating
}

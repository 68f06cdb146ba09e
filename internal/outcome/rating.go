package outcome

import (
	"context"
	"math"

	"github.com/yourusername/matchcast/internal/models"
)

const (
	baseRating      = 1500.0
	homeFieldRating = 65.0
)

// RatingModel compares Elo style ratings
type RatingModel struct {
	stats StatsLookup
}

// NewRatingModel creates a rating differential model
func NewRatingModel(stats StatsLookup) *RatingModel {
	return &RatingModel{stats: stats}
}

// Name returns the model name
func (m *RatingModel) Name() string { return NameRating }

// Rating returns the team's rating. An explicit Elo wins; otherwise it is
// derived from the attack and defence ratings. Unknown teams rate 1500.
func (m *RatingModel) Rating(team string) float64 {
	s, ok := m.stats.Stats(team)
	if !ok {
		return baseRating
	}
	if s.Elo > 0 {
		return s.Elo
	}
	return baseRating + 10*(s.AttackingRating+s.DefensiveRating-150)
}

// ExpectedScore returns the home expected score for the rating pair
func ExpectedScore(homeRating, awayRating float64) float64 {
	return 1 / (1 + math.Pow(10, -(homeRating+homeFieldRating-awayRating)/400))
}

// Predict converts the expected score above an even matchup into an advantage
func (m *RatingModel) Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error) {
	homeRating := m.Rating(match.HomeTeam)
	awayRating := m.Rating(match.AwayTeam)

	adv := ExpectedScore(homeRating, awayRating) - ExpectedScore(baseRating, baseRating)
	h, d, a := ApplyAdvantage(adv)
	confidence := capConfidence(0.6+math.Abs(homeRating-awayRating)/1000, 0.9)
	homeGoals, awayGoals := goalsFromAdvantage(adv)

	return buildPrediction(h, d, a, confidence, homeGoals, awayGoals), nil
}

package outcome

import (
	"context"
	"math"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

// formWeights weight the last five results, most recent first
var formWeights = [...]float64{5, 4, 3, 2, 1}

// typical gap between home and away win rates across a league
const venueBaseline = 0.15

// PatternModel reads recent form and venue records
type PatternModel struct {
	stats StatsLookup
}

// NewPatternModel creates a pattern recognition model
func NewPatternModel(stats StatsLookup) *PatternModel {
	return &PatternModel{stats: stats}
}

// Name returns the model name
func (m *PatternModel) Name() string { return NamePattern }

// FormScore returns the recency weighted points share of the last five
// results, 0.5 when no form is recorded
func FormScore(form []models.Result) float64 {
	score, total := 0.0, 0.0
	for i, r := range form {
		if i >= len(formWeights) {
			break
		}
		w := formWeights[i]
		total += w
		switch r {
		case models.ResultWin:
			score += w
		case models.ResultDraw:
			score += 0.4 * w
		}
	}
	if total == 0 {
		return 0.5
	}
	return score / total
}

// PatternAdvantage returns the form and venue driven home advantage
func PatternAdvantage(home, away models.TeamStats) float64 {
	formDiff := FormScore(home.Form) - FormScore(away.Form)
	venueDiff := home.HomeRecord.WinRate() - away.AwayRecord.WinRate()
	return 0.2 * math.Tanh(2*(0.6*formDiff+0.4*(venueDiff-venueBaseline)))
}

// Predict applies the pattern advantage to the prior
func (m *PatternModel) Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error) {
	home, okHome := m.stats.Stats(match.HomeTeam)
	away, okAway := m.stats.Stats(match.AwayTeam)
	if !okHome || !okAway {
		return probability.Prior(), nil
	}

	adv := PatternAdvantage(home, away)
	h, d, a := ApplyAdvantage(adv)
	confidence := capConfidence(0.55+1.5*math.Abs(adv), 0.9)
	homeGoals, awayGoals := goalsFromAdvantage(adv)

	return buildPrediction(h, d, a, confidence, homeGoals, awayGoals), nil
}

// Package markets expands a base outcome prediction into derived betting
// markets. Every market is a deterministic function of the base outcome
// distribution and its expected goals.
package markets

import (
	"fmt"
	"math"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

const (
	defaultMaxTotalGoals  = 10
	defaultScoreGridSize  = 5
	defaultScoreThreshold = 0.005
	minOverProbability    = 0.05
	maxOverProbability    = 0.95
)

// GoalLines are the over/under lines every derivation covers
var GoalLines = []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}

// Generator derives betting markets from a base prediction
type Generator struct {
	maxTotalGoals  int
	scoreGridSize  int
	scoreThreshold float64
}

// NewGenerator creates a generator with the standard truncation settings:
// totals up to 10 goals, correct scores up to 5-5 above 0.5%
func NewGenerator() *Generator {
	return &Generator{
		maxTotalGoals:  defaultMaxTotalGoals,
		scoreGridSize:  defaultScoreGridSize,
		scoreThreshold: defaultScoreThreshold,
	}
}

// Derive computes every market for base. Negative or non-finite expected
// goals are rejected with an InvalidInputError; smaller values, including
// zero, are raised to the 0.1 floor.
func (g *Generator) Derive(base models.Prediction) (*models.BettingMarketPrediction, error) {
	if err := probability.ValidateRate("expected_goals.home", base.ExpectedGoals.Home); err != nil {
		return nil, fmt.Errorf("failed to derive markets: %w", err)
	}
	if err := probability.ValidateRate("expected_goals.away", base.ExpectedGoals.Away); err != nil {
		return nil, fmt.Errorf("failed to derive markets: %w", err)
	}
	homeGoals := probability.FloorGoals(base.ExpectedGoals.Home)
	awayGoals := probability.FloorGoals(base.ExpectedGoals.Away)
	total := homeGoals + awayGoals

	m := &models.BettingMarketPrediction{
		HomeOrDraw: base.HomeWin + base.Draw,
		AwayOrDraw: base.AwayWin + base.Draw,
		HomeOrAway: base.HomeWin + base.AwayWin,
	}

	m.GoalLines = make([]models.GoalLine, 0, len(GoalLines))
	for _, line := range GoalLines {
		over := g.Over(total, line)
		m.GoalLines = append(m.GoalLines, models.GoalLine{Line: line, Over: over, Under: 1 - over})
	}
	m.Over15Goals, m.Under15Goals = overUnder(m, 1.5)
	m.Over25Goals, m.Under25Goals = overUnder(m, 2.5)
	m.Over35Goals, m.Under35Goals = overUnder(m, 3.5)

	m.BothTeamsScore = BothTeamsScore(homeGoals, awayGoals)
	m.BothTeamsNoScore = 1 - m.BothTeamsScore

	m.CorrectScoreProbabilities = g.CorrectScores(homeGoals, awayGoals)

	m.HomeHandicap = Ladder(base.HomeWin, base.Draw, base.AwayWin)
	m.AwayHandicap = Ladder(base.AwayWin, base.Draw, base.HomeWin)

	m.HalfTime = HalfTime(base)
	m.DoubleResult = DoubleResult(m.HalfTime, base)

	return m, nil
}

// Over returns P(total goals > line) for a Poisson total, truncated at the
// generator's goal cap and clamped to [0.05, 0.95]
func (g *Generator) Over(expectedTotal, line float64) float64 {
	p := probability.PoissonRange(int(math.Floor(line))+1, g.maxTotalGoals, expectedTotal)
	return probability.Clamp(p, minOverProbability, maxOverProbability)
}

func overUnder(m *models.BettingMarketPrediction, line float64) (float64, float64) {
	gl, _ := m.GoalLineAt(line)
	return gl.Over, gl.Under
}

// BothTeamsScore returns P(home >= 1 and away >= 1) under independent
// Poisson marginals
func BothTeamsScore(homeGoals, awayGoals float64) float64 {
	homeBlank := probability.PoissonPMF(0, homeGoals)
	awayBlank := probability.PoissonPMF(0, awayGoals)
	return 1 - (homeBlank + awayBlank - homeBlank*awayBlank)
}

// CorrectScores returns the independent Poisson score grid keyed "h-a",
// keeping only cells above the generator's threshold
func (g *Generator) CorrectScores(homeGoals, awayGoals float64) map[string]float64 {
	scores := make(map[string]float64)
	for h := 0; h <= g.scoreGridSize; h++ {
		ph := probability.PoissonPMF(h, homeGoals)
		for a := 0; a <= g.scoreGridSize; a++ {
			p := ph * probability.PoissonPMF(a, awayGoals)
			if p > g.scoreThreshold {
				scores[ScoreKey(h, a)] = p
			}
		}
	}
	return scores
}

// ScoreKey formats a correct score key
func ScoreKey(home, away int) string {
	return fmt.Sprintf("%d-%d", home, away)
}

// HalfTime returns the half-time distribution: fewer decisive results and
// more draws than at full time. The result is not renormalised.
func HalfTime(base models.Prediction) models.OutcomeDistribution {
	return models.OutcomeDistribution{
		HomeWin: 0.7 * base.HomeWin,
		Draw:    1.4*base.Draw + 0.1,
		AwayWin: 0.7 * base.AwayWin,
	}
}

// DoubleResult returns the HT/FT matrix as the outer product of the
// half-time and full-time distributions
func DoubleResult(ht models.OutcomeDistribution, ft models.Prediction) map[string]float64 {
	return map[string]float64{
		models.DoubleHomeHome: ht.HomeWin * ft.HomeWin,
		models.DoubleHomeDraw: ht.HomeWin * ft.Draw,
		models.DoubleHomeAway: ht.HomeWin * ft.AwayWin,
		models.DoubleDrawHome: ht.Draw * ft.HomeWin,
		models.DoubleDrawDraw: ht.Draw * ft.Draw,
		models.DoubleDrawAway: ht.Draw * ft.AwayWin,
		models.DoubleAwayHome: ht.AwayWin * ft.HomeWin,
		models.DoubleAwayDraw: ht.AwayWin * ft.Draw,
		models.DoubleAwayAway: ht.AwayWin * ft.AwayWin,
	}
}

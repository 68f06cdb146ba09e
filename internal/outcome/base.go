package outcome

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

// Model display names, used as keys in prediction maps
const (
	NameStatistical = "Statistical Rate"
	NameRating      = "Rating Differential"
	NamePattern     = "Pattern Recognition"
	NameTactical    = "Tactical Analysis"
	NameStrategic   = "Strategic Analysis"
	NameWeather     = "Weather Impact"
	NameInjury      = "Injury Impact"
	NameMarket      = "Market Consensus"
)

// Names lists every model in evaluation order
var Names = []string{
	NameStatistical,
	NameRating,
	NamePattern,
	NameTactical,
	NameStrategic,
	NameWeather,
	NameInjury,
	NameMarket,
}

// NewAll builds every outcome model over the given reference tables
func NewAll(tables Tables) []Model {
	return []Model{
		NewStatisticalModel(tables),
		NewRatingModel(tables),
		NewPatternModel(tables),
		NewTacticalModel(tables),
		NewStrategicModel(tables),
		NewWeatherModel(),
		NewInjuryModel(tables),
		NewMarketModel(),
	}
}

// ApplyAdvantage perturbs the prior by a home advantage: home gains adv,
// away loses 0.7 of it and the draw 0.3. The result is normalised.
func ApplyAdvantage(adv float64) (home, draw, away float64) {
	return probability.Normalize(
		probability.PriorHomeWin+adv,
		probability.PriorDraw-0.3*adv,
		probability.PriorAwayWin-0.7*adv,
	)
}

// RandFor returns the injected source or a time-seeded one
func RandFor(in Inputs) *rand.Rand {
	if in.Rand != nil {
		return in.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// DeriveSeed mixes a base seed with identifying parts so that every
// (match, model) pair gets its own reproducible stream. A zero base seed is
// replaced by the current time.
func DeriveSeed(base int64, parts ...string) int64 {
	if base == 0 {
		base = time.Now().UnixNano()
	}
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return base ^ int64(h.Sum64())
}

// NewRand returns a source seeded by DeriveSeed
func NewRand(base int64, parts ...string) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(base, parts...)))
}

// MatchRand returns the stream a named consumer draws from for one fixture.
// Fixtures without an ID are still told apart by their teams.
func MatchRand(base int64, match models.Match, name string) *rand.Rand {
	return NewRand(base, match.ID.String(), match.HomeTeam, match.AwayTeam, name)
}

func buildPrediction(home, draw, away, confidence, homeGoals, awayGoals float64) models.Prediction {
	return probability.NormalizePrediction(models.Prediction{
		HomeWin:    home,
		Draw:       draw,
		AwayWin:    away,
		Confidence: confidence,
		ExpectedGoals: models.ExpectedGoals{
			Home: homeGoals,
			Away: awayGoals,
		},
	})
}

// goalsFromAdvantage shifts the prior goal expectancy towards the favoured side
func goalsFromAdvantage(adv float64) (float64, float64) {
	return 1.3 + 2*adv, 1.1 - 1.5*adv
}

func capConfidence(x, limit float64) float64 {
	return math.Min(limit, x)
}

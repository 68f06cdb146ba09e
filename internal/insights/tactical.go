// Package insights packages the intermediate factors of the tactical,
// strategic, injury and market models for display. Nothing here feeds back
// into a prediction.
package insights

import (
	"math/rand"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

// KeyMatchups are the tactical matchup factors of a fixture
type KeyMatchups struct {
	StyleClash             float64 `json:"style_clash"`
	FormationEffectiveness float64 `json:"formation_effectiveness"`
	HomeAdvantage          float64 `json:"home_advantage"`
	TacticalFamiliarity    float64 `json:"tactical_familiarity"`
}

// TacticalInsightView explains the tactical model for a fixture
type TacticalInsightView struct {
	HomeTeamTactics *models.TacticalProfile `json:"home_team_tactics,omitempty"`
	AwayTeamTactics *models.TacticalProfile `json:"away_team_tactics,omitempty"`
	KeyMatchups     KeyMatchups             `json:"key_matchups"`
	Recommendations []string                `json:"recommendations"`
}

// Extractor builds insight views from the same models used for prediction
type Extractor struct {
	tactical  *outcome.TacticalModel
	strategic *outcome.StrategicModel
	injury    *outcome.InjuryModel
}

// NewExtractor creates an extractor over the reference tables
func NewExtractor(tables outcome.Tables) *Extractor {
	return &Extractor{
		tactical:  outcome.NewTacticalModel(tables),
		strategic: outcome.NewStrategicModel(tables),
		injury:    outcome.NewInjuryModel(tables),
	}
}

// Tactical explains the tactical matchup of a fixture
func (e *Extractor) Tactical(homeTeam, awayTeam string) TacticalInsightView {
	home, away := e.tactical.Profiles(homeTeam, awayTeam)
	matchup := e.tactical.Matchup(homeTeam, awayTeam)

	return TacticalInsightView{
		HomeTeamTactics: home,
		AwayTeamTactics: away,
		KeyMatchups: KeyMatchups{
			StyleClash:             matchup.StyleClash,
			FormationEffectiveness: matchup.FormationEffectiveness,
			HomeAdvantage:          matchup.HomeAdvantage,
			TacticalFamiliarity:    matchup.TacticalFamiliarity,
		},
		Recommendations: tacticalRecommendations(home, away),
	}
}

func tacticalRecommendations(home, away *models.TacticalProfile) []string {
	recs := []string{}
	if home == nil || away == nil {
		return recs
	}

	if home.AttackingStyle == models.AttackPossession && away.DefensiveStyle == models.DefendDeepBlock {
		recs = append(recs,
			"Home team may struggle to break down compact defense",
			"Look for set-piece opportunities and wide play")
	}
	if home.AttackingStyle == models.AttackCounter && away.DefensiveStyle == models.DefendHighLine {
		recs = append(recs,
			"Home team well-positioned to exploit space behind defense",
			"Expect fast transitions and through balls")
	}
	if away.AttackingStyle == models.AttackPressing && home.Tempo == models.TempoSlow {
		recs = append(recs,
			"Away team pressing could disrupt home team rhythm",
			"Early goals crucial for away team momentum")
	}
	return recs
}

// InjuryReport simulates the current absences of a team
func (e *Extractor) InjuryReport(team string, rng *rand.Rand) models.TeamInjuries {
	return e.injury.Report(team, rng)
}

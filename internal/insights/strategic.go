package insights

import (
	"math/rand"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

// TeamContext is a team's strategic context with its season objectives
type TeamContext struct {
	models.StrategicContext
	Objectives *models.TeamObjectives `json:"objectives,omitempty"`
}

// HomeAway pairs a value for each side
type HomeAway[T any] struct {
	Home T `json:"home"`
	Away T `json:"away"`
}

// KeyFactors are the headline strategic factors of a fixture
type KeyFactors struct {
	MatchImportance HomeAway[models.MatchImportance] `json:"match_importance"`
	Pressure        HomeAway[float64]                `json:"pressure"`
	Motivation      float64                          `json:"motivation"`
}

// StrategicInsightView explains the strategic model for a fixture
type StrategicInsightView struct {
	HomeTeamContext TeamContext `json:"home_team_context"`
	AwayTeamContext TeamContext `json:"away_team_context"`
	KeyFactors      KeyFactors  `json:"key_factors"`
	Recommendations []string    `json:"recommendations"`
}

// Strategic explains the strategic context of a fixture on a matchday.
// League positions are simulated from rng.
func (e *Extractor) Strategic(homeTeam, awayTeam string, matchday int, rng *rand.Rand) StrategicInsightView {
	home := e.strategic.Context(homeTeam, matchday, rng)
	away := e.strategic.Context(awayTeam, matchday, rng)

	return StrategicInsightView{
		HomeTeamContext: TeamContext{StrategicContext: home, Objectives: e.strategic.Objectives(homeTeam)},
		AwayTeamContext: TeamContext{StrategicContext: away, Objectives: e.strategic.Objectives(awayTeam)},
		KeyFactors: KeyFactors{
			MatchImportance: HomeAway[models.MatchImportance]{Home: home.MatchImportance, Away: away.MatchImportance},
			Pressure:        HomeAway[float64]{Home: home.CompetitionPressure, Away: away.CompetitionPressure},
			Motivation:      outcome.Motivation(home, away),
		},
		Recommendations: strategicRecommendations(home, away),
	}
}

func strategicRecommendations(home, away models.StrategicContext) []string {
	recs := []string{}

	if home.MatchImportance == models.ImportanceCritical && away.MatchImportance == models.ImportanceLow {
		recs = append(recs,
			"Home team has significantly more to play for",
			"Expect aggressive home team approach")
	}
	if home.CompetitionPressure > 0.8 {
		recs = append(recs,
			"High pressure on home team may lead to nervous start",
			"Away team could benefit from early pressure")
	}
	if home.SeasonPhase == models.PhaseFinal && home.PointsGap < 0 {
		recs = append(recs,
			"Desperate home team in final phase - expect all-out attack",
			"High-risk, high-reward approach likely")
	}
	if away.ManagerialStability < 0.5 {
		recs = append(recs,
			"Away team manager under pressure - tactical changes likely",
			"Team cohesion may be affected")
	}
	return recs
}

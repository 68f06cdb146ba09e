package outcome

import (
	"context"
	"math"
	"math/rand"

	"github.com/yourusername/matchcast/internal/models"
)

const neutralStability = 0.5

var (
	importancePhaseMultiplier = map[models.SeasonPhase]float64{
		models.PhaseEarly: 0.5,
		models.PhaseMid:   0.7,
		models.PhaseLate:  0.9,
		models.PhaseFinal: 1.2,
	}
	pressurePhaseMultiplier = map[models.SeasonPhase]float64{
		models.PhaseEarly: 0.6,
		models.PhaseMid:   0.8,
		models.PhaseLate:  1.1,
		models.PhaseFinal: 1.4,
	}
)

// StrategicModel weighs what each side has to play for
type StrategicModel struct {
	tables ObjectivesLookup
}

// NewStrategicModel creates a strategic analysis model
func NewStrategicModel(tables ObjectivesLookup) *StrategicModel {
	return &StrategicModel{tables: tables}
}

// Name returns the model name
func (m *StrategicModel) Name() string { return NameStrategic }

// Objectives returns the team's season objectives, nil when unknown
func (m *StrategicModel) Objectives(team string) *models.TeamObjectives {
	o, ok := m.tables.Objectives(team)
	if !ok {
		return nil
	}
	return &o
}

// Context derives the strategic context of a team for a matchday. The league
// position and points gap are simulated from rng.
func (m *StrategicModel) Context(team string, matchday int, rng *rand.Rand) models.StrategicContext {
	objectives := m.Objectives(team)
	phase := SeasonPhaseFor(matchday)
	position := SimulatePosition(objectives, rng)

	stability := neutralStability
	if manager, ok := m.tables.Manager(team); ok && manager.Stability > 0 {
		stability = manager.Stability
	}

	return models.StrategicContext{
		LeaguePosition:      position,
		PointsGap:           PointsGap(objectives, position, rng),
		MatchImportance:     MatchImportance(objectives, position, phase),
		SeasonPhase:         phase,
		CompetitionPressure: CompetitionPressure(objectives, position, phase),
		ManagerialStability: stability,
	}
}

// SimulatePosition draws a league position consistent with the objective
func SimulatePosition(objectives *models.TeamObjectives, rng *rand.Rand) int {
	if objectives == nil {
		return 10
	}
	switch objectives.Primary {
	case models.ObjectiveTitle:
		return rng.Intn(3) + 1
	case models.ObjectiveTop4:
		return rng.Intn(6) + 3
	case models.ObjectiveEuropa:
		return rng.Intn(5) + 6
	case models.ObjectiveMidtable:
		return rng.Intn(6) + 8
	case models.ObjectiveSurvival:
		return rng.Intn(5) + 16
	default:
		return 10
	}
}

// SeasonPhaseFor classifies a matchday
func SeasonPhaseFor(matchday int) models.SeasonPhase {
	switch {
	case matchday <= 10:
		return models.PhaseEarly
	case matchday <= 25:
		return models.PhaseMid
	case matchday <= 35:
		return models.PhaseLate
	default:
		return models.PhaseFinal
	}
}

// MatchImportance buckets the position deficit scaled by season phase
func MatchImportance(objectives *models.TeamObjectives, position int, phase models.SeasonPhase) models.MatchImportance {
	if objectives == nil {
		return models.ImportanceMedium
	}

	importance := 0.0
	switch {
	case objectives.Primary == models.ObjectiveTitle && position > 3:
		importance += 0.3
	case objectives.Primary == models.ObjectiveTop4 && position > 6:
		importance += 0.4
	case objectives.Primary == models.ObjectiveSurvival && position > 17:
		importance += 0.5
	}
	importance *= importancePhaseMultiplier[phase]

	switch {
	case importance < 0.3:
		return models.ImportanceLow
	case importance < 0.6:
		return models.ImportanceMedium
	case importance < 0.9:
		return models.ImportanceHigh
	default:
		return models.ImportanceCritical
	}
}

// PointsGap simulates the distance to the objective. Negative values mean
// the team is inside the relegation zone.
func PointsGap(objectives *models.TeamObjectives, position int, rng *rand.Rand) int {
	if objectives == nil {
		return 0
	}
	switch objectives.Primary {
	case models.ObjectiveTitle:
		if position == 1 {
			return 0
		}
		return rng.Intn(8) + 1
	case models.ObjectiveTop4:
		if position <= 4 {
			return 0
		}
		return rng.Intn(6) + 1
	case models.ObjectiveSurvival:
		if position >= 18 {
			return -(rng.Intn(5) + 1)
		}
		return rng.Intn(8) + 3
	default:
		return rng.Intn(5)
	}
}

// CompetitionPressure returns the pressure on a team in [0, 1]
func CompetitionPressure(objectives *models.TeamObjectives, position int, phase models.SeasonPhase) float64 {
	if objectives == nil {
		return 0.5
	}

	pressure := 0.3
	switch {
	case objectives.Primary == models.ObjectiveTitle && position > 2:
		pressure += 0.3
	case objectives.Primary == models.ObjectiveTop4 && position > 5:
		pressure += 0.4
	case objectives.Primary == models.ObjectiveSurvival && position > 17:
		pressure += 0.5
	}
	pressure *= pressurePhaseMultiplier[phase]
	pressure += 0.2 * objectives.Urgency

	return math.Min(1, pressure)
}

// StrategicAdvantage combines importance, stability and table position
func StrategicAdvantage(home, away models.StrategicContext) float64 {
	adv := 0.03 * float64(home.MatchImportance.Level()-away.MatchImportance.Level())
	adv += 0.1 * (home.ManagerialStability - away.ManagerialStability)
	if home.LeaguePosition < away.LeaguePosition {
		adv += 0.05
	}
	return adv
}

// Motivation rewards desperate sides in critical matches
func Motivation(home, away models.StrategicContext) float64 {
	motivation := 0.0
	if home.PointsGap < 0 && home.MatchImportance == models.ImportanceCritical {
		motivation += 0.08
	}
	if away.PointsGap < 0 && away.MatchImportance == models.ImportanceCritical {
		motivation -= 0.06
	}
	if home.SeasonPhase == models.PhaseFinal && home.MatchImportance == models.ImportanceCritical {
		motivation += 0.06
	}
	return motivation
}

// Pressure penalises sides under heavy competition pressure
func Pressure(home, away models.StrategicContext) float64 {
	pressure := 0.0
	if home.CompetitionPressure > 0.8 {
		pressure += 0.05
	}
	if away.CompetitionPressure > 0.8 {
		pressure -= 0.03
	}
	return pressure
}

// Predict simulates both contexts and applies the net advantage
func (m *StrategicModel) Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error) {
	rng := RandFor(in)
	matchday := match.EffectiveMatchday()
	home := m.Context(match.HomeTeam, matchday, rng)
	away := m.Context(match.AwayTeam, matchday, rng)

	adv := StrategicAdvantage(home, away) + Motivation(home, away) - Pressure(home, away)
	h, d, a := ApplyAdvantage(adv)

	clarity := math.Abs(adv)
	if home.MatchImportance != away.MatchImportance {
		clarity += 0.1
	}
	confidence := capConfidence(0.65+1.5*clarity, 0.95)

	return buildPrediction(h, d, a, confidence, 1.2+1.8*adv, 1.0-1.2*adv), nil
}

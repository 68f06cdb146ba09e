package outcome

import (
	"context"
	"math"

	"github.com/yourusername/matchcast/internal/models"
)

const baseTacticalHomeAdvantage = 0.1

// formationMatrix[home][away] is the home side's formation edge. The table
// is not antisymmetric.
var formationMatrix = [models.FormationCount][models.FormationCount]float64{
	models.Formation433:  {models.Formation442: 0.10, models.Formation352: -0.05, models.Formation4231: 0.05},
	models.Formation442:  {models.Formation433: -0.10, models.Formation352: 0.05, models.Formation4231: -0.05, models.Formation343: -0.08},
	models.Formation352:  {models.Formation433: 0.05, models.Formation442: -0.05, models.Formation4231: 0.08, models.Formation343: 0.03},
	models.Formation4231: {models.Formation433: -0.05, models.Formation442: 0.05, models.Formation352: -0.08, models.Formation343: 0.02},
	models.Formation343:  {models.Formation442: 0.08, models.Formation352: -0.03, models.Formation4231: -0.02},
}

// TacticalModel scores the clash of two tactical profiles
type TacticalModel struct {
	tactics TacticsLookup
}

// NewTacticalModel creates a tactical analysis model
func NewTacticalModel(tactics TacticsLookup) *TacticalModel {
	return &TacticalModel{tactics: tactics}
}

// Name returns the model name
func (m *TacticalModel) Name() string { return NameTactical }

// Profiles returns the tactical profiles of both teams, nil when unknown
func (m *TacticalModel) Profiles(homeTeam, awayTeam string) (*models.TacticalProfile, *models.TacticalProfile) {
	return m.profile(homeTeam), m.profile(awayTeam)
}

func (m *TacticalModel) profile(team string) *models.TacticalProfile {
	p, ok := m.tactics.Tactics(team)
	if !ok {
		return nil
	}
	return &p
}

// Matchup returns the matchup factors for a fixture. When either side is
// unknown only the base home advantage is reported and the matchup is
// marked as not known, which zeroes its total advantage.
func (m *TacticalModel) Matchup(homeTeam, awayTeam string) models.TacticalMatchup {
	home, away := m.Profiles(homeTeam, awayTeam)
	if home == nil || away == nil {
		return models.TacticalMatchup{HomeAdvantage: baseTacticalHomeAdvantage}
	}

	homeAdvantage := baseTacticalHomeAdvantage
	if home.AttackingStyle == models.AttackPossession && home.Tempo == models.TempoSlow {
		homeAdvantage += 0.05
	}
	if away.DefensiveStyle == models.DefendDeepBlock {
		homeAdvantage += 0.03
	}

	return models.TacticalMatchup{
		HomeAdvantage:          homeAdvantage,
		StyleClash:             StyleClash(*home, *away),
		FormationEffectiveness: FormationEffectiveness(home.Formation, away.Formation),
		TacticalFamiliarity:    Familiarity(m.tactics.Meetings(homeTeam, awayTeam)),
		Known:                  true,
	}
}

// StyleClash scores attacking style against defensive style and tempo
// against tempo from the home side's point of view
func StyleClash(home, away models.TacticalProfile) float64 {
	adv := 0.0
	if home.AttackingStyle == models.AttackPossession && away.DefensiveStyle == models.DefendDeepBlock {
		adv -= 0.10
	}
	if home.AttackingStyle == models.AttackCounter && away.DefensiveStyle == models.DefendHighLine {
		adv += 0.15
	}
	if home.AttackingStyle == models.AttackPressing && away.AttackingStyle == models.AttackPossession {
		adv += 0.10
	}
	if home.AttackingStyle == models.AttackDirect && away.DefensiveStyle == models.DefendCompact {
		adv -= 0.05
	}
	if home.Tempo == models.TempoFast && away.Tempo == models.TempoSlow {
		adv += 0.08
	}
	if home.Tempo == models.TempoSlow && away.AttackingStyle == models.AttackPressing {
		adv -= 0.12
	}
	return adv
}

// FormationEffectiveness returns the home formation's edge over the away one
func FormationEffectiveness(home, away models.Formation) float64 {
	if !validFormation(home) || !validFormation(away) {
		return 0
	}
	return formationMatrix[home][away]
}

func validFormation(f models.Formation) bool {
	return f >= 0 && int(f) < models.FormationCount
}

// Familiarity grows with previous meetings and is informational only
func Familiarity(meetings int) float64 {
	return math.Min(0.02*float64(meetings), 0.1)
}

// Predict applies the matchup advantage to the prior
func (m *TacticalModel) Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error) {
	adv := m.Matchup(match.HomeTeam, match.AwayTeam).TotalAdvantage()

	h, d, a := ApplyAdvantage(adv)
	confidence := capConfidence(0.6+2*math.Abs(adv), 0.95)
	homeGoals, awayGoals := goalsFromAdvantage(adv)

	return buildPrediction(h, d, a, confidence, homeGoals, awayGoals), nil
}

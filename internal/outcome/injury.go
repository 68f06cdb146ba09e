package outcome

import (
	"context"
	"math"
	"math/rand"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

const (
	injuryChance     = 0.1
	keyPlayerCutoff  = 0.7
	homeInjuryWeight = 0.15
	awayInjuryWeight = 0.12
	drawInjuryWeight = 0.03
)

// InjuryModel simulates absences among key players
type InjuryModel struct {
	players KeyPlayerLookup
}

// NewInjuryModel creates an injury impact model
func NewInjuryModel(players KeyPlayerLookup) *InjuryModel {
	return &InjuryModel{players: players}
}

// Name returns the model name
func (m *InjuryModel) Name() string { return NameInjury }

// SeverityFactor scales an injury by how long it keeps the player out
func SeverityFactor(t models.InjuryType) float64 {
	switch t {
	case models.InjuryMajor:
		return 1.0
	case models.InjuryModerate:
		return 0.7
	case models.InjuryMinor:
		return 0.3
	default:
		return 0
	}
}

// PositionFactor scales an injury by how hard the position is to cover
func PositionFactor(p models.Position) float64 {
	switch p {
	case models.PositionGoalkeeper:
		return 1.2
	case models.PositionForward:
		return 1.1
	case models.PositionDefender:
		return 0.9
	default:
		return 1.0
	}
}

// InjuryImpact sums importance x severity x position over the injuries
func InjuryImpact(injuries []models.PlayerInjury) float64 {
	total := 0.0
	for _, inj := range injuries {
		total += inj.Importance * SeverityFactor(inj.InjuryType) * PositionFactor(inj.Position)
	}
	return total
}

// Simulate rules each key player out with a 10% chance and a uniformly drawn
// severity. Unknown teams have no injuries.
func (m *InjuryModel) Simulate(team string, rng *rand.Rand) []models.PlayerInjury {
	var injuries []models.PlayerInjury
	for _, p := range m.players.KeyPlayers(team) {
		if rng.Float64() >= injuryChance {
			continue
		}
		injuries = append(injuries, models.PlayerInjury{
			KeyPlayer:  p,
			InjuryType: models.InjuryTypes[rng.Intn(len(models.InjuryTypes))],
		})
	}
	return injuries
}

// Report simulates and summarises a team's absences
func (m *InjuryModel) Report(team string, rng *rand.Rand) models.TeamInjuries {
	injuries := m.Simulate(team, rng)
	keyOut := 0
	for _, inj := range injuries {
		if inj.Importance > keyPlayerCutoff {
			keyOut++
		}
	}
	if injuries == nil {
		injuries = []models.PlayerInjury{}
	}
	return models.TeamInjuries{
		Team:          team,
		Injuries:      injuries,
		TotalImpact:   InjuryImpact(injuries),
		KeyPlayersOut: keyOut,
	}
}

// Predict favours the side with the lighter injury list
func (m *InjuryModel) Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error) {
	rng := RandFor(in)
	homeImpact := InjuryImpact(m.Simulate(match.HomeTeam, rng))
	awayImpact := InjuryImpact(m.Simulate(match.AwayTeam, rng))

	net := awayImpact - homeImpact
	confidence := capConfidence(0.6+0.3*math.Abs(net), 0.95)

	return buildPrediction(
		probability.PriorHomeWin+homeInjuryWeight*net,
		probability.PriorDraw-drawInjuryWeight*net,
		probability.PriorAwayWin-awayInjuryWeight*net,
		confidence,
		1.3-0.5*homeImpact,
		1.1-0.5*awayImpact,
	), nil
}

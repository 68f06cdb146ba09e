// Package outcome implements the outcome models. Every model perturbs the
// league-average prior with an additive advantage and renormalises, so their
// outputs can be blended by a plain weighted mean.
package outcome

import (
	"context"
	"math/rand"

	"github.com/yourusername/matchcast/internal/models"
)

// Model defines the interface for outcome models
type Model interface {
	Name() string
	Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error)
}

// Inputs carries the optional per-request context of a prediction
type Inputs struct {
	Weather *models.WeatherConditions
	Market  *models.MarketData
	// Rand drives every simulated draw. It must not be shared between
	// goroutines; nil means a time-seeded source.
	Rand *rand.Rand
}

// StatsLookup resolves team strength profiles
type StatsLookup interface {
	Stats(team string) (models.TeamStats, bool)
}

// TacticsLookup resolves tactical profiles and meeting history
type TacticsLookup interface {
	Tactics(team string) (models.TacticalProfile, bool)
	Meetings(homeTeam, awayTeam string) int
}

// ObjectivesLookup resolves season objectives and manager profiles
type ObjectivesLookup interface {
	Objectives(team string) (models.TeamObjectives, bool)
	Manager(team string) (models.ManagerProfile, bool)
}

// KeyPlayerLookup resolves the key players of a team
type KeyPlayerLookup interface {
	KeyPlayers(team string) []models.KeyPlayer
}

// Tables is the full set of reference lookups used by the models
type Tables interface {
	StatsLookup
	TacticsLookup
	ObjectivesLookup
	KeyPlayerLookup
}

package outcome

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
	"github.com/yourusername/matchcast/internal/reference"
)

func injury(position models.Position, importance float64, severity models.InjuryType) models.PlayerInjury {
	return models.PlayerInjury{
		KeyPlayer:  models.KeyPlayer{PlayerID: "p", PlayerName: "Player", Position: position, Importance: importance},
		InjuryType: severity,
	}
}

func TestInjuryImpact(t *testing.T) {
	assert.Equal(t, 0.0, InjuryImpact(nil))
	assert.InDelta(t, 0.99, InjuryImpact([]models.PlayerInjury{injury(models.PositionForward, 0.9, models.InjuryMajor)}), 1e-12)
	assert.InDelta(t, 0.8*0.7*1.2, InjuryImpact([]models.PlayerInjury{injury(models.PositionGoalkeeper, 0.8, models.InjuryModerate)}), 1e-12)
	assert.InDelta(t, 0.5*0.3*0.9+0.5*0.3*1.0, InjuryImpact([]models.PlayerInjury{
		injury(models.PositionDefender, 0.5, models.InjuryMinor),
		injury(models.PositionMidfielder, 0.5, models.InjuryMinor),
	}), 1e-12)
}

func TestInjurySimulationRate(t *testing.T) {
	m := NewInjuryModel(reference.Default())
	rng := rand.New(rand.NewSource(11))

	injured := 0
	for i := 0; i < 1000; i++ {
		injuries := m.Simulate("Manchester City", rng)
		injured += len(injuries)
		for _, inj := range injuries {
			assert.Contains(t, models.InjuryTypes, inj.InjuryType)
		}
	}
	// three key players at 10% each
	assert.Greater(t, injured, 200)
	assert.Less(t, injured, 400)

	assert.Empty(t, m.Simulate("Unknown FC", rng))
}

func TestInjuryReport(t *testing.T) {
	m := NewInjuryModel(reference.Default())
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 50; i++ {
		report := m.Report("Liverpool", rng)
		assert.Equal(t, "Liverpool", report.Team)
		assert.NotNil(t, report.Injuries)
		assert.InDelta(t, InjuryImpact(report.Injuries), report.TotalImpact, 1e-12)

		keyOut := 0
		for _, inj := range report.Injuries {
			if inj.Importance > 0.7 {
				keyOut++
			}
		}
		assert.Equal(t, keyOut, report.KeyPlayersOut)
	}

	report := m.Report("Unknown FC", rng)
	assert.Empty(t, report.Injuries)
	assert.Equal(t, 0.0, report.TotalImpact)
}

func TestInjuryModelFavoursHealthierSide(t *testing.T) {
	c := reference.NewCatalog()
	m := NewInjuryModel(c)

	// no key players means no injuries and the prior
	p, err := m.Predict(context.Background(), fixture("A", "B"), Inputs{Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	assert.InDelta(t, probability.PriorHomeWin, p.HomeWin, 1e-12)
	assert.InDelta(t, 0.6, p.Confidence, 1e-12)
	assert.InDelta(t, 1.3, p.ExpectedGoals.Home, 1e-12)

	// a deep squad of key players guarantees away absences across seeds
	players := make([]models.KeyPlayer, 200)
	for i := range players {
		players[i] = models.KeyPlayer{PlayerID: "p", PlayerName: "Player", Position: models.PositionForward, Importance: 0.9}
	}
	c.SetKeyPlayers("B", players)

	for seed := int64(1); seed <= 10; seed++ {
		p, err = m.Predict(context.Background(), fixture("A", "B"), Inputs{Rand: rand.New(rand.NewSource(seed))})
		require.NoError(t, err)
		assert.Greater(t, p.HomeWin, probability.PriorHomeWin)
		assert.Greater(t, p.Confidence, 0.6)
	}
}

func TestSeverityAndPositionFactors(t *testing.T) {
	assert.Equal(t, 0.3, SeverityFactor(models.InjuryMinor))
	assert.Equal(t, 0.7, SeverityFactor(models.InjuryModerate))
	assert.Equal(t, 1.0, SeverityFactor(models.InjuryMajor))
	assert.Equal(t, 0.0, SeverityFactor("unknown"))

	assert.Equal(t, 1.2, PositionFactor(models.PositionGoalkeeper))
	assert.Equal(t, 1.1, PositionFactor(models.PositionForward))
	assert.Equal(t, 1.0, PositionFactor(models.PositionMidfielder))
	assert.Equal(t, 0.9, PositionFactor(models.PositionDefender))
}

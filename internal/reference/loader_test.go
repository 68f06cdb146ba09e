package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
)

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/teams.yaml")
	require.NoError(t, err)

	villa, ok := c.Stats("Aston Villa")
	require.True(t, ok)
	assert.Equal(t, 81.0, villa.AttackingRating)
	assert.Equal(t, 1720.0, villa.Elo)
	assert.Equal(t, []models.Result{models.ResultWin, models.ResultWin, models.ResultDraw, models.ResultLoss, models.ResultWin}, villa.Form)
	assert.Equal(t, models.Record{Wins: 8, Draws: 2, Losses: 1}, villa.HomeRecord)

	tactics, ok := c.Tactics("Aston Villa")
	require.True(t, ok)
	assert.Equal(t, models.Formation442, tactics.Formation)
	assert.Equal(t, models.AttackCounter, tactics.AttackingStyle)

	objectives, ok := c.Objectives("Aston Villa")
	require.True(t, ok)
	assert.Equal(t, models.ObjectiveTop4, objectives.Primary)
	assert.Equal(t, models.SecondaryCup, objectives.Secondary)

	players := c.KeyPlayers("Aston Villa")
	require.Len(t, players, 1)
	assert.Equal(t, models.PositionForward, players[0].Position)
	assert.Equal(t, 4, c.Meetings("Aston Villa", "Chelsea"))
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	c, err := LoadFile("testdata/teams.yaml")
	require.NoError(t, err)

	chelsea, ok := c.Stats("Chelsea")
	require.True(t, ok)
	assert.Equal(t, 83.0, chelsea.AttackingRating)

	// built-in rows survive the overlay
	city, ok := c.Stats("Manchester City")
	require.True(t, ok)
	assert.Equal(t, 94.0, city.AttackingRating)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: "testdata/missing.yaml"},
		{name: "unknown formation", path: "testdata/invalid_formation.yaml"},
		{name: "rating out of range", path: "testdata/invalid_rating.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			assert.Error(t, err)
		})
	}
}

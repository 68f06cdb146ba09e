package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	stats, ok := c.Stats("Manchester City")
	require.True(t, ok)
	assert.Equal(t, 94.0, stats.AttackingRating)
	assert.Len(t, stats.Form, 5)
	assert.Equal(t, models.ResultWin, stats.Form[0])

	tactics, ok := c.Tactics("Liverpool")
	require.True(t, ok)
	assert.NotEmpty(t, tactics.Formation.String())

	_, ok = c.Stats("Unknown FC")
	assert.False(t, ok)
	_, ok = c.Tactics("Unknown FC")
	assert.False(t, ok)
	assert.Empty(t, c.KeyPlayers("Unknown FC"))
	assert.Equal(t, 0, c.Meetings("Unknown FC", "Arsenal"))
}

func TestCatalogTeamsSorted(t *testing.T) {
	c := NewCatalog()
	c.SetStats("Chelsea", models.TeamStats{AttackingRating: 80, DefensiveRating: 78})
	c.SetTactics("Arsenal", models.TacticalProfile{})
	c.SetManager("Brighton", models.ManagerProfile{})

	assert.Equal(t, []string{"Arsenal", "Brighton", "Chelsea"}, c.Teams())
}

func TestCatalogKeyPlayersAreCopied(t *testing.T) {
	c := NewCatalog()
	players := []models.KeyPlayer{{PlayerID: "p1", PlayerName: "Player One", Position: models.PositionForward, Importance: 0.9}}
	c.SetKeyPlayers("Arsenal", players)

	players[0].Importance = 0.1
	got := c.KeyPlayers("Arsenal")
	require.Len(t, got, 1)
	assert.Equal(t, 0.9, got[0].Importance)

	got[0].Importance = 0.2
	assert.Equal(t, 0.9, c.KeyPlayers("Arsenal")[0].Importance)
}

func TestCatalogMeetingsAreDirectional(t *testing.T) {
	c := NewCatalog()
	c.SetMeetings("Arsenal", "Chelsea", 3)

	assert.Equal(t, 3, c.Meetings("Arsenal", "Chelsea"))
	assert.Equal(t, 0, c.Meetings("Chelsea", "Arsenal"))
}

func TestCatalogMerge(t *testing.T) {
	base := NewCatalog()
	base.SetStats("Arsenal", models.TeamStats{AttackingRating: 80, DefensiveRating: 80})
	base.SetStats("Chelsea", models.TeamStats{AttackingRating: 70, DefensiveRating: 70})

	overlay := NewCatalog()
	overlay.SetStats("Arsenal", models.TeamStats{AttackingRating: 90, DefensiveRating: 85})
	overlay.SetMeetings("Arsenal", "Chelsea", 2)

	base.Merge(overlay)
	base.Merge(nil)

	arsenal, _ := base.Stats("Arsenal")
	chelsea, _ := base.Stats("Chelsea")
	assert.Equal(t, 90.0, arsenal.AttackingRating)
	assert.Equal(t, 70.0, chelsea.AttackingRating)
	assert.Equal(t, 2, base.Meetings("Arsenal", "Chelsea"))
}

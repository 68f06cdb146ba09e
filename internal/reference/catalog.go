// Package reference holds the read-only team tables consumed by the outcome
// models: strength stats, tactical profiles, season objectives, managers and
// key players.
package reference

import (
	"sort"

	"github.com/yourusername/matchcast/internal/models"
)

// Catalog is the static reference data set. It is built once at startup and
// only read afterwards, so lookups need no locking.
type Catalog struct {
	stats      map[string]models.TeamStats
	tactics    map[string]models.TacticalProfile
	objectives map[string]models.TeamObjectives
	managers   map[string]models.ManagerProfile
	keyPlayers map[string][]models.KeyPlayer
	meetings   map[string]int
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		stats:      make(map[string]models.TeamStats),
		tactics:    make(map[string]models.TacticalProfile),
		objectives: make(map[string]models.TeamObjectives),
		managers:   make(map[string]models.ManagerProfile),
		keyPlayers: make(map[string][]models.KeyPlayer),
		meetings:   make(map[string]int),
	}
}

// Stats returns the strength profile of team
func (c *Catalog) Stats(team string) (models.TeamStats, bool) {
	s, ok := c.stats[team]
	return s, ok
}

// Tactics returns the tactical profile of team
func (c *Catalog) Tactics(team string) (models.TacticalProfile, bool) {
	t, ok := c.tactics[team]
	return t, ok
}

// Objectives returns the season objectives of team
func (c *Catalog) Objectives(team string) (models.TeamObjectives, bool) {
	o, ok := c.objectives[team]
	return o, ok
}

// Manager returns the manager profile of team
func (c *Catalog) Manager(team string) (models.ManagerProfile, bool) {
	m, ok := c.managers[team]
	return m, ok
}

// KeyPlayers returns the key players of team; unknown teams have none
func (c *Catalog) KeyPlayers(team string) []models.KeyPlayer {
	players := c.keyPlayers[team]
	out := make([]models.KeyPlayer, len(players))
	copy(out, players)
	return out
}

// Meetings returns how many previous tactical matchups between the two sides
// are on record
func (c *Catalog) Meetings(homeTeam, awayTeam string) int {
	return c.meetings[meetingKey(homeTeam, awayTeam)]
}

// Teams returns every team named in any table, sorted
func (c *Catalog) Teams() []string {
	seen := make(map[string]struct{})
	for t := range c.stats {
		seen[t] = struct{}{}
	}
	for t := range c.tactics {
		seen[t] = struct{}{}
	}
	for t := range c.objectives {
		seen[t] = struct{}{}
	}
	for t := range c.managers {
		seen[t] = struct{}{}
	}
	for t := range c.keyPlayers {
		seen[t] = struct{}{}
	}
	teams := make([]string, 0, len(seen))
	for t := range seen {
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams
}

// SetStats registers a strength profile
func (c *Catalog) SetStats(team string, s models.TeamStats) { c.stats[team] = s }

// SetTactics registers a tactical profile
func (c *Catalog) SetTactics(team string, t models.TacticalProfile) { c.tactics[team] = t }

// SetObjectives registers season objectives
func (c *Catalog) SetObjectives(team string, o models.TeamObjectives) { c.objectives[team] = o }

// SetManager registers a manager profile
func (c *Catalog) SetManager(team string, m models.ManagerProfile) { c.managers[team] = m }

// SetKeyPlayers replaces the key players of a team
func (c *Catalog) SetKeyPlayers(team string, players []models.KeyPlayer) {
	c.keyPlayers[team] = append([]models.KeyPlayer(nil), players...)
}

// SetMeetings records the number of previous meetings for a fixture
func (c *Catalog) SetMeetings(homeTeam, awayTeam string, n int) {
	c.meetings[meetingKey(homeTeam, awayTeam)] = n
}

// Merge overlays other on top of c; entries in other win
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	for k, v := range other.stats {
		c.stats[k] = v
	}
	for k, v := range other.tactics {
		c.tactics[k] = v
	}
	for k, v := range other.objectives {
		c.objectives[k] = v
	}
	for k, v := range other.managers {
		c.managers[k] = v
	}
	for k, v := range other.keyPlayers {
		c.keyPlayers[k] = v
	}
	for k, v := range other.meetings {
		c.meetings[k] = v
	}
}

func meetingKey(homeTeam, awayTeam string) string {
	return homeTeam + "-" + awayTeam
}

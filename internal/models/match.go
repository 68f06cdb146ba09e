package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultMatchday is used when a fixture does not carry its round number.
const DefaultMatchday = 20

// Match represents a scheduled fixture supplied by the ingestion layer
type Match struct {
	ID       uuid.UUID `json:"id"`
	HomeTeam string    `json:"home_team" validate:"required"`
	AwayTeam string    `json:"away_team" validate:"required,nefield=HomeTeam"`
	League   string    `json:"league"`
	Kickoff  time.Time `json:"kickoff"`
	Venue    string    `json:"venue,omitempty"`
	Matchday int       `json:"matchday,omitempty" validate:"gte=0,lte=60"`
}

// NewMatch creates a match with a fresh ID
func NewMatch(homeTeam, awayTeam, league string, kickoff time.Time) Match {
	return Match{
		ID:       uuid.New(),
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
		League:   league,
		Kickoff:  kickoff,
	}
}

// EffectiveMatchday returns the matchday, falling back to DefaultMatchday
func (m Match) EffectiveMatchday() int {
	if m.Matchday <= 0 {
		return DefaultMatchday
	}
	return m.Matchday
}

// String returns a short human readable fixture label
func (m Match) String() string {
	return fmt.Sprintf("%s vs %s", m.HomeTeam, m.AwayTeam)
}

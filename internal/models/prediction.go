package models

import "math"

// ExpectedGoals holds the goal expectancy for each side
type ExpectedGoals struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// Total returns the combined goal expectancy
func (e ExpectedGoals) Total() float64 {
	return e.Home + e.Away
}

// Prediction represents a three-way outcome distribution for a fixture
type Prediction struct {
	HomeWin       float64       `json:"home_win" validate:"gte=0,lte=1"`
	Draw          float64       `json:"draw" validate:"gte=0,lte=1"`
	AwayWin       float64       `json:"away_win" validate:"gte=0,lte=1"`
	Confidence    float64       `json:"confidence" validate:"gte=0,lte=1"`
	ExpectedGoals ExpectedGoals `json:"expected_goals"`
}

// Sum returns homeWin + draw + awayWin
func (p Prediction) Sum() float64 {
	return p.HomeWin + p.Draw + p.AwayWin
}

// MostLikely returns the outcome code (H, D or A) with the highest probability
func (p Prediction) MostLikely() string {
	switch {
	case p.HomeWin >= p.Draw && p.HomeWin >= p.AwayWin:
		return OutcomeHome
	case p.AwayWin >= p.Draw:
		return OutcomeAway
	default:
		return OutcomeDraw
	}
}

// IsFinite reports whether every numeric field is a real number
func (p Prediction) IsFinite() bool {
	for _, v := range []float64{p.HomeWin, p.Draw, p.AwayWin, p.Confidence, p.ExpectedGoals.Home, p.ExpectedGoals.Away} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Outcome codes used by half-time/full-time markets
const (
	OutcomeHome = "H"
	OutcomeDraw = "D"
	OutcomeAway = "A"
)

package models

// Result is a single match result from a team's point of view
type Result string

// Result values
const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

// Record is a win/draw/loss tally
type Record struct {
	Wins   int `json:"wins" validate:"gte=0"`
	Draws  int `json:"draws" validate:"gte=0"`
	Losses int `json:"losses" validate:"gte=0"`
}

// Played returns the number of matches in the record
func (r Record) Played() int {
	return r.Wins + r.Draws + r.Losses
}

// WinRate returns wins/played, 0 for an empty record
func (r Record) WinRate() float64 {
	if r.Played() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Played())
}

// TeamStats is the static strength profile of a team
type TeamStats struct {
	AttackingRating float64  `json:"attacking_rating"`
	DefensiveRating float64  `json:"defensive_rating"`
	Form            []Result `json:"form"` // most recent first
	HomeRecord      Record   `json:"home_record"`
	AwayRecord      Record   `json:"away_record"`
	Elo             float64  `json:"elo,omitempty"`
}

// MatchesPlayed returns the combined home and away sample size
func (s TeamStats) MatchesPlayed() int {
	return s.HomeRecord.Played() + s.AwayRecord.Played()
}

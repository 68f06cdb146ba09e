package models

// Double result keys, half-time outcome first
const (
	DoubleHomeHome = "HH"
	DoubleHomeDraw = "HD"
	DoubleHomeAway = "HA"
	DoubleDrawHome = "DH"
	DoubleDrawDraw = "DD"
	DoubleDrawAway = "DA"
	DoubleAwayHome = "AH"
	DoubleAwayDraw = "AD"
	DoubleAwayAway = "AA"
)

// OutcomeDistribution is a three-way distribution that is not required to sum to 1
type OutcomeDistribution struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

// Sum returns the total mass of the distribution
func (o OutcomeDistribution) Sum() float64 {
	return o.HomeWin + o.Draw + o.AwayWin
}

// GoalLine is an over/under market at Line goals
type GoalLine struct {
	Line  float64 `json:"line"`
	Over  float64 `json:"over"`
	Under float64 `json:"under"`
}

// BettingMarketPrediction holds every probability derived from one base prediction
type BettingMarketPrediction struct {
	// Double chance
	HomeOrDraw float64 `json:"home_or_draw"`
	AwayOrDraw float64 `json:"away_or_draw"`
	HomeOrAway float64 `json:"home_or_away"`

	// Over/under
	Over15Goals  float64    `json:"over_15_goals"`
	Over25Goals  float64    `json:"over_25_goals"`
	Over35Goals  float64    `json:"over_35_goals"`
	Under15Goals float64    `json:"under_15_goals"`
	Under25Goals float64    `json:"under_25_goals"`
	Under35Goals float64    `json:"under_35_goals"`
	GoalLines    []GoalLine `json:"goal_lines"`

	// Both teams to score
	BothTeamsScore   float64 `json:"both_teams_score"`
	BothTeamsNoScore float64 `json:"both_teams_no_score"`

	// Correct score keyed "home-away"
	CorrectScoreProbabilities map[string]float64 `json:"correct_score_probabilities"`

	// Asian handicap keyed by line label ("-2" ... "+2")
	HomeHandicap map[string]float64 `json:"home_handicap"`
	AwayHandicap map[string]float64 `json:"away_handicap"`

	HalfTime     OutcomeDistribution `json:"half_time"`
	DoubleResult map[string]float64  `json:"double_result"`
}

// GoalLineAt returns the over/under market for line, if derived
func (b *BettingMarketPrediction) GoalLineAt(line float64) (GoalLine, bool) {
	for _, gl := range b.GoalLines {
		if gl.Line == line {
			return gl, true
		}
	}
	return GoalLine{}, false
}

package models

// Position is a player's broad on-pitch role
type Position string

// Positions
const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// InjuryType is the severity of an absence
type InjuryType string

// Injury severities
const (
	InjuryMinor    InjuryType = "minor"
	InjuryModerate InjuryType = "moderate"
	InjuryMajor    InjuryType = "major"
)

// InjuryTypes lists every severity in ascending order
var InjuryTypes = []InjuryType{InjuryMinor, InjuryModerate, InjuryMajor}

// KeyPlayer is a player whose absence moves the outcome distribution
type KeyPlayer struct {
	PlayerID   string   `json:"player_id"`
	PlayerName string   `json:"player_name"`
	Position   Position `json:"position"`
	Importance float64  `json:"importance"`
}

// PlayerInjury is a key player ruled out for the fixture
type PlayerInjury struct {
	KeyPlayer
	InjuryType     InjuryType `json:"injury_type"`
	ExpectedReturn string     `json:"expected_return,omitempty"`
}

// TeamInjuries summarises the absences of one team
type TeamInjuries struct {
	Team          string         `json:"team"`
	Injuries      []PlayerInjury `json:"injuries"`
	TotalImpact   float64        `json:"total_impact"`
	KeyPlayersOut int            `json:"key_players_out"`
}

package models

// Objective is a team's primary aim for the season
type Objective string

// Primary objectives
const (
	ObjectiveTitle    Objective = "title"
	ObjectiveTop4     Objective = "top4"
	ObjectiveEuropa   Objective = "europa"
	ObjectiveSurvival Objective = "survival"
	ObjectiveMidtable Objective = "midtable"
)

// SecondaryObjective is a team's secondary aim for the season
type SecondaryObjective string

// Secondary objectives
const (
	SecondaryCup         SecondaryObjective = "cup"
	SecondaryDevelopment SecondaryObjective = "development"
	SecondaryStability   SecondaryObjective = "stability"
)

// TeamObjectives is the static season intent of a team
type TeamObjectives struct {
	Primary       Objective          `json:"primary"`
	Secondary     SecondaryObjective `json:"secondary"`
	Urgency       float64            `json:"urgency"`
	RiskTolerance float64            `json:"risk_tolerance"`
}

// ManagerProfile describes the manager of a team
type ManagerProfile struct {
	Experience          float64 `json:"experience"`
	Stability           float64 `json:"stability"`
	TacticalFlexibility float64 `json:"tactical_flexibility"`
	PressureHandling    float64 `json:"pressure_handling"`
}

// MatchImportance buckets how much a fixture matters to a team
type MatchImportance string

// Importance buckets
const (
	ImportanceLow      MatchImportance = "low"
	ImportanceMedium   MatchImportance = "medium"
	ImportanceHigh     MatchImportance = "high"
	ImportanceCritical MatchImportance = "critical"
)

// Level maps the bucket to 1..4
func (m MatchImportance) Level() int {
	switch m {
	case ImportanceLow:
		return 1
	case ImportanceHigh:
		return 3
	case ImportanceCritical:
		return 4
	default:
		return 2
	}
}

// SeasonPhase is the stage of the season a matchday falls in
type SeasonPhase string

// Season phases
const (
	PhaseEarly SeasonPhase = "early"
	PhaseMid   SeasonPhase = "mid"
	PhaseLate  SeasonPhase = "late"
	PhaseFinal SeasonPhase = "final"
)

// StrategicContext is recomputed for every prediction request
type StrategicContext struct {
	LeaguePosition      int             `json:"league_position"`
	PointsGap           int             `json:"points_gap"`
	MatchImportance     MatchImportance `json:"match_importance"`
	SeasonPhase         SeasonPhase     `json:"season_phase"`
	CompetitionPressure float64         `json:"competition_pressure"`
	ManagerialStability float64         `json:"managerial_stability"`
}

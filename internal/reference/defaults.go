package reference

import "github.com/yourusername/matchcast/internal/models"

const (
	win  = models.ResultWin
	draw = models.ResultDraw
	loss = models.ResultLoss
)

// Default returns the built-in reference tables
func Default() *Catalog {
	c := NewCatalog()

	for team, s := range defaultStats {
		c.SetStats(team, s)
	}
	for team, t := range defaultTactics {
		c.SetTactics(team, t)
	}
	for team, o := range defaultObjectives {
		c.SetObjectives(team, o)
	}
	for team, m := range defaultManagers {
		c.SetManager(team, m)
	}
	for team, players := range defaultKeyPlayers {
		c.SetKeyPlayers(team, players)
	}
	return c
}

func rec(w, d, l int) models.Record {
	return models.Record{Wins: w, Draws: d, Losses: l}
}

var defaultStats = map[string]models.TeamStats{
	"Manchester City":        {AttackingRating: 94, DefensiveRating: 89, Form: []models.Result{win, win, draw, win, win}, HomeRecord: rec(10, 1, 0), AwayRecord: rec(7, 3, 1)},
	"Arsenal":                {AttackingRating: 88, DefensiveRating: 87, Form: []models.Result{win, win, loss, win, draw}, HomeRecord: rec(9, 1, 1), AwayRecord: rec(6, 3, 2)},
	"Liverpool":              {AttackingRating: 90, DefensiveRating: 85, Form: []models.Result{win, win, loss, win, win}, HomeRecord: rec(8, 2, 1), AwayRecord: rec(6, 3, 2)},
	"Chelsea":                {AttackingRating: 80, DefensiveRating: 78, Form: []models.Result{draw, win, loss, win, loss}, HomeRecord: rec(6, 3, 2), AwayRecord: rec(4, 3, 4)},
	"Manchester United":      {AttackingRating: 78, DefensiveRating: 76, Form: []models.Result{loss, win, draw, loss, win}, HomeRecord: rec(6, 2, 3), AwayRecord: rec(4, 2, 5)},
	"Tottenham":              {AttackingRating: 82, DefensiveRating: 74, Form: []models.Result{win, loss, win, draw, loss}, HomeRecord: rec(7, 2, 2), AwayRecord: rec(4, 3, 4)},
	"Newcastle":              {AttackingRating: 79, DefensiveRating: 80, Form: []models.Result{win, draw, win, loss, draw}, HomeRecord: rec(7, 3, 1), AwayRecord: rec(3, 4, 4)},
	"Brighton":               {AttackingRating: 76, DefensiveRating: 72, Form: []models.Result{draw, loss, win, draw, win}, HomeRecord: rec(5, 4, 2), AwayRecord: rec(3, 4, 4)},
	"Luton Town":             {AttackingRating: 64, DefensiveRating: 60, Form: []models.Result{loss, loss, draw, loss, win}, HomeRecord: rec(3, 3, 5), AwayRecord: rec(1, 2, 8)},
	"Real Madrid":            {AttackingRating: 92, DefensiveRating: 88, Form: []models.Result{win, win, win, loss, win}, HomeRecord: rec(10, 1, 0), AwayRecord: rec(7, 2, 2)},
	"Barcelona":              {AttackingRating: 89, DefensiveRating: 82, Form: []models.Result{win, loss, win, win, win}, HomeRecord: rec(9, 2, 0), AwayRecord: rec(6, 3, 2)},
	"Bayern Munich":          {AttackingRating: 91, DefensiveRating: 86, Form: []models.Result{win, win, win, win, loss}, HomeRecord: rec(9, 1, 1), AwayRecord: rec(8, 2, 1)},
	"Borussia Dortmund":      {AttackingRating: 84, DefensiveRating: 79, Form: []models.Result{win, loss, win, win, loss}, HomeRecord: rec(7, 3, 1), AwayRecord: rec(5, 2, 4)},
	"Inter Milan":            {AttackingRating: 86, DefensiveRating: 88, Form: []models.Result{win, win, draw, win, win}, HomeRecord: rec(8, 2, 1), AwayRecord: rec(6, 4, 1)},
	"Juventus":               {AttackingRating: 82, DefensiveRating: 85, Form: []models.Result{draw, win, win, loss, win}, HomeRecord: rec(7, 3, 1), AwayRecord: rec(5, 3, 3)},
	"Paris Saint-Germain":    {AttackingRating: 90, DefensiveRating: 83, Form: []models.Result{win, win, win, loss, win}, HomeRecord: rec(9, 1, 1), AwayRecord: rec(7, 2, 2)},
	"Olympique de Marseille": {AttackingRating: 78, DefensiveRating: 76, Form: []models.Result{win, loss, win, draw, win}, HomeRecord: rec(6, 3, 2), AwayRecord: rec(4, 3, 4)},
}

var defaultTactics = map[string]models.TacticalProfile{
	"Manchester City": {
		Formation:      models.Formation433,
		AttackingStyle: models.AttackPossession,
		DefensiveStyle: models.DefendHighLine,
		Tempo:          models.TempoMedium,
		Width:          models.WidthWide,
	},
	"Liverpool": {
		Formation:      models.Formation433,
		AttackingStyle: models.AttackPressing,
		DefensiveStyle: models.DefendPressing,
		Tempo:          models.TempoFast,
		Width:          models.WidthWide,
	},
	"Arsenal": {
		Formation:      models.Formation4231,
		AttackingStyle: models.AttackPossession,
		DefensiveStyle: models.DefendHighLine,
		Tempo:          models.TempoMedium,
		Width:          models.WidthBalanced,
	},
	"Chelsea": {
		Formation:      models.Formation343,
		AttackingStyle: models.AttackCounter,
		DefensiveStyle: models.DefendCompact,
		Tempo:          models.TempoMedium,
		Width:          models.WidthWide,
	},
	"Manchester United": {
		Formation:      models.Formation4231,
		AttackingStyle: models.AttackCounter,
		DefensiveStyle: models.DefendDeepBlock,
		Tempo:          models.TempoMedium,
		Width:          models.WidthBalanced,
	},
	"Tottenham": {
		Formation:      models.Formation352,
		AttackingStyle: models.AttackDirect,
		DefensiveStyle: models.DefendPressing,
		Tempo:          models.TempoFast,
		Width:          models.WidthWide,
	},
}

var defaultObjectives = map[string]models.TeamObjectives{
	"Manchester City":   {Primary: models.ObjectiveTitle, Secondary: models.SecondaryCup, Urgency: 0.9, RiskTolerance: 0.7},
	"Arsenal":           {Primary: models.ObjectiveTitle, Secondary: models.SecondaryDevelopment, Urgency: 0.8, RiskTolerance: 0.6},
	"Liverpool":         {Primary: models.ObjectiveTop4, Secondary: models.SecondaryCup, Urgency: 0.7, RiskTolerance: 0.8},
	"Chelsea":           {Primary: models.ObjectiveTop4, Secondary: models.SecondaryStability, Urgency: 0.6, RiskTolerance: 0.5},
	"Manchester United": {Primary: models.ObjectiveTop4, Secondary: models.SecondaryDevelopment, Urgency: 0.7, RiskTolerance: 0.6},
	"Newcastle":         {Primary: models.ObjectiveEuropa, Secondary: models.SecondaryDevelopment, Urgency: 0.5, RiskTolerance: 0.4},
	"Brighton":          {Primary: models.ObjectiveMidtable, Secondary: models.SecondaryDevelopment, Urgency: 0.3, RiskTolerance: 0.6},
	"Luton Town":        {Primary: models.ObjectiveSurvival, Secondary: models.SecondaryStability, Urgency: 0.9, RiskTolerance: 0.9},
}

var defaultManagers = map[string]models.ManagerProfile{
	"Manchester City": {Experience: 0.95, Stability: 0.9, TacticalFlexibility: 0.9, PressureHandling: 0.85},
	"Arsenal":         {Experience: 0.7, Stability: 0.8, TacticalFlexibility: 0.8, PressureHandling: 0.7},
	"Liverpool":       {Experience: 0.9, Stability: 0.85, TacticalFlexibility: 0.75, PressureHandling: 0.9},
}

var defaultKeyPlayers = map[string][]models.KeyPlayer{
	"Manchester City": {
		{PlayerID: "haaland", PlayerName: "Erling Haaland", Position: models.PositionForward, Importance: 0.9},
		{PlayerID: "debruyne", PlayerName: "Kevin De Bruyne", Position: models.PositionMidfielder, Importance: 0.85},
		{PlayerID: "rodri", PlayerName: "Rodri", Position: models.PositionMidfielder, Importance: 0.8},
	},
	"Arsenal": {
		{PlayerID: "saka", PlayerName: "Bukayo Saka", Position: models.PositionForward, Importance: 0.85},
		{PlayerID: "odegaard", PlayerName: "Martin Ødegaard", Position: models.PositionMidfielder, Importance: 0.8},
		{PlayerID: "saliba", PlayerName: "William Saliba", Position: models.PositionDefender, Importance: 0.75},
	},
	"Liverpool": {
		{PlayerID: "salah", PlayerName: "Mohamed Salah", Position: models.PositionForward, Importance: 0.9},
		{PlayerID: "vanDijk", PlayerName: "Virgil van Dijk", Position: models.PositionDefender, Importance: 0.85},
		{PlayerID: "alisson", PlayerName: "Alisson", Position: models.PositionGoalkeeper, Importance: 0.8},
	},
}

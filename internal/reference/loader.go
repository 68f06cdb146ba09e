package reference

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/yourusername/matchcast/internal/models"
)

// File is the on-disk layout of a reference data overlay
type File struct {
	Teams    []TeamEntry    `mapstructure:"teams" validate:"dive"`
	Meetings []MeetingEntry `mapstructure:"meetings" validate:"dive"`
}

// TeamEntry carries every table row for one team; each section is optional
type TeamEntry struct {
	Name       string           `mapstructure:"name" validate:"required"`
	Stats      *StatsEntry      `mapstructure:"stats" validate:"omitempty"`
	Tactics    *TacticsEntry    `mapstructure:"tactics" validate:"omitempty"`
	Objectives *ObjectivesEntry `mapstructure:"objectives" validate:"omitempty"`
	Manager    *ManagerEntry    `mapstructure:"manager" validate:"omitempty"`
	KeyPlayers []KeyPlayerEntry `mapstructure:"key_players" validate:"dive"`
}

// StatsEntry is the YAML form of models.TeamStats
type StatsEntry struct {
	AttackingRating float64     `mapstructure:"attacking_rating" validate:"gte=0,lte=100"`
	DefensiveRating float64     `mapstructure:"defensive_rating" validate:"gt=0,lte=100"`
	Form            []string    `mapstructure:"form" validate:"max=10,dive,oneof=W D L"`
	HomeRecord      RecordEntry `mapstructure:"home_record"`
	AwayRecord      RecordEntry `mapstructure:"away_record"`
	Elo             float64     `mapstructure:"elo" validate:"gte=0"`
}

// RecordEntry is the YAML form of models.Record
type RecordEntry struct {
	Wins   int `mapstructure:"wins" validate:"gte=0"`
	Draws  int `mapstructure:"draws" validate:"gte=0"`
	Losses int `mapstructure:"losses" validate:"gte=0"`
}

// TacticsEntry is the YAML form of models.TacticalProfile
type TacticsEntry struct {
	Formation      string `mapstructure:"formation" validate:"required"`
	AttackingStyle string `mapstructure:"attacking_style" validate:"required"`
	DefensiveStyle string `mapstructure:"defensive_style" validate:"required"`
	Tempo          string `mapstructure:"tempo" validate:"required"`
	Width          string `mapstructure:"width" validate:"required"`
}

// ObjectivesEntry is the YAML form of models.TeamObjectives
type ObjectivesEntry struct {
	Primary       string  `mapstructure:"primary" validate:"required,oneof=title top4 europa survival midtable"`
	Secondary     string  `mapstructure:"secondary" validate:"omitempty,oneof=cup development stability"`
	Urgency       float64 `mapstructure:"urgency" validate:"gte=0,lte=1"`
	RiskTolerance float64 `mapstructure:"risk_tolerance" validate:"gte=0,lte=1"`
}

// ManagerEntry is the YAML form of models.ManagerProfile
type ManagerEntry struct {
	Experience          float64 `mapstructure:"experience" validate:"gte=0,lte=1"`
	Stability           float64 `mapstructure:"stability" validate:"gte=0,lte=1"`
	TacticalFlexibility float64 `mapstructure:"tactical_flexibility" validate:"gte=0,lte=1"`
	PressureHandling    float64 `mapstructure:"pressure_handling" validate:"gte=0,lte=1"`
}

// KeyPlayerEntry is the YAML form of models.KeyPlayer
type KeyPlayerEntry struct {
	ID         string  `mapstructure:"id" validate:"required"`
	Name       string  `mapstructure:"name" validate:"required"`
	Position   string  `mapstructure:"position" validate:"required,oneof=GK DEF MID FWD"`
	Importance float64 `mapstructure:"importance" validate:"gte=0,lte=1"`
}

// MeetingEntry records previous tactical meetings of a fixture
type MeetingEntry struct {
	Home  string `mapstructure:"home" validate:"required"`
	Away  string `mapstructure:"away" validate:"required"`
	Count int    `mapstructure:"count" validate:"gte=0"`
}

// LoadFile reads a YAML overlay and returns the built-in tables with the
// overlay applied. Environment placeholders (${VAR}) are expanded first.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse reference file: %w", err)
	}

	file := &File{}
	if err := v.Unmarshal(file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reference file: %w", err)
	}

	overlay, err := file.Catalog()
	if err != nil {
		return nil, err
	}

	catalog := Default()
	catalog.Merge(overlay)
	return catalog, nil
}

// Catalog validates the file and converts it into a catalog
func (f *File) Catalog() (*Catalog, error) {
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("reference validation failed: %w", err)
	}

	c := NewCatalog()
	for _, team := range f.Teams {
		if team.Stats != nil {
			c.SetStats(team.Name, team.Stats.toModel())
		}
		if team.Tactics != nil {
			profile, err := team.Tactics.toModel()
			if err != nil {
				return nil, fmt.Errorf("team %s: %w", team.Name, err)
			}
			c.SetTactics(team.Name, profile)
		}
		if team.Objectives != nil {
			c.SetObjectives(team.Name, models.TeamObjectives{
				Primary:       models.Objective(team.Objectives.Primary),
				Secondary:     models.SecondaryObjective(team.Objectives.Secondary),
				Urgency:       team.Objectives.Urgency,
				RiskTolerance: team.Objectives.RiskTolerance,
			})
		}
		if team.Manager != nil {
			c.SetManager(team.Name, models.ManagerProfile{
				Experience:          team.Manager.Experience,
				Stability:           team.Manager.Stability,
				TacticalFlexibility: team.Manager.TacticalFlexibility,
				PressureHandling:    team.Manager.PressureHandling,
			})
		}
		if len(team.KeyPlayers) > 0 {
			players := make([]models.KeyPlayer, 0, len(team.KeyPlayers))
			for _, p := range team.KeyPlayers {
				players = append(players, models.KeyPlayer{
					PlayerID:   p.ID,
					PlayerName: p.Name,
					Position:   models.Position(p.Position),
					Importance: p.Importance,
				})
			}
			c.SetKeyPlayers(team.Name, players)
		}
	}
	for _, m := range f.Meetings {
		c.SetMeetings(m.Home, m.Away, m.Count)
	}
	return c, nil
}

func (s *StatsEntry) toModel() models.TeamStats {
	form := make([]models.Result, 0, len(s.Form))
	for _, r := range s.Form {
		form = append(form, models.Result(r))
	}
	return models.TeamStats{
		AttackingRating: s.AttackingRating,
		DefensiveRating: s.DefensiveRating,
		Form:            form,
		HomeRecord:      models.Record(s.HomeRecord),
		AwayRecord:      models.Record(s.AwayRecord),
		Elo:             s.Elo,
	}
}

func (t *TacticsEntry) toModel() (models.TacticalProfile, error) {
	formation, err := models.ParseFormation(t.Formation)
	if err != nil {
		return models.TacticalProfile{}, err
	}
	attacking, err := models.ParseAttackingStyle(t.AttackingStyle)
	if err != nil {
		return models.TacticalProfile{}, err
	}
	defensive, err := models.ParseDefensiveStyle(t.DefensiveStyle)
	if err != nil {
		return models.TacticalProfile{}, err
	}
	tempo, err := models.ParseTempo(t.Tempo)
	if err != nil {
		return models.TacticalProfile{}, err
	}
	width, err := models.ParseWidth(t.Width)
	if err != nil {
		return models.TacticalProfile{}, err
	}
	return models.TacticalProfile{
		Formation:      formation,
		AttackingStyle: attacking,
		DefensiveStyle: defensive,
		Tempo:          tempo,
		Width:          width,
	}, nil
}

package models

import "fmt"

// Formation is a closed set of supported team shapes
type Formation int

// Supported formations
const (
	Formation433 Formation = iota
	Formation442
	Formation352
	Formation4231
	Formation343
	formationCount
)

// FormationCount is the number of supported formations
const FormationCount = int(formationCount)

var formationNames = [...]string{"4-3-3", "4-4-2", "3-5-2", "4-2-3-1", "3-4-3"}

func (f Formation) String() string {
	if f < 0 || f >= formationCount {
		return fmt.Sprintf("Formation(%d)", int(f))
	}
	return formationNames[f]
}

// ParseFormation parses a formation label such as "4-3-3"
func ParseFormation(s string) (Formation, error) {
	for i, name := range formationNames {
		if name == s {
			return Formation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown formation %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (f Formation) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Formation) UnmarshalText(b []byte) error {
	v, err := ParseFormation(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// AttackingStyle describes how a team builds attacks
type AttackingStyle int

// Attacking styles
const (
	AttackPossession AttackingStyle = iota
	AttackCounter
	AttackDirect
	AttackPressing
)

var attackingNames = [...]string{"possession", "counter", "direct", "pressing"}

func (s AttackingStyle) String() string {
	if s < 0 || int(s) >= len(attackingNames) {
		return fmt.Sprintf("AttackingStyle(%d)", int(s))
	}
	return attackingNames[s]
}

// ParseAttackingStyle parses an attacking style label
func ParseAttackingStyle(s string) (AttackingStyle, error) {
	for i, name := range attackingNames {
		if name == s {
			return AttackingStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown attacking style %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (s AttackingStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// DefensiveStyle describes how a team defends without the ball
type DefensiveStyle int

// Defensive styles
const (
	DefendHighLine DefensiveStyle = iota
	DefendDeepBlock
	DefendPressing
	DefendCompact
)

var defensiveNames = [...]string{"high-line", "deep-block", "pressing", "compact"}

func (s DefensiveStyle) String() string {
	if s < 0 || int(s) >= len(defensiveNames) {
		return fmt.Sprintf("DefensiveStyle(%d)", int(s))
	}
	return defensiveNames[s]
}

// ParseDefensiveStyle parses a defensive style label
func ParseDefensiveStyle(s string) (DefensiveStyle, error) {
	for i, name := range defensiveNames {
		if name == s {
			return DefensiveStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown defensive style %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (s DefensiveStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Tempo is the speed a team plays at
type Tempo int

// Tempo values
const (
	TempoSlow Tempo = iota
	TempoMedium
	TempoFast
)

var tempoNames = [...]string{"slow", "medium", "fast"}

func (t Tempo) String() string {
	if t < 0 || int(t) >= len(tempoNames) {
		return fmt.Sprintf("Tempo(%d)", int(t))
	}
	return tempoNames[t]
}

// ParseTempo parses a tempo label
func ParseTempo(s string) (Tempo, error) {
	for i, name := range tempoNames {
		if name == s {
			return Tempo(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tempo %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (t Tempo) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Width is how wide a team stretches the pitch in possession
type Width int

// Width values
const (
	WidthNarrow Width = iota
	WidthBalanced
	WidthWide
)

var widthNames = [...]string{"narrow", "balanced", "wide"}

func (w Width) String() string {
	if w < 0 || int(w) >= len(widthNames) {
		return fmt.Sprintf("Width(%d)", int(w))
	}
	return widthNames[w]
}

// ParseWidth parses a width label
func ParseWidth(s string) (Width, error) {
	for i, name := range widthNames {
		if name == s {
			return Width(i), nil
		}
	}
	return 0, fmt.Errorf("unknown width %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (w Width) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// TacticalProfile is a team's static tactical identity
type TacticalProfile struct {
	Formation      Formation      `json:"formation"`
	AttackingStyle AttackingStyle `json:"attacking_style"`
	DefensiveStyle DefensiveStyle `json:"defensive_style"`
	Tempo          Tempo          `json:"tempo"`
	Width          Width          `json:"width"`
}

// TacticalMatchup holds the matchup factors derived from two profiles
type TacticalMatchup struct {
	HomeAdvantage          float64 `json:"home_advantage"`
	StyleClash             float64 `json:"style_clash"`
	FormationEffectiveness float64 `json:"formation_effectiveness"`
	TacticalFamiliarity    float64 `json:"tactical_familiarity"`
	// Known is false when either side has no profile; the matchup then
	// carries no advantage.
	Known bool `json:"known"`
}

// TotalAdvantage returns the advantage applied to the home side
func (m TacticalMatchup) TotalAdvantage() float64 {
	if !m.Known {
		return 0
	}
	return m.HomeAdvantage + m.StyleClash + m.FormationEffectiveness
}

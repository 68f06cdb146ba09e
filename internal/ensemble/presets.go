package ensemble

import (
	"fmt"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

// Preset names
const (
	PresetBalanced     = "balanced"
	PresetConservative = "conservative"
	PresetAggressive   = "aggressive"
	PresetDefault      = "default"
	PresetConfidence   = "confidence"
)

// PresetInfo describes a named weight configuration
type PresetInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weights     Weights `json:"weights"`
}

var modelCatalog = []models.ModelInfo{
	{Name: outcome.NameStatistical, Description: "Statistical analysis of goal scoring patterns", BestFor: "Over/Under goals predictions", DefaultWeight: 0.20},
	{Name: outcome.NameRating, Description: "Dynamic team strength ratings", BestFor: "Head-to-head comparisons", DefaultWeight: 0.15},
	{Name: outcome.NamePattern, Description: "Recent form and venue record patterns", BestFor: "Complex multi-factor analysis", DefaultWeight: 0.25},
	{Name: outcome.NameTactical, Description: "Formation and playing style analysis", BestFor: "Style clash predictions", DefaultWeight: 0.15},
	{Name: outcome.NameStrategic, Description: "Motivation and context factors", BestFor: "High-stakes matches", DefaultWeight: 0.10},
	{Name: outcome.NameWeather, Description: "Environmental impact analysis", BestFor: "Outdoor conditions", DefaultWeight: 0.05},
	{Name: outcome.NameInjury, Description: "Player availability impact", BestFor: "Key player absences", DefaultWeight: 0.10},
	{Name: outcome.NameMarket, Description: "Bookmaker prices with the margin removed", BestFor: "Liquid, heavily traded fixtures", DefaultWeight: 0},
}

var presets = []PresetInfo{
	{
		Name:        PresetBalanced,
		Description: "Equal weighting across all models",
		Weights:     balancedWeights(),
	},
	{
		Name:        PresetConservative,
		Description: "Favour statistical and historical models",
		Weights: Weights{
			outcome.NameStatistical: 0.30,
			outcome.NameRating:      0.25,
			outcome.NamePattern:     0.20,
			outcome.NameTactical:    0.10,
			outcome.NameStrategic:   0.05,
			outcome.NameWeather:     0.05,
			outcome.NameInjury:      0.05,
			outcome.NameMarket:      0,
		},
	},
	{
		Name:        PresetAggressive,
		Description: "Emphasise pattern and contextual factors",
		Weights: Weights{
			outcome.NameStatistical: 0.05,
			outcome.NameRating:      0.05,
			outcome.NamePattern:     0.35,
			outcome.NameTactical:    0.20,
			outcome.NameStrategic:   0.15,
			outcome.NameWeather:     0.10,
			outcome.NameInjury:      0.10,
			outcome.NameMarket:      0,
		},
	},
	{
		Name:        PresetDefault,
		Description: "Per-model default weights",
		Weights:     defaultWeights(),
	},
	{
		Name:        PresetConfidence,
		Description: "Weight every model by its own confidence",
		Weights:     nil,
	},
}

func balancedWeights() Weights {
	w := make(Weights, len(modelCatalog))
	for _, info := range modelCatalog {
		w[info.Name] = 1.0 / float64(len(modelCatalog))
	}
	return w
}

func defaultWeights() Weights {
	w := make(Weights, len(modelCatalog))
	for _, info := range modelCatalog {
		w[info.Name] = info.DefaultWeight
	}
	return w
}

// ModelCatalog returns the description and default weight of every model
func ModelCatalog() []models.ModelInfo {
	return append([]models.ModelInfo(nil), modelCatalog...)
}

// Presets returns every named preset
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presets))
	for i, p := range presets {
		out[i] = p
		out[i].Weights = p.Weights.Clone()
	}
	return out
}

// Preset returns a copy of the named preset's weights. The confidence preset
// returns nil weights.
func Preset(name string) (Weights, error) {
	for _, p := range presets {
		if p.Name == name {
			return p.Weights.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownPreset, name)
}

// PresetNames lists the preset names
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

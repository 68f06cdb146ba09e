package outcome

import (
	"context"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

// WeatherImpact holds the independent scalars weather rules produce
type WeatherImpact struct {
	GoalScoring   float64 `json:"goal_scoring"`
	HomeAdvantage float64 `json:"home_advantage"`
	PlayingStyle  float64 `json:"playing_style"`
}

// Impact applies the threshold rules to a forecast. Rules are additive and
// compound when several conditions hold.
func Impact(w models.WeatherConditions) WeatherImpact {
	var impact WeatherImpact

	switch {
	case w.Temperature < 5:
		impact.GoalScoring -= 0.15
		impact.HomeAdvantage += 0.05
	case w.Temperature > 30:
		impact.GoalScoring -= 0.10
		impact.PlayingStyle -= 0.10
	}

	if w.Precipitation > 5 {
		impact.GoalScoring += 0.10
		impact.PlayingStyle -= 0.15
		impact.HomeAdvantage += 0.08
	}

	if w.WindSpeed > 25 {
		impact.GoalScoring -= 0.05
		impact.PlayingStyle -= 0.10
	}

	if w.Visibility < 5 || w.Condition == models.ConditionFog {
		impact.GoalScoring -= 0.08
		impact.HomeAdvantage += 0.12
	}

	return impact
}

// WeatherModel adjusts the prior for conditions at the venue
type WeatherModel struct{}

// NewWeatherModel creates a weather impact model
func NewWeatherModel() *WeatherModel {
	return &WeatherModel{}
}

// Name returns the model name
func (m *WeatherModel) Name() string { return NameWeather }

// Predict returns the prior when no forecast is supplied
func (m *WeatherModel) Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error) {
	if in.Weather == nil {
		return probability.Prior(), nil
	}

	impact := Impact(*in.Weather)
	h, d, a := probability.Normalize(
		probability.PriorHomeWin+impact.HomeAdvantage+0.3*impact.GoalScoring,
		probability.PriorDraw-0.2*impact.GoalScoring,
		probability.PriorAwayWin-0.7*impact.HomeAdvantage,
	)

	return buildPrediction(h, d, a, 0.75, 1.3+impact.GoalScoring, 1.1-impact.HomeAdvantage), nil
}

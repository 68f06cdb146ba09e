package outcome

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

func TestImpactRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *models.WeatherConditions)
		want   WeatherImpact
	}{
		{name: "mild", mutate: func(w *models.WeatherConditions) {}, want: WeatherImpact{}},
		{name: "cold", mutate: func(w *models.WeatherConditions) { w.Temperature = 2 }, want: WeatherImpact{GoalScoring: -0.15, HomeAdvantage: 0.05}},
		{name: "heat", mutate: func(w *models.WeatherConditions) { w.Temperature = 33 }, want: WeatherImpact{GoalScoring: -0.10, PlayingStyle: -0.10}},
		{name: "rain", mutate: func(w *models.WeatherConditions) { w.Precipitation = 8 }, want: WeatherImpact{GoalScoring: 0.10, HomeAdvantage: 0.08, PlayingStyle: -0.15}},
		{name: "wind", mutate: func(w *models.WeatherConditions) { w.WindSpeed = 30 }, want: WeatherImpact{GoalScoring: -0.05, PlayingStyle: -0.10}},
		{name: "fog", mutate: func(w *models.WeatherConditions) { w.Condition = models.ConditionFog }, want: WeatherImpact{GoalScoring: -0.08, HomeAdvantage: 0.12}},
		{name: "low visibility", mutate: func(w *models.WeatherConditions) { w.Visibility = 3 }, want: WeatherImpact{GoalScoring: -0.08, HomeAdvantage: 0.12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := models.MildWeather()
			tt.mutate(&w)
			got := Impact(w)
			assert.InDelta(t, tt.want.GoalScoring, got.GoalScoring, 1e-12)
			assert.InDelta(t, tt.want.HomeAdvantage, got.HomeAdvantage, 1e-12)
			assert.InDelta(t, tt.want.PlayingStyle, got.PlayingStyle, 1e-12)
		})
	}
}

func TestImpactRulesCompound(t *testing.T) {
	w := models.WeatherConditions{Temperature: 1, WindSpeed: 40, Precipitation: 10, Visibility: 2, Condition: models.ConditionSnow}
	got := Impact(w)

	assert.InDelta(t, -0.15+0.10-0.05-0.08, got.GoalScoring, 1e-12)
	assert.InDelta(t, 0.05+0.08+0.12, got.HomeAdvantage, 1e-12)
	assert.InDelta(t, -0.15-0.10, got.PlayingStyle, 1e-12)
}

func TestImpactPrecipitationRaisesGoalScoring(t *testing.T) {
	base := models.MildWeather()
	for _, temperature := range []float64{-5, 15, 35} {
		dry, wet := base, base
		dry.Temperature, wet.Temperature = temperature, temperature
		dry.Precipitation, wet.Precipitation = 0, 10

		assert.Greater(t, Impact(wet).GoalScoring, Impact(dry).GoalScoring, "temperature %v", temperature)
	}
}

func TestWeatherModel(t *testing.T) {
	m := NewWeatherModel()
	match := fixture("Arsenal", "Chelsea")

	p, err := m.Predict(context.Background(), match, Inputs{})
	require.NoError(t, err)
	assert.Equal(t, probability.Prior(), p)

	mild := models.MildWeather()
	p, err = m.Predict(context.Background(), match, Inputs{Weather: &mild})
	require.NoError(t, err)
	assert.Equal(t, 0.75, p.Confidence)
	assert.InDelta(t, probability.PriorHomeWin, p.HomeWin, 1e-12)

	fog := models.MildWeather()
	fog.Condition = models.ConditionFog
	p, err = m.Predict(context.Background(), match, Inputs{Weather: &fog})
	require.NoError(t, err)
	assert.Greater(t, p.HomeWin, probability.PriorHomeWin)
	assert.InDelta(t, 1.22, p.ExpectedGoals.Home, 1e-12)
	assert.InDelta(t, 0.98, p.ExpectedGoals.Away, 1e-12)
}

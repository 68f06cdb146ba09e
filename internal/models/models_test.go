package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEffectiveMatchday(t *testing.T) {
	m := NewMatch("Arsenal", "Chelsea", "Premier League", time.Now())
	assert.Equal(t, DefaultMatchday, m.EffectiveMatchday())

	m.Matchday = 36
	assert.Equal(t, 36, m.EffectiveMatchday())
	assert.Equal(t, "Arsenal vs Chelsea", m.String())
}

func TestPredictionMostLikely(t *testing.T) {
	tests := []struct {
		name string
		p    Prediction
		want string
	}{
		{"home", Prediction{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.2}, OutcomeHome},
		{"draw", Prediction{HomeWin: 0.3, Draw: 0.4, AwayWin: 0.3}, OutcomeDraw},
		{"away", Prediction{HomeWin: 0.2, Draw: 0.3, AwayWin: 0.5}, OutcomeAway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.MostLikely())
		})
	}
}

func TestPredictionIsFinite(t *testing.T) {
	p := Prediction{HomeWin: 0.4, Draw: 0.3, AwayWin: 0.3, Confidence: 0.6}
	assert.True(t, p.IsFinite())
	assert.InDelta(t, 1.0, p.Sum(), 1e-12)

	p.ExpectedGoals.Home = math.NaN()
	assert.False(t, p.IsFinite())
}

func TestMarketDataImplied(t *testing.T) {
	m := MarketData{HomeOdds: 2.0, DrawOdds: 4.0, AwayOdds: 4.0}
	h, d, a := m.ImpliedProbabilities()
	assert.Equal(t, 0.5, h)
	assert.Equal(t, 0.25, d)
	assert.Equal(t, 0.25, a)
	assert.InDelta(t, 0.0, m.Overround(), 1e-12)
	assert.Equal(t, 0.5, m.SharpRatio())

	m.SharpMoney, m.PublicMoney = 300, 100
	assert.Equal(t, 0.75, m.SharpRatio())
}

func TestParseWeatherCondition(t *testing.T) {
	for _, c := range WeatherConditionValues {
		got, err := ParseWeatherCondition(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseWeatherCondition("hail")
	assert.Error(t, err)
}

func TestFormationText(t *testing.T) {
	f, err := ParseFormation("4-2-3-1")
	require.NoError(t, err)

	b, err := json.Marshal(struct {
		F Formation `json:"f"`
	}{f})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"4-2-3-1"}`, string(b))

	var back struct {
		F Formation `json:"f"`
	}
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, f, back.F)

	_, err = ParseFormation("2-3-5")
	assert.Error(t, err)
}

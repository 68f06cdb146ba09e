package outcome

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

func TestValidateOdds(t *testing.T) {
	valid := models.MarketData{HomeOdds: 2.1, DrawOdds: 3.4, AwayOdds: 3.6}
	assert.NoError(t, ValidateOdds(valid))

	tests := []struct {
		name  string
		data  models.MarketData
		field string
	}{
		{name: "even home price", data: models.MarketData{HomeOdds: 1, DrawOdds: 3.4, AwayOdds: 3.6}, field: "home_odds"},
		{name: "missing draw price", data: models.MarketData{HomeOdds: 2.1, AwayOdds: 3.6}, field: "draw_odds"},
		{name: "nan away price", data: models.MarketData{HomeOdds: 2.1, DrawOdds: 3.4, AwayOdds: math.NaN()}, field: "away_odds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOdds(tt.data)
			var invalid *models.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestMarketModelRejectsInvalidOdds(t *testing.T) {
	data := models.MarketData{HomeOdds: 0.5, DrawOdds: 3.4, AwayOdds: 3.6}
	_, err := NewMarketModel().Predict(context.Background(), fixture("Arsenal", "Chelsea"), Inputs{Market: &data})

	var invalid *models.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestEfficiency(t *testing.T) {
	fair := models.MarketData{HomeOdds: 2, DrawOdds: 4, AwayOdds: 4}
	assert.InDelta(t, 1.0, Efficiency(fair), 1e-12)

	margin := models.MarketData{HomeOdds: 1.9, DrawOdds: 3.5, AwayOdds: 3.8}
	assert.InDelta(t, 1-margin.Overround(), Efficiency(margin), 1e-12)
	assert.Less(t, Efficiency(margin), 1.0)

	assert.Equal(t, 0.0, Efficiency(models.MarketData{HomeOdds: 1.01, DrawOdds: 1.01, AwayOdds: 1.01}))
}

func TestAdjustments(t *testing.T) {
	publicFavourite := models.MarketData{HomeOdds: 1.6, DrawOdds: 4, AwayOdds: 5, SharpMoney: 10, PublicMoney: 90, Movement: models.MovementStable}
	assert.Equal(t, MarketAdjustments{Home: -0.05, Draw: 0.02, Away: 0.03}, Adjustments(publicFavourite))

	sharp := models.MarketData{HomeOdds: 1.6, DrawOdds: 4, AwayOdds: 5, SharpMoney: 90, PublicMoney: 10, Movement: models.MovementFalling}
	assert.Equal(t, MarketAdjustments{Home: 0.02}, Adjustments(sharp))

	rising := models.MarketData{HomeOdds: 2.6, DrawOdds: 3.2, AwayOdds: 2.8, SharpMoney: 5, PublicMoney: 95, Movement: models.MovementRising}
	assert.Equal(t, MarketAdjustments{Home: -0.02}, Adjustments(rising))
}

func TestSimulateMarketRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		data := SimulateMarket(rng)
		assert.True(t, data.HomeOdds >= 1.8 && data.HomeOdds < 3.8)
		assert.True(t, data.DrawOdds >= 3.0 && data.DrawOdds < 4.5)
		assert.True(t, data.AwayOdds >= 2.2 && data.AwayOdds < 4.7)
		assert.True(t, data.Volume >= 50000 && data.Volume < 250000)
		assert.Contains(t, []models.Movement{models.MovementRising, models.MovementFalling, models.MovementStable}, data.Movement)
		assert.Equal(t, SourceSimulated, data.Source)
		assert.NoError(t, ValidateOdds(data))
	}
}

func TestMarketModelReadsPrices(t *testing.T) {
	m := NewMarketModel()
	data := models.MarketData{HomeOdds: 1.5, DrawOdds: 4.2, AwayOdds: 6.5, Volume: 50000, Movement: models.MovementStable, SharpMoney: 50, PublicMoney: 50}

	p, err := m.Predict(context.Background(), fixture("Manchester City", "Brighton"), Inputs{Market: &data})
	require.NoError(t, err)
	assert.Greater(t, p.HomeWin, 0.6)
	assert.Greater(t, p.HomeWin, p.AwayWin)
	assert.InDelta(t, 0.7+0.2*Efficiency(data)+0.05, p.Confidence, 1e-12)
	assert.InDelta(t, 1.2+2*(p.HomeWin-0.33), p.ExpectedGoals.Home, 1e-12)

	// simulated when no prices are supplied
	p, err = m.Predict(context.Background(), fixture("Manchester City", "Brighton"), Inputs{Rand: rand.New(rand.NewSource(4))})
	require.NoError(t, err)
	assert.True(t, probability.IsNormalized(p))
}

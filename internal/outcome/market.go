package outcome

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

// SourceSimulated tags market data generated in-process
const SourceSimulated = "simulated"

// StreamMarket names the random stream of simulated bookmaker state
const StreamMarket = "market"

// Sharp-ratio thresholds above and below which one side of the money
// dominates the market
const (
	SharpDominance  = 0.7
	PublicDominance = 0.3
)

// ShortPrice is the home price under which the home side counts as favourite
const ShortPrice = 2.0

const fullVolume = 100000.0

// MarketAdjustments are the bias corrections applied after removing the
// bookmaker margin
type MarketAdjustments struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

// MarketModel reads the de-margined bookmaker prices
type MarketModel struct{}

// NewMarketModel creates a market consensus model
func NewMarketModel() *MarketModel {
	return &MarketModel{}
}

// Name returns the model name
func (m *MarketModel) Name() string { return NameMarket }

// ValidateOdds rejects prices that cannot be read as probabilities
func ValidateOdds(data models.MarketData) error {
	for _, q := range []struct {
		field string
		odds  float64
	}{
		{"home_odds", data.HomeOdds},
		{"draw_odds", data.DrawOdds},
		{"away_odds", data.AwayOdds},
	} {
		if math.IsNaN(q.odds) || math.IsInf(q.odds, 0) {
			return models.NewInvalidInputError(q.field, q.odds, "must be a finite number")
		}
		if q.odds <= 1 {
			return models.NewInvalidInputError(q.field, q.odds, "decimal odds must exceed 1")
		}
	}
	return nil
}

// Efficiency is 1 minus the overround, floored at 0
func Efficiency(data models.MarketData) float64 {
	return math.Max(0, 1-data.Overround())
}

// Adjustments derives bias corrections from the money split and price movement
func Adjustments(data models.MarketData) MarketAdjustments {
	var adj MarketAdjustments

	// public money over-backs short priced favourites
	if data.SharpRatio() < PublicDominance && data.HomeOdds < ShortPrice {
		adj.Home -= 0.05
		adj.Away += 0.03
		adj.Draw += 0.02
	}

	switch data.Movement {
	case models.MovementRising:
		adj.Home -= 0.02
	case models.MovementFalling:
		adj.Home += 0.02
	}

	return adj
}

// SimulateMarket draws plausible bookmaker state from rng
func SimulateMarket(rng *rand.Rand) models.MarketData {
	movements := []models.Movement{models.MovementRising, models.MovementFalling, models.MovementStable}
	return models.MarketData{
		HomeOdds:    1.8 + rng.Float64()*2.0,
		DrawOdds:    3.0 + rng.Float64()*1.5,
		AwayOdds:    2.2 + rng.Float64()*2.5,
		Volume:      50000 + rng.Float64()*200000,
		Movement:    movements[rng.Intn(len(movements))],
		SharpMoney:  rng.Float64() * 100000,
		PublicMoney: rng.Float64() * 500000,
		Source:      SourceSimulated,
	}
}

// Predict removes the overround, applies the bias corrections and scores
// confidence from market efficiency and volume
func (m *MarketModel) Predict(ctx context.Context, match models.Match, in Inputs) (models.Prediction, error) {
	var data models.MarketData
	if in.Market != nil {
		data = *in.Market
	} else {
		data = SimulateMarket(RandFor(in))
	}
	if err := ValidateOdds(data); err != nil {
		return models.Prediction{}, fmt.Errorf("market consensus for %s: %w", match, err)
	}

	h, d, a := data.ImpliedProbabilities()
	total := h + d + a
	adj := Adjustments(data)
	h, d, a = probability.Normalize(h/total+adj.Home, d/total+adj.Draw, a/total+adj.Away)

	volumeScore := math.Min(1, data.Volume/fullVolume)
	confidence := capConfidence(0.7+0.2*Efficiency(data)+0.1*volumeScore, 0.95)

	return buildPrediction(h, d, a, confidence, 1.2+2*(h-0.33), 1.0+2*(a-0.33)), nil
}

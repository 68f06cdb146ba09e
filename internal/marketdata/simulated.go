package marketdata

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

// SimulatedSource generates plausible prices in-process. Prices are quoted to
// two decimal places like a bookmaker would; money figures are whole units.
type SimulatedSource struct {
	seed int64
}

// NewSimulatedSource creates a simulated source. A non-zero seed makes the
// prices of each fixture reproducible.
func NewSimulatedSource(seed int64) *SimulatedSource {
	return &SimulatedSource{seed: seed}
}

// Name returns the source name
func (s *SimulatedSource) Name() string {
	return outcome.SourceSimulated
}

// Fetch simulates the market for a fixture
func (s *SimulatedSource) Fetch(ctx context.Context, match models.Match) (*models.MarketData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := outcome.SimulateMarket(outcome.MatchRand(s.seed, match, outcome.StreamMarket))
	data.HomeOdds = quote(data.HomeOdds, 2)
	data.DrawOdds = quote(data.DrawOdds, 2)
	data.AwayOdds = quote(data.AwayOdds, 2)
	data.Volume = quote(data.Volume, 0)
	data.SharpMoney = quote(data.SharpMoney, 0)
	data.PublicMoney = quote(data.PublicMoney, 0)
	return &data, nil
}

func quote(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

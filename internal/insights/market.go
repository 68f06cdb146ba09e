package insights

import (
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

const efficientMarket = 0.9

// MarketInsightView explains the market consensus model for a fixture
type MarketInsightView struct {
	MarketData      models.MarketData         `json:"market_data"`
	Efficiency      float64                   `json:"efficiency"`
	Adjustments     outcome.MarketAdjustments `json:"adjustments"`
	Recommendations []string                  `json:"recommendations"`
}

// Market explains how the market consensus model reads the given prices
func Market(data models.MarketData) MarketInsightView {
	efficiency := outcome.Efficiency(data)
	return MarketInsightView{
		MarketData:      data,
		Efficiency:      efficiency,
		Adjustments:     outcome.Adjustments(data),
		Recommendations: marketRecommendations(data, efficiency),
	}
}

func marketRecommendations(data models.MarketData, efficiency float64) []string {
	recs := []string{}

	if efficiency < efficientMarket {
		recs = append(recs, "Market shows inefficiencies - potential value opportunities")
	}

	switch ratio := data.SharpRatio(); {
	case ratio > outcome.SharpDominance:
		recs = append(recs, "Sharp money dominance - market likely accurate")
	case ratio < outcome.PublicDominance:
		recs = append(recs, "Public money heavy - watch for favorite bias")
	}

	if data.Movement == models.MovementFalling && data.HomeOdds < outcome.ShortPrice {
		recs = append(recs, "Heavy backing for favorite - consider value in draw/away")
	}
	return recs
}

package models

// Movement describes the direction of recent price changes
type Movement string

// Movement values
const (
	MovementRising  Movement = "rising"
	MovementFalling Movement = "falling"
	MovementStable  Movement = "stable"
)

// MarketData represents bookmaker state for a fixture
type MarketData struct {
	HomeOdds    float64  `json:"home_odds" validate:"gt=1"`
	DrawOdds    float64  `json:"draw_odds" validate:"gt=1"`
	AwayOdds    float64  `json:"away_odds" validate:"gt=1"`
	Volume      float64  `json:"volume" validate:"gte=0"`
	Movement    Movement `json:"movement" validate:"omitempty,oneof=rising falling stable"`
	SharpMoney  float64  `json:"sharp_money" validate:"gte=0"`
	PublicMoney float64  `json:"public_money" validate:"gte=0"`
	Source      string   `json:"source,omitempty"`
}

// ImpliedProbabilities returns 1/odds for each outcome, overround included
func (m MarketData) ImpliedProbabilities() (home, draw, away float64) {
	return impliedProbability(m.HomeOdds), impliedProbability(m.DrawOdds), impliedProbability(m.AwayOdds)
}

// Overround returns the bookmaker margin: sum of implied probabilities minus 1
func (m MarketData) Overround() float64 {
	h, d, a := m.ImpliedProbabilities()
	return h + d + a - 1
}

// SharpRatio returns the share of professional money, 0.5 when no money is recorded
func (m MarketData) SharpRatio() float64 {
	total := m.SharpMoney + m.PublicMoney
	if total <= 0 {
		return 0.5
	}
	return m.SharpMoney / total
}

func impliedProbability(odds float64) float64 {
	if odds <= 0 {
		return 0
	}
	return 1.0 / odds
}

package marketdata

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/config"
)

// NewSource builds the market data source described by cfg. Without a live
// endpoint the simulated source is used on its own; with one, the live
// source is backed by simulation.
func NewSource(cfg config.MarketDataConfig, seed int64, log *logrus.Logger) Source {
	simulated := NewSimulatedSource(seed)
	if !cfg.Enabled || cfg.BaseURL == "" {
		return simulated
	}

	client := NewRateLimitedHTTPClient(HTTPClientConfigFrom(cfg), log)
	return NewFallbackSource(NewHTTPSource(client, cfg.BaseURL), simulated, log)
}

func isCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}

package logger

import (
	"github.com/sirupsen/logrus"
)

// MarketDataLogger provides dedicated logging for market data collaborators.
type MarketDataLogger struct {
	*logrus.Entry
}

// NewMarketDataLogger creates a new market data logger.
func NewMarketDataLogger(baseLogger *logrus.Logger) *MarketDataLogger {
	return &MarketDataLogger{
		Entry: baseLogger.WithField("component", "market_data"),
	}
}

// LogFetch logs a successful market data fetch.
func (ml *MarketDataLogger) LogFetch(source, homeTeam, awayTeam string, homeOdds, drawOdds, awayOdds float64) {
	ml.WithFields(logrus.Fields{
		"source":    source,
		"home_team": homeTeam,
		"away_team": awayTeam,
		"home_odds": homeOdds,
		"draw_odds": drawOdds,
		"away_odds": awayOdds,
	}).Debug("Market data fetched")
}

// LogFallback logs a primary source failure absorbed by the fallback.
func (ml *MarketDataLogger) LogFallback(primary, fallback, homeTeam, awayTeam string, err error) {
	ml.WithFields(logrus.Fields{
		"primary":   primary,
		"fallback":  fallback,
		"home_team": homeTeam,
		"away_team": awayTeam,
	}).WithError(err).Warn("Market data source failed, using fallback")
}

// LogCircuitBreakerEvent logs circuit breaker events.
func (ml *MarketDataLogger) LogCircuitBreakerEvent(eventType string, consecutiveErrors int, err error) {
	entry := ml.WithFields(logrus.Fields{
		"event_type":         eventType,
		"consecutive_errors": consecutiveErrors,
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("Circuit breaker event recorded")
}

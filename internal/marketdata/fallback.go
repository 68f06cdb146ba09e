package marketdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/models"
)

// FallbackSource asks the primary source first and absorbs its failures by
// asking the fallback
type FallbackSource struct {
	primary  Source
	fallback Source
	log      *logger.MarketDataLogger
}

// NewFallbackSource chains two sources
func NewFallbackSource(primary, fallback Source, log *logrus.Logger) *FallbackSource {
	if log == nil {
		log = logger.Discard()
	}
	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
		log:      logger.NewMarketDataLogger(log),
	}
}

// Name returns the source name
func (s *FallbackSource) Name() string {
	return s.primary.Name() + "+" + s.fallback.Name()
}

// Fetch returns the primary source's data, or the fallback's when the primary fails
func (s *FallbackSource) Fetch(ctx context.Context, match models.Match) (*models.MarketData, error) {
	data, err := fetch(ctx, s.primary, match)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	s.log.LogFallback(s.primary.Name(), s.fallback.Name(), match.HomeTeam, match.AwayTeam, err)
	metrics.RecordMarketDataFallback()

	data, fbErr := fetch(ctx, s.fallback, match)
	if fbErr != nil {
		return nil, fmt.Errorf("fallback %s after %v: %w", s.fallback.Name(), err, fbErr)
	}
	return data, nil
}

func fetch(ctx context.Context, src Source, match models.Match) (*models.MarketData, error) {
	data, err := src.Fetch(ctx, match)
	if err != nil {
		metrics.RecordMarketDataFetch(src.Name(), metrics.StatusError)
		return nil, err
	}
	metrics.RecordMarketDataFetch(src.Name(), metrics.StatusSuccess)
	return data, nil
}

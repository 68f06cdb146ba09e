// Package marketdata supplies bookmaker state for fixtures. Live sources are
// optional and always backed by in-process simulation.
package marketdata

import (
	"context"
	"errors"

	"github.com/yourusername/matchcast/internal/models"
)

// Source fetches the current market state for a fixture
type Source interface {
	// Fetch returns the market data for the fixture
	Fetch(ctx context.Context, match models.Match) (*models.MarketData, error)

	// Name returns the name of the source
	Name() string
}

// SourceError represents errors from market data sources
type SourceError struct {
	Source  string // Source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrCodeNotFound          = "not_found"
	ErrCodeInvalidData       = "invalid_data"
	ErrCodeNetworkError      = "network_error"
	ErrCodeServerError       = "server_error"
	ErrCodeCircuitOpen       = "circuit_open"
)

// ErrCircuitOpen is returned while the circuit breaker rejects requests
var ErrCircuitOpen = errors.New("circuit breaker open")

// NewSourceError creates a new source error
func NewSourceError(source, code, message string, err error) *SourceError {
	return &SourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

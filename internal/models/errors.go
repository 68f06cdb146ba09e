package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrEmptyEnsemble     = errors.New("ensemble has no predictions to combine")
	ErrUnknownModel      = errors.New("unknown model")
	ErrUnknownPreset     = errors.New("unknown weight preset")
	ErrInvalidMatch      = errors.New("invalid match")
	ErrInvalidPrediction = errors.New("invalid prediction")
	ErrMarketDataMiss    = errors.New("market data unavailable")
)

// InvalidInputError reports an upstream contract violation such as a
// negative goal expectancy or a decimal price that is not above 1.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%v: %s", e.Field, e.Value, e.Reason)
}

// NewInvalidInputError builds an InvalidInputError
func NewInvalidInputError(field string, value float64, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

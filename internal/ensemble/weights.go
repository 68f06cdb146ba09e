package ensemble

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

// Weights maps model names to static ensemble weights in [0, 1]. A nil map
// selects confidence weighting.
type Weights map[string]float64

// Clone returns an independent copy, nil for nil
func (w Weights) Clone() Weights {
	if w == nil {
		return nil
	}
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Resolve returns the weight of every named model. Listed models keep their
// weight; unlisted ones share whatever is left of 1 equally.
func (w Weights) Resolve(names []string) map[string]float64 {
	resolved := make(map[string]float64, len(names))
	listed := 0.0
	var unlisted []string
	for _, name := range names {
		v, ok := w[name]
		if !ok {
			unlisted = append(unlisted, name)
			continue
		}
		if math.IsNaN(v) || v < 0 {
			v = 0
		}
		resolved[name] = v
		listed += v
	}
	if len(unlisted) > 0 {
		share := math.Max(0, 1-listed) / float64(len(unlisted))
		for _, name := range unlisted {
			resolved[name] = share
		}
	}
	return resolved
}

// Validate checks every entry names a known model and lies in [0, 1]
func (w Weights) Validate() error {
	known := make(map[string]bool, len(outcome.Names))
	for _, name := range outcome.Names {
		known[name] = true
	}

	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		v := w[name]
		if !known[name] {
			errs = append(errs, fmt.Errorf("%w: %q", models.ErrUnknownModel, name))
			continue
		}
		if math.IsNaN(v) || v < 0 || v > 1 {
			errs = append(errs, models.NewInvalidInputError(name, v, "weight must be within [0, 1]"))
		}
	}
	return errors.Join(errs...)
}

// ParseWeights maps loosely cased model names, as produced by config
// loaders that lower-case keys, onto the canonical names and validates the
// result. Unknown names are kept as given so Validate can report them.
func ParseWeights(raw map[string]float64) (Weights, error) {
	if raw == nil {
		return nil, nil
	}
	w := make(Weights, len(raw))
	for name, v := range raw {
		w[canonicalName(name)] = v
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func canonicalName(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, known := range outcome.Names {
		if strings.EqualFold(known, trimmed) {
			return known
		}
	}
	return name
}

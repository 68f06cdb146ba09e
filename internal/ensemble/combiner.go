// Package ensemble merges the predictions of several outcome models into one,
// weighted either statically or by each model's own confidence.
package ensemble

import (
	"math"
	"sort"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/probability"
)

// Name is the key the combined prediction is stored under
const Name = "Ensemble"

// Mode describes how a combination was weighted
type Mode string

// Weighting modes
const (
	ModeStatic     Mode = "static"
	ModeConfidence Mode = "confidence"
	ModeEqual      Mode = "equal"
)

// Combination is a combined prediction with the weights actually applied
type Combination struct {
	Prediction models.Prediction  `json:"prediction"`
	Mode       Mode               `json:"mode"`
	Weights    map[string]float64 `json:"weights"`
}

// Combine merges predictions. See CombineDetailed.
func Combine(preds map[string]models.Prediction, weights Weights) (models.Prediction, error) {
	c, err := CombineDetailed(preds, weights)
	if err != nil {
		return models.Prediction{}, err
	}
	return c.Prediction, nil
}

// CombineDetailed merges predictions by the weighted mean of outcome
// probabilities and confidence. Nil weights, or static weights that resolve
// to zero, select confidence weighting; if every confidence is zero the
// models are weighted equally. Expected goals are a plain mean. Neither
// argument is modified.
func CombineDetailed(preds map[string]models.Prediction, weights Weights) (Combination, error) {
	if len(preds) == 0 {
		return Combination{}, models.ErrEmptyEnsemble
	}

	names := make([]string, 0, len(preds))
	for name := range preds {
		names = append(names, name)
	}
	sort.Strings(names)

	mode := ModeStatic
	var applied map[string]float64
	if weights != nil {
		applied = weights.Resolve(names)
	}
	if sum(applied) <= 0 {
		mode = ModeConfidence
		applied = make(map[string]float64, len(names))
		for _, name := range names {
			c := preds[name].Confidence
			if math.IsNaN(c) || c < 0 {
				c = 0
			}
			applied[name] = c
		}
	}
	if sum(applied) <= 0 {
		mode = ModeEqual
		for _, name := range names {
			applied[name] = 1
		}
	}

	var combined models.Prediction
	total := 0.0
	for _, name := range names {
		p, w := preds[name], applied[name]
		combined.HomeWin += w * p.HomeWin
		combined.Draw += w * p.Draw
		combined.AwayWin += w * p.AwayWin
		combined.Confidence += w * p.Confidence
		combined.ExpectedGoals.Home += p.ExpectedGoals.Home
		combined.ExpectedGoals.Away += p.ExpectedGoals.Away
		total += w
	}

	n := float64(len(names))
	combined.HomeWin /= total
	combined.Draw /= total
	combined.AwayWin /= total
	combined.Confidence /= total
	combined.ExpectedGoals.Home /= n
	combined.ExpectedGoals.Away /= n

	return Combination{
		Prediction: probability.NormalizePrediction(combined),
		Mode:       mode,
		Weights:    applied,
	}, nil
}

func sum(weights map[string]float64) float64 {
	total := 0.0
	for _, v := range weights {
		total += v
	}
	return total
}

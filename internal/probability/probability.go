// Package probability provides the shared numeric helpers of the engine:
// outcome clamping and renormalisation, and Poisson goal distributions.
package probability

import (
	"math"

	"github.com/yourusername/matchcast/internal/models"
)

// League-average prior that every outcome model perturbs
const (
	PriorHomeWin = 0.45
	PriorDraw    = 0.27
	PriorAwayWin = 0.28
)

// Outcome bounds applied before renormalisation
const (
	MinWin  = 0.05
	MaxWin  = 0.9
	MinDraw = 0.05
	MaxDraw = 0.5
)

// MinGoals is the floor applied to goal expectancies
const MinGoals = 0.1

// SumTolerance is the allowed deviation of a normalised distribution from 1
const SumTolerance = 1e-6

// Prior returns the unperturbed league-average prediction
func Prior() models.Prediction {
	return models.Prediction{
		HomeWin:       PriorHomeWin,
		Draw:          PriorDraw,
		AwayWin:       PriorAwayWin,
		Confidence:    0.5,
		ExpectedGoals: models.ExpectedGoals{Home: 1.3, Away: 1.1},
	}
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// FloorGoals applies MinGoals to a goal expectancy
func FloorGoals(x float64) float64 {
	if math.IsNaN(x) || x < MinGoals {
		return MinGoals
	}
	return x
}

// Normalize scales the three outcomes to sum 1 while keeping each inside its
// bounds. Values above a ceiling are capped first and the freed mass goes
// back to the rest before any floor is applied; floored values are released
// again whenever a later cap frees more mass. Non-finite or all-zero input
// yields the prior.
func Normalize(home, draw, away float64) (float64, float64, float64) {
	v := [3]float64{home, draw, away}
	total := 0.0
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) || v[i] < 0 {
			v[i] = 0
		}
		total += v[i]
	}
	if total <= 0 {
		return PriorHomeWin, PriorDraw, PriorAwayWin
	}
	for i := range v {
		v[i] /= total
	}

	lo := [3]float64{MinWin, MinDraw, MinWin}
	hi := [3]float64{MaxWin, MaxDraw, MaxWin}
	const (
		free = iota
		floored
		capped
	)
	var state [3]int

	// each cap releases the floors, so at most len(v) rounds of flooring follow a cap
	for pass := 0; pass < (len(v)+1)*(len(v)+1); pass++ {
		pinnedSum, freeSum, nFree := 0.0, 0.0, 0
		for i := range v {
			if state[i] == free {
				freeSum += v[i]
				nFree++
			} else {
				pinnedSum += v[i]
			}
		}
		if nFree == 0 {
			break
		}
		rest := 1 - pinnedSum
		for i := range v {
			if state[i] != free {
				continue
			}
			if freeSum > 0 {
				v[i] *= rest / freeSum
			} else {
				v[i] = rest / float64(nFree)
			}
		}

		capping := false
		for i := range v {
			if state[i] == free && v[i] > hi[i] {
				v[i], state[i], capping = hi[i], capped, true
			}
		}
		if capping {
			for i := range v {
				if state[i] == floored {
					state[i] = free
				}
			}
			continue
		}

		flooring := false
		for i := range v {
			if state[i] == free && v[i] < lo[i] {
				v[i], state[i], flooring = lo[i], floored, true
			}
		}
		if !flooring {
			break
		}
	}
	return v[0], v[1], v[2]
}

// NormalizePrediction returns p with its outcomes normalised, confidence
// clamped to [0,1] and goal expectancies floored
func NormalizePrediction(p models.Prediction) models.Prediction {
	p.HomeWin, p.Draw, p.AwayWin = Normalize(p.HomeWin, p.Draw, p.AwayWin)
	if math.IsNaN(p.Confidence) {
		p.Confidence = 0
	}
	p.Confidence = Clamp(p.Confidence, 0, 1)
	p.ExpectedGoals.Home = FloorGoals(p.ExpectedGoals.Home)
	p.ExpectedGoals.Away = FloorGoals(p.ExpectedGoals.Away)
	return p
}

// IsNormalized reports whether p satisfies the prediction invariants
func IsNormalized(p models.Prediction) bool {
	if math.Abs(p.Sum()-1) > SumTolerance {
		return false
	}
	const eps = 1e-9
	inRange := func(x, lo, hi float64) bool { return x >= lo-eps && x <= hi+eps }
	return inRange(p.HomeWin, MinWin, MaxWin) &&
		inRange(p.Draw, MinDraw, MaxDraw) &&
		inRange(p.AwayWin, MinWin, MaxWin) &&
		inRange(p.Confidence, 0, 1)
}

package probability

import (
	"math"

	"github.com/yourusername/matchcast/internal/models"
)

// ValidateRate rejects goal expectancies that cannot parameterise a Poisson
// distribution
func ValidateRate(field string, lambda float64) error {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return models.NewInvalidInputError(field, lambda, "must be a finite number")
	}
	if lambda < 0 {
		return models.NewInvalidInputError(field, lambda, "must not be negative")
	}
	return nil
}

// PoissonPMF returns P(X = k) for X ~ Poisson(lambda)
func PoissonPMF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	lg, _ := math.Lgamma(float64(k + 1))
	return math.Exp(float64(k)*math.Log(lambda) - lambda - lg)
}

// PoissonRange returns P(from <= X <= to)
func PoissonRange(from, to int, lambda float64) float64 {
	if from < 0 {
		from = 0
	}
	sum := 0.0
	for k := from; k <= to; k++ {
		sum += PoissonPMF(k, lambda)
	}
	return sum
}

// OutcomeGrid sums the independent Poisson score grid up to maxGoals for each
// side into home-win, draw and away-win mass
func OutcomeGrid(homeRate, awayRate float64, maxGoals int) (home, draw, away float64) {
	for h := 0; h <= maxGoals; h++ {
		ph := PoissonPMF(h, homeRate)
		for a := 0; a <= maxGoals; a++ {
			p := ph * PoissonPMF(a, awayRate)
			switch {
			case h > a:
				home += p
			case h == a:
				draw += p
			default:
				away += p
			}
		}
	}
	return home, draw, away
}

package markets

import "strconv"

// HandicapLines is the Asian handicap ladder, from the backed side's view
var HandicapLines = []float64{-2, -1.5, -1, -0.5, 0, 0.5, 1, 1.5, 2}

// HandicapLabel formats a line as "-1.5", "0" or "+2"
func HandicapLabel(line float64) string {
	s := strconv.FormatFloat(line, 'f', -1, 64)
	if line > 0 {
		return "+" + s
	}
	return s
}

// Handicap returns the covered probability of backing a side at line, given
// that side's win, the draw and the opponent's win probabilities. The ladder
// uses calibrated constants rather than integrating the score grid.
func Handicap(win, draw, lose, line float64) float64 {
	switch line {
	case -2:
		return 0.5 * win
	case -1.5:
		return 0.7 * win
	case -1:
		return 0.9 * win
	case -0.5:
		return win
	case 0:
		return win + 0.5*draw
	case 0.5:
		return win + draw
	case 1:
		return win + draw + 0.1*lose
	case 1.5:
		return win + draw + 0.3*lose
	case 2:
		return win + draw + 0.5*lose
	default:
		return 0.5
	}
}

// Ladder returns the full handicap ladder keyed by line label
func Ladder(win, draw, lose float64) map[string]float64 {
	ladder := make(map[string]float64, len(HandicapLines))
	for _, line := range HandicapLines {
		ladder[HandicapLabel(line)] = Handicap(win, draw, lose, line)
	}
	return ladder
}

package markets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandicapLabel(t *testing.T) {
	want := []string{"-2", "-1.5", "-1", "-0.5", "0", "+0.5", "+1", "+1.5", "+2"}
	for i, line := range HandicapLines {
		assert.Equal(t, want[i], HandicapLabel(line))
	}
}

func TestHandicap(t *testing.T) {
	win, draw, lose := 0.5, 0.3, 0.2

	tests := []struct {
		line float64
		want float64
	}{
		{-2, 0.25},
		{-1.5, 0.35},
		{-1, 0.45},
		{-0.5, 0.5},
		{0, 0.65},
		{0.5, 0.8},
		{1, 0.82},
		{1.5, 0.86},
		{2, 0.9},
		{3, 0.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Handicap(win, draw, lose, tt.line), 1e-12, "line %v", tt.line)
	}
}

func TestLadderIsMonotonic(t *testing.T) {
	ladder := Ladder(0.45, 0.27, 0.28)
	prev := 0.0
	for _, line := range HandicapLines {
		p := ladder[HandicapLabel(line)]
		assert.GreaterOrEqual(t, p, prev, "line %v", line)
		prev = p
	}
}

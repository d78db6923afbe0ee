package minilut

import (
	"math"
	"testing"
)

func TestIsMonotoneIncreasing(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want bool
	}{
		{"strictly increasing", []float64{1, 2, 3}, true},
		{"decreasing tail", []float64{1, 3, 2}, false},
		{"single element", []float64{5}, true},
		{"empty", nil, true},
		{"plateau is not strict", []float64{2, 2, 3}, false},
		{"all equal", []float64{1, 1, 1}, false},
		{"negative ascending", []float64{-3, -2.5, -0.1, 0}, true},
		{"tiny increments", []float64{0, 1e-12, 2e-12}, true},
		{"NaN in the middle", []float64{0.1, math.NaN(), 0.3}, false},
		{"leading NaN", []float64{math.NaN(), 0.2, 0.3}, false},
		{"trailing NaN", []float64{0.1, 0.2, math.NaN()}, false},
		{"all NaN", []float64{math.NaN(), math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMonotoneIncreasing(tt.xs); got != tt.want {
				t.Errorf("IsMonotoneIncreasing(%v) = %v, want %v", tt.xs, got, tt.want)
			}
		})
	}
}

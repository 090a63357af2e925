package system

import (
	"math"
	"testing"
)

func TestNextScroll(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "from zero", in: 0, expected: 1},
		{name: "fractional below the boundary", in: 799.5, expected: 800.5},
		{name: "wraps at the boundary", in: 800, expected: 1},
		{name: "top of the range", in: 801, expected: 2},
		{name: "middle", in: 380, expected: 381},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextScroll(tc.in); got != tc.expected {
				t.Errorf("NextScroll(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestNextScrollCycle(t *testing.T) {
	x := 0.0
	for i := 1; i <= 800; i++ {
		x = NextScroll(x)
		if x <= 0 || x > 801 {
			t.Fatalf("step %d: %v is outside (0, 801]", i, x)
		}
	}
	if math.Mod(x, ScrollPeriod) != 0 {
		t.Fatalf("after 800 steps x = %v, expected a multiple of %v", x, ScrollPeriod)
	}
	if got := NextScroll(x); got != 1 {
		t.Errorf("step 801 = %v, expected 1", got)
	}
}

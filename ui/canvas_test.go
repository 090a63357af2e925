package ui

import (
	"testing"

	"hello-ebiten/core"
)

func TestAnchoredOrigin(t *testing.T) {
	tests := []struct {
		name     string
		pos      core.Vec2
		anchor   core.Anchor
		size     core.Vec2
		expected core.Vec2
	}{
		{
			name:     "centered sprite at screen center",
			pos:      core.Vec2{X: 320, Y: 240},
			anchor:   core.AnchorCenter,
			size:     core.Vec2{X: 32, Y: 32},
			expected: core.Vec2{X: 304, Y: 224},
		},
		{
			name:     "non-square sprite",
			pos:      core.Vec2{X: 100, Y: 50},
			anchor:   core.AnchorCenter,
			size:     core.Vec2{X: 40, Y: 10},
			expected: core.Vec2{X: 80, Y: 45},
		},
		{
			name:     "top-left anchor",
			pos:      core.Vec2{X: 10, Y: 20},
			anchor:   core.Anchor{},
			size:     core.Vec2{X: 32, Y: 32},
			expected: core.Vec2{X: 10, Y: 20},
		},
		{
			name:     "bottom-right anchor",
			pos:      core.Vec2{X: 10, Y: 20},
			anchor:   core.Anchor{X: 1, Y: 1},
			size:     core.Vec2{X: 8, Y: 16},
			expected: core.Vec2{X: 2, Y: 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := anchoredOrigin(tc.pos, tc.anchor, tc.size); got != tc.expected {
				t.Errorf("anchoredOrigin(%v, %v, %v) = %v, expected %v", tc.pos, tc.anchor, tc.size, got, tc.expected)
			}
		})
	}
}

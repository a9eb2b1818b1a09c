package mouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaximumDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance int
		current  int
		maximum  int
		want     int
	}{
		{name: "overshoot past maximum lands at maximum", distance: 100, current: 950, maximum: 1000, want: 50},
		{name: "overshoot below zero lands at zero", distance: -100, current: 50, maximum: 1000, want: -50},
		{name: "within bounds unchanged", distance: 30, current: 500, maximum: 1000, want: 30},
		{name: "already at maximum", distance: 10, current: 1000, maximum: 1000, want: 0},
		{name: "already at zero scrolling up", distance: -10, current: 0, maximum: 1000, want: 0},
		{name: "exact landing at maximum", distance: 50, current: 950, maximum: 1000, want: 50},
		{name: "exact landing at zero", distance: -50, current: 50, maximum: 1000, want: -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maximumDistance(tt.distance, tt.current, tt.maximum))
		})
	}
}

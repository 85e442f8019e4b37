package utils

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"起点", 0, 0},
		{"一半", 0.5, 0.875},
		{"终点", 1, 1},
		{"负数截断", -0.5, 0},
		{"超出截断", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutCubic(tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EaseOutCubic(%v): got %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 100, 0, 0},
		{0, 100, 1, 100},
		{0, 204, 0.5, 102},
		{100, 0, 0.25, 75},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v): got %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

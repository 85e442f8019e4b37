package utils

import "testing"

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{65, "01:05"},
		{600, "10:00"},
		{6000, "100:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d): got %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatHealth(t *testing.T) {
	tests := []struct {
		name      string
		health    float64
		maxHealth float64
		want      string
	}{
		{"满血", 100, 100, "100/100"},
		{"受伤", 85, 100, "85/100"},
		{"负数显示为 0", -5, 100, "0/100"},
		{"上限提升", 105, 105, "105/105"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHealth(tt.health, tt.maxHealth); got != tt.want {
				t.Errorf("FormatHealth: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEnergy(t *testing.T) {
	tests := []struct {
		energy float64
		want   string
	}{
		{0, "0/100"},
		{0.5, "0/100"},
		{74.99, "74/100"},
		{100, "100/100"},
	}
	for _, tt := range tests {
		if got := FormatEnergy(tt.energy, 100); got != tt.want {
			t.Errorf("FormatEnergy(%v): got %q, want %q", tt.energy, got, tt.want)
		}
	}
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		volume float64
		want   string
	}{
		{0, "0%"},
		{0.3, "30%"},
		{0.30000000000000004, "30%"},
		{1, "100%"},
		{1.5, "100%"},
		{-0.2, "0%"},
	}
	for _, tt := range tests {
		if got := FormatVolume(tt.volume); got != tt.want {
			t.Errorf("FormatVolume(%v): got %q, want %q", tt.volume, got, tt.want)
		}
	}
}

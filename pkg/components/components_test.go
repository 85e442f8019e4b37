package components

import "testing"

// TestCollisionOverlaps 测试严格AABB判定
func TestCollisionOverlaps(t *testing.T) {
	base := CollisionComponent{X: 100, Y: 100, Width: 50, Height: 50}

	tests := []struct {
		name  string
		other CollisionComponent
		want  bool
	}{
		{"完全重叠", CollisionComponent{X: 100, Y: 100, Width: 50, Height: 50}, true},
		{"部分重叠 - 右边", CollisionComponent{X: 120, Y: 100, Width: 50, Height: 50}, true},
		{"部分重叠 - 上边", CollisionComponent{X: 100, Y: 80, Width: 50, Height: 50}, true},
		{"包含", CollisionComponent{X: 110, Y: 110, Width: 4, Height: 12}, true},
		{"右边界刚好接触", CollisionComponent{X: 150, Y: 100, Width: 50, Height: 50}, false},
		{"下边界刚好接触", CollisionComponent{X: 100, Y: 150, Width: 50, Height: 50}, false},
		{"左侧分离", CollisionComponent{X: 0, Y: 100, Width: 50, Height: 50}, false},
		{"上方分离", CollisionComponent{X: 100, Y: 0, Width: 50, Height: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if base.Overlaps(tt.other) != tt.other.Overlaps(base) {
				t.Errorf("Overlaps() is not symmetric for %+v", tt.other)
			}
		})
	}
}

// TestHealthClamping 测试生命值始终在 [0, Max] 范围内
func TestHealthClamping(t *testing.T) {
	h := NewHealthComponent(100)

	h.Heal(50)
	if h.Current() != 100 {
		t.Errorf("Heal over max: got %v, want 100", h.Current())
	}

	expected := []float64{85, 70, 55, 40, 25, 10, 0}
	for i, want := range expected {
		depleted := h.Damage(15)
		if h.Current() != want {
			t.Errorf("hit %d: got %v, want %v", i+1, h.Current(), want)
		}
		if depleted != (i == len(expected)-1) {
			t.Errorf("hit %d: depleted = %v", i+1, depleted)
		}
	}

	h.RaiseMax(5)
	if h.Max() != 105 || h.Current() != 0 {
		t.Errorf("RaiseMax: got %v/%v, want 0/105", h.Current(), h.Max())
	}

	h.Reset(100)
	if h.Current() != 100 || h.Max() != 100 {
		t.Errorf("Reset: got %v/%v, want 100/100", h.Current(), h.Max())
	}
	if h.Fraction() != 1 {
		t.Errorf("Fraction: got %v, want 1", h.Fraction())
	}
}

// TestTimerFire 测试累加计时器的阈值判定（严格大于）
func TestTimerFire(t *testing.T) {
	var timer TimerComponent

	// 60 帧单位 = 1 秒
	timer.Advance(1.0)
	if timer.Elapsed != 60 {
		t.Fatalf("Advance(1s): got %v, want 60", timer.Elapsed)
	}
	if timer.Fire(60) {
		t.Error("Fire(60) at exactly 60 should not fire (strict inequality)")
	}

	timer.Advance(1.0 / 60)
	if !timer.Fire(60) {
		t.Error("Fire(60) at 61 should fire")
	}
	if timer.Elapsed != 0 {
		t.Errorf("Fire should reset: got %v", timer.Elapsed)
	}
}

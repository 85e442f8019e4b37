package game

import (
	"math"
	"testing"
	"time"
)

// TestPan 测试声像计算
func TestPan(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"最左", 0, -0.8},
		{"中间", 500, 0},
		{"最右", 1000, 0.8},
		{"超出右侧", 3000, 1},
		{"超出左侧", -2000, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pan(tt.x, 1000); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Pan(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

// TestHitLimiter 测试同一网格 50ms 冷却
func TestHitLimiter(t *testing.T) {
	h := NewHitLimiter()
	t0 := time.Unix(0, 0)

	if !h.Allow(105, 205, t0) {
		t.Fatal("first hit should play")
	}
	if h.Allow(109, 209, t0.Add(10*time.Millisecond)) {
		t.Error("same 10px cell within 50ms should be suppressed")
	}
	if !h.Allow(115, 205, t0.Add(10*time.Millisecond)) {
		t.Error("neighbouring cell should play")
	}
	if !h.Allow(105, 205, t0.Add(50*time.Millisecond)) {
		t.Error("same cell after 50ms should play again")
	}
}

type panickySink struct {
	NopCueSink
	calls int
}

func (p *panickySink) PlayCue(Cue) {
	p.calls++
	panic("device lost")
}

// TestSafeCueSinkRecovers 测试音频协作者的 panic 不会传播
func TestSafeCueSinkRecovers(t *testing.T) {
	inner := &panickySink{}
	sink := NewSafeCueSink(inner)

	sink.PlayCue(NewCue(CueEnemyHit, 10, 10, 1000))
	sink.PlayCue(NewCue(CuePlayerHit, 10, 10, 1000))
	sink.PlayMusic()

	if inner.calls != 2 {
		t.Errorf("calls: got %d, want 2", inner.calls)
	}
}

// TestToneSynthesis 测试合成音效的时长与包络
func TestToneSynthesis(t *testing.T) {
	const rate = 48000
	tests := []struct {
		kind    CueKind
		samples int
	}{
		{CueEnemyHit, 12000},
		{CuePlayerHit, 16800},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			spec := toneFor(tt.kind)
			buf := spec.synthesize(rate)
			if len(buf) != tt.samples {
				t.Fatalf("samples: got %d, want %d", len(buf), tt.samples)
			}
			if buf[0] != 0 {
				t.Errorf("envelope should start at 0, got %v", buf[0])
			}
			for i, v := range buf {
				if math.Abs(v) > spec.peak+1e-9 {
					t.Fatalf("sample %d exceeds peak: %v", i, v)
				}
			}
			if f := spec.frequencyAt(spec.duration); f != spec.endFreq {
				t.Errorf("end frequency: got %v, want %v", f, spec.endFreq)
			}
		})
	}
}

// TestEncodeStereoPan 测试声像对左右声道的影响
func TestEncodeStereoPan(t *testing.T) {
	pcm := encodeStereo([]float64{1}, -1)
	if len(pcm) != 4 {
		t.Fatalf("len: got %d, want 4", len(pcm))
	}
	left := int16(uint16(pcm[0]) | uint16(pcm[1])<<8)
	right := int16(uint16(pcm[2]) | uint16(pcm[3])<<8)
	if left != math.MaxInt16 || right != 0 {
		t.Errorf("hard left: got L=%d R=%d", left, right)
	}
}

package game

import (
	"fmt"
	"log"
	"math"
	"time"
)

// CueKind 音效类型
type CueKind int

const (
	// CueEnemyHit 敌机被击中
	CueEnemyHit CueKind = iota
	// CuePlayerHit 玩家受到伤害
	CuePlayerHit
)

// String 返回音效类型名称
func (k CueKind) String() string {
	switch k {
	case CueEnemyHit:
		return "enemyHit"
	case CuePlayerHit:
		return "playerHit"
	default:
		return "unknown"
	}
}

// Cue 一次即发即弃的音效请求
type Cue struct {
	Kind CueKind
	X, Y float64 // 声源的世界坐标
	Pan  float64 // 立体声声像 [-1, 1]，-1 为最左
}

// NewCue 创建音效请求，并根据 X 坐标计算声像
func NewCue(kind CueKind, x, y, canvasWidth float64) Cue {
	return Cue{Kind: kind, X: x, Y: y, Pan: Pan(x, canvasWidth)}
}

// Pan 计算声像：clamp(((x/W)*2 - 1) * 0.8, -1, 1)
func Pan(x, canvasWidth float64) float64 {
	if canvasWidth <= 0 {
		return 0
	}
	p := ((x/canvasWidth)*2 - 1) * 0.8
	return math.Max(-1, math.Min(1, p))
}

// CueSink 音频协作者
// 模拟逻辑只发出请求，不关心是否真的播放
type CueSink interface {
	PlayCue(cue Cue)
	PlayMusic()
	PauseMusic()
	ResumeMusic()
	StopMusic()
}

// VolumeApplier 能立即应用音量设置的 CueSink（可选）
type VolumeApplier interface {
	ApplyVolume()
}

// NopCueSink 丢弃所有音频请求（无音频环境和测试使用）
type NopCueSink struct{}

func (NopCueSink) PlayCue(Cue)  {}
func (NopCueSink) PlayMusic()   {}
func (NopCueSink) PauseMusic()  {}
func (NopCueSink) ResumeMusic() {}
func (NopCueSink) StopMusic()   {}

// SafeCueSink 包装 CueSink，吞掉并记录其中的 panic
// 音频故障不能中断一帧的模拟
type SafeCueSink struct {
	Sink CueSink
}

// NewSafeCueSink 包装 sink，sink 为 nil 时使用 NopCueSink
func NewSafeCueSink(sink CueSink) *SafeCueSink {
	if sink == nil {
		sink = NopCueSink{}
	}
	return &SafeCueSink{Sink: sink}
}

func (s *SafeCueSink) guard(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Audio] %s failed: %v", op, r)
		}
	}()
	fn()
}

func (s *SafeCueSink) PlayCue(cue Cue) {
	s.guard(fmt.Sprintf("PlayCue(%s)", cue.Kind), func() { s.Sink.PlayCue(cue) })
}

func (s *SafeCueSink) PlayMusic()   { s.guard("PlayMusic", s.Sink.PlayMusic) }
func (s *SafeCueSink) PauseMusic()  { s.guard("PauseMusic", s.Sink.PauseMusic) }
func (s *SafeCueSink) ResumeMusic() { s.guard("ResumeMusic", s.Sink.ResumeMusic) }
func (s *SafeCueSink) StopMusic()   { s.guard("StopMusic", s.Sink.StopMusic) }

// ApplyVolume 内部 sink 实现 VolumeApplier 时转发
func (s *SafeCueSink) ApplyVolume() {
	if v, ok := s.Sink.(VolumeApplier); ok {
		s.guard("ApplyVolume", v.ApplyVolume)
	}
}

// 同一位置敌机受击音效的冷却
const (
	HitCooldown     = 50 * time.Millisecond
	hitCellSizePx   = 10
	hitLimiterLimit = 256 // 超过该数量时清理过期记录
)

type hitCell struct {
	x, y int
}

// HitLimiter 限制同一 10px 网格内的受击音效频率
type HitLimiter struct {
	last map[hitCell]time.Time
}

// NewHitLimiter 创建限流器
func NewHitLimiter() *HitLimiter {
	return &HitLimiter{last: make(map[hitCell]time.Time)}
}

// Allow 报告 (x, y) 处的音效是否可以在 now 播放，允许时记录播放时间
func (h *HitLimiter) Allow(x, y float64, now time.Time) bool {
	cell := hitCell{int(math.Floor(x / hitCellSizePx)), int(math.Floor(y / hitCellSizePx))}
	if last, ok := h.last[cell]; ok && now.Sub(last) < HitCooldown {
		return false
	}
	h.last[cell] = now

	if len(h.last) > hitLimiterLimit {
		for c, t := range h.last {
			if now.Sub(t) >= HitCooldown {
				delete(h.last, c)
			}
		}
	}
	return true
}

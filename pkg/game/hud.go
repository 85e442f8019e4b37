package game

import "github.com/decker502/planewar/pkg/types"

// HUD 抬头显示的数据快照
// 文本字段已按显示格式化，渲染器只负责绘制
type HUD struct {
	Status        types.GameStatus
	Difficulty    types.Difficulty
	TwoPlayerMode bool

	Score        int
	BestScore    int   // 当前难度的最好成绩
	NewRecord    bool  // 本局刷新了最好成绩
	WeaponLevels []int // 按玩家顺序

	GameTime   int
	TimeText   string // mm:ss
	HealthText string // 当前/上限，当前值不显示负数

	Energy            float64
	MaxEnergy         float64
	EnergyText        string // floor(能量)/上限
	EnergyBurstActive bool

	MusicEnabled bool
	SoundEnabled bool
	MusicVolume  string // 百分比
	SoundVolume  string
}

// EnergyFraction 能量比例 [0, 1]
func (h HUD) EnergyFraction() float64 {
	if h.MaxEnergy <= 0 {
		return 0
	}
	f := h.Energy / h.MaxEnergy
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// EnergyFull 能量是否已充满
func (h HUD) EnergyFull() bool {
	return h.MaxEnergy > 0 && h.Energy >= h.MaxEnergy
}

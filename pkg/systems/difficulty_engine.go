package systems

import (
	"math"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/types"
)

// DifficultyEngine 难度引擎
// 负责根据难度、双人模式和游戏时间计算刷怪间隔与敌机血量
type DifficultyEngine struct {
	balance *config.BalanceConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(balance *config.BalanceConfig) *DifficultyEngine {
	return &DifficultyEngine{balance: balance}
}

// EnemySpawnInterval 计算敌机刷新间隔（帧单位）
// 公式: interval = base / (1 + floor(gameTime / 10) * 0.1)
// 每 10 秒频率提升 10%，没有上限
func (d *DifficultyEngine) EnemySpawnInterval(gameTime int) float64 {
	spawn := d.balance.Spawn
	steps := math.Floor(float64(gameTime) / spawn.FrequencyStepSeconds)
	return spawn.EnemyBaseInterval / (1 + steps*spawn.FrequencyStep)
}

// BaseHealth 计算难度缩放后的初始血量
// 公式: base = floor(raw * multiplier)，双人模式再 floor(base * 1.5)
func (d *DifficultyEngine) BaseHealth(raw float64, difficulty types.Difficulty, twoPlayer bool) float64 {
	base := math.Floor(raw * d.balance.DifficultyMultiplier(difficulty))
	if twoPlayer {
		base = math.Floor(base * d.balance.Spawn.TwoPlayerHealthMultiplier)
	}
	return base
}

// ScaledHealth 计算生成时的血量
// 公式: health = base + floor(gameTime / 10) * (base / 2)
// 血量可能是小数（例如 base=7 时每 10 秒增加 3.5）
func (d *DifficultyEngine) ScaledHealth(raw float64, difficulty types.Difficulty, twoPlayer bool, gameTime int) float64 {
	base := d.BaseHealth(raw, difficulty, twoPlayer)
	growth := math.Floor(float64(gameTime) / d.balance.Spawn.HealthGrowthSeconds)
	return base + growth*(base/2)
}

// EnemyHealth 普通敌机的生成血量
func (d *DifficultyEngine) EnemyHealth(difficulty types.Difficulty, twoPlayer bool, gameTime int) float64 {
	return d.ScaledHealth(d.balance.Enemy.BaseHealth, difficulty, twoPlayer, gameTime)
}

// BossHealth Boss 的生成血量
func (d *DifficultyEngine) BossHealth(difficulty types.Difficulty, twoPlayer bool, gameTime int) float64 {
	return d.ScaledHealth(d.balance.Boss.BaseHealth, difficulty, twoPlayer, gameTime)
}

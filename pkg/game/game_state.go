package game

import (
	"math"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/types"
)

// GameState 存储一局游戏的标量状态
//
// 生命值与能量只能通过方法修改，任何时刻都满足：
//
//	0 <= Health() <= MaxHealth()
//	0 <= Energy() <= MaxEnergy()
type GameState struct {
	Status        types.GameStatus
	Score         int
	Difficulty    types.Difficulty
	TwoPlayerMode bool
	GameTime      int // 已进行的秒数（扣除暂停时间），只增不减

	health components.HealthComponent // 全局共享生命值

	energy            float64
	maxEnergy         float64
	EnergyBurstActive bool

	scoreTimer float64 // 自动得分计时（秒），保留余数

	// 刷怪计时器（帧单位）
	EnemySpawnTimer   components.TimerComponent
	BossSpawnTimer    components.TimerComponent
	PowerUpSpawnTimer components.TimerComponent
}

// NewGameState 创建未开始状态的 GameState
func NewGameState(cfg *config.BalanceConfig) *GameState {
	gs := &GameState{Status: types.StatusNotStarted}
	gs.Reset(cfg)
	return gs
}

// Reset 重置一局游戏的所有数值（难度和双人模式保持不变）
func (gs *GameState) Reset(cfg *config.BalanceConfig) {
	gs.Score = 0
	gs.GameTime = 0
	gs.health.Reset(cfg.Player.StartHealth)
	gs.energy = 0
	gs.maxEnergy = cfg.Energy.Max
	gs.EnergyBurstActive = false
	gs.scoreTimer = 0
	gs.EnemySpawnTimer.Reset()
	gs.BossSpawnTimer.Reset()
	gs.PowerUpSpawnTimer.Reset()
}

// Running 报告模拟是否在推进
func (gs *GameState) Running() bool { return gs.Status == types.StatusRunning }

// Paused 报告是否处于暂停
func (gs *GameState) Paused() bool { return gs.Status == types.StatusPaused }

// Started 报告游戏是否已开始（包括暂停和结束）
func (gs *GameState) Started() bool { return gs.Status.Started() }

// Health 当前生命值
func (gs *GameState) Health() float64 { return gs.health.Current() }

// MaxHealth 生命上限
func (gs *GameState) MaxHealth() float64 { return gs.health.Max() }

// Damage 扣除生命值，返回是否已耗尽
func (gs *GameState) Damage(amount float64) bool { return gs.health.Damage(amount) }

// Heal 回复生命值（不超过上限）
func (gs *GameState) Heal(amount float64) { gs.health.Heal(amount) }

// RaiseMaxHealth 提升生命上限
func (gs *GameState) RaiseMaxHealth(amount float64) { gs.health.RaiseMax(amount) }

// Energy 当前能量
func (gs *GameState) Energy() float64 { return gs.energy }

// MaxEnergy 能量上限
func (gs *GameState) MaxEnergy() float64 { return gs.maxEnergy }

// EnergyFull 能量是否已充满
func (gs *GameState) EnergyFull() bool { return gs.energy >= gs.maxEnergy }

// AddEnergy 增加能量（不超过上限）
func (gs *GameState) AddEnergy(amount float64) {
	gs.energy = math.Max(0, math.Min(gs.energy+amount, gs.maxEnergy))
}

// DrainEnergy 消耗能量（不低于 0），返回是否已耗尽
func (gs *GameState) DrainEnergy(amount float64) bool {
	gs.energy = math.Max(0, math.Min(gs.energy-amount, gs.maxEnergy))
	return gs.energy <= 0
}

// AccrueScore 按存活时间自动加分
// 每累计 1 秒加 pointsPerSecond 分，余数保留到下一帧
func (gs *GameState) AccrueScore(deltaTime float64, pointsPerSecond int) {
	gs.scoreTimer += deltaTime
	for gs.scoreTimer >= 1 {
		gs.Score += pointsPerSecond
		gs.scoreTimer -= 1
	}
}

// SetGameTime 更新游戏时间，时间不会倒退
func (gs *GameState) SetGameTime(seconds int) {
	if seconds > gs.GameTime {
		gs.GameTime = seconds
	}
}

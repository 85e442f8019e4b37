package systems

import (
	"log"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/game"
)

// EnergySystem 能量爆发
//
// 击中敌机充能，充满后可以手动激活爆发。爆发期间：
//   - 能量按 DrainPerSecond 持续消耗，耗尽时自动结束
//   - 射击间隔缩短，移动速度提升
//   - 每帧在每个玩家周围生成光环粒子
type EnergySystem struct {
	world   *game.World
	state   *game.GameState
	balance *config.BalanceConfig
	rng     entities.RandomSource
}

// NewEnergySystem 创建能量系统
func NewEnergySystem(world *game.World, state *game.GameState, balance *config.BalanceConfig, rng entities.RandomSource) *EnergySystem {
	return &EnergySystem{
		world:   world,
		state:   state,
		balance: balance,
		rng:     rng,
	}
}

// Update 爆发期间消耗能量并生成光环
func (s *EnergySystem) Update(deltaTime float64) {
	if !s.state.EnergyBurstActive {
		return
	}

	for _, p := range s.world.Players() {
		s.world.EmitParticles(entities.Aura(s.rng, p.CenterX(), p.CenterY(), p.MuzzleColor()))
	}

	if s.state.DrainEnergy(s.balance.Energy.DrainPerSecond * deltaTime) {
		s.state.EnergyBurstActive = false
		log.Printf("[EnergySystem] Energy burst ended")
	}
}

// Activate 尝试激活能量爆发
// 仅在能量已满且未处于爆发状态时生效，返回是否激活
func (s *EnergySystem) Activate() bool {
	if s.state.EnergyBurstActive || !s.state.EnergyFull() {
		return false
	}
	s.state.EnergyBurstActive = true

	if players := s.world.Players(); len(players) > 0 {
		p1 := players[0]
		s.world.EmitParticles(entities.EnergyFlashBurst.Emit(s.rng, p1.CenterX(), p1.CenterY()))
	}
	log.Printf("[EnergySystem] Energy burst activated")
	return true
}

// SpeedMultiplier 当前的玩家移动倍率
func (s *EnergySystem) SpeedMultiplier() float64 {
	if s.state.EnergyBurstActive {
		return s.balance.Player.BurstSpeedMultiplier
	}
	return 1
}

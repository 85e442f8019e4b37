package systems

import (
	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/game"
)

// WeaponSystem 玩家自动射击
// 射击间隔由 1P 的武器等级决定，所有玩家共用同一间隔，但各自累计计时
type WeaponSystem struct {
	world   *game.World
	state   *game.GameState
	balance *config.BalanceConfig
	rng     entities.RandomSource
}

// NewWeaponSystem 创建射击系统
func NewWeaponSystem(world *game.World, state *game.GameState, balance *config.BalanceConfig, rng entities.RandomSource) *WeaponSystem {
	return &WeaponSystem{
		world:   world,
		state:   state,
		balance: balance,
		rng:     rng,
	}
}

// Update 推进射击计时器，到达间隔时发射一组子弹
func (s *WeaponSystem) Update(deltaTime float64) {
	players := s.world.Players()
	if len(players) == 0 {
		return
	}
	interval := s.Interval(players[0].WeaponLevel)

	for _, p := range players {
		p.ShootTimer.Advance(deltaTime)
		if !p.ShootTimer.Fire(interval) {
			continue
		}
		s.world.Bullets = append(s.world.Bullets, p.Shoot()...)
		s.world.EmitParticles(entities.MuzzleFlash(s.rng, p.CenterX(), p.Y, p.MuzzleColor()))
	}
}

// Interval 按武器等级和爆发状态计算射击间隔（帧单位）
func (s *WeaponSystem) Interval(level int) float64 {
	return entities.FireInterval(s.balance.Player.Fire, level, s.state.EnergyBurstActive)
}

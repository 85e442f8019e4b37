package systems

import (
	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/types"
)

// MovementSystem 基于 deltaTime 的移动积分与出界清理
//
// 各类实体在一帧中的更新时机不同，因此拆分为独立的方法，
// 由场景按固定顺序调用。
type MovementSystem struct {
	world   *game.World
	state   *game.GameState
	balance *config.BalanceConfig
	rng     entities.RandomSource
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(world *game.World, state *game.GameState, balance *config.BalanceConfig, rng entities.RandomSource) *MovementSystem {
	return &MovementSystem{
		world:   world,
		state:   state,
		balance: balance,
		rng:     rng,
	}
}

// UpdatePlayers 按键移动所有玩家
func (s *MovementSystem) UpdatePlayers(deltaTime float64, keys types.KeyState, speedMultiplier float64) {
	w, h := s.balance.World.Width, s.balance.World.Height
	for _, p := range s.world.Players() {
		p.Move(keys, deltaTime, speedMultiplier, w, h)
	}
}

// UpdateProjectiles 移动玩家子弹与敌方子弹，移除出界的子弹
func (s *MovementSystem) UpdateProjectiles(deltaTime float64) {
	w, h := s.balance.World.Width, s.balance.World.Height

	bullets := s.world.Bullets
	for i := len(bullets) - 1; i >= 0; i-- {
		bullets[i].Update(deltaTime)
		if bullets[i].OutOfBounds(w) {
			bullets = removeAt(bullets, i)
		}
	}
	s.world.Bullets = bullets

	shots := s.world.EnemyBullets
	for i := len(shots) - 1; i >= 0; i-- {
		shots[i].Update(deltaTime)
		if shots[i].OutOfBounds(w, h) {
			shots = removeAt(shots, i)
		}
	}
	s.world.EnemyBullets = shots
}

// UpdateEnemies 更新敌机和 Boss，收集 Boss 子弹，移除越过底部或已被击毁的敌机
// 目标玩家在每帧重新解析，原目标离开名册时回退到第一个玩家
func (s *MovementSystem) UpdateEnemies(deltaTime float64) {
	limit := s.balance.World.Height + s.balance.Enemy.CullMargin

	enemies := s.world.Enemies
	for i := len(enemies) - 1; i >= 0; i-- {
		e := enemies[i]
		target := s.world.ResolveTarget(e.Target())

		e.Update(deltaTime, target)
		if shots := e.Fire(deltaTime, target); len(shots) > 0 {
			s.world.EnemyBullets = append(s.world.EnemyBullets, shots...)
		}

		if e.Bounds().Y >= limit || e.Health().IsDepleted() {
			enemies = removeAt(enemies, i)
		}
	}
	s.world.Enemies = enemies
}

// UpdatePowerUps 移动能量豆
func (s *MovementSystem) UpdatePowerUps(deltaTime float64) {
	w, h := s.balance.World.Width, s.balance.World.Height
	for _, p := range s.world.PowerUps {
		p.Update(deltaTime, w, h, s.rng)
	}
}

package systems

import (
	"log"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/game"
)

// SpawnSystem 按累加计时器生成敌机、Boss 和能量豆
type SpawnSystem struct {
	world   *game.World
	state   *game.GameState
	balance *config.BalanceConfig
	engine  *DifficultyEngine
	rng     entities.RandomSource
}

// NewSpawnSystem 创建刷怪系统
func NewSpawnSystem(world *game.World, state *game.GameState, balance *config.BalanceConfig, engine *DifficultyEngine, rng entities.RandomSource) *SpawnSystem {
	return &SpawnSystem{
		world:   world,
		state:   state,
		balance: balance,
		engine:  engine,
		rng:     rng,
	}
}

// Update 推进三个刷怪计时器
//
//   - 敌机：超过动态间隔时生成并清零
//   - Boss：超过固定间隔时按概率生成，无论是否生成都清零
//   - 能量豆：超过固定间隔时生成并清零
func (s *SpawnSystem) Update(deltaTime float64) {
	s.state.EnemySpawnTimer.Advance(deltaTime)
	if s.state.EnemySpawnTimer.Fire(s.engine.EnemySpawnInterval(s.state.GameTime)) {
		s.SpawnEnemy()
	}

	s.state.BossSpawnTimer.Advance(deltaTime)
	if s.state.BossSpawnTimer.Exceeded(s.balance.Spawn.BossInterval) {
		if s.rng.Float64() < s.balance.Spawn.BossChance {
			s.SpawnBoss()
		}
		s.state.BossSpawnTimer.Reset()
	}

	s.state.PowerUpSpawnTimer.Advance(deltaTime)
	if s.state.PowerUpSpawnTimer.Fire(s.balance.Spawn.PowerUpInterval) {
		s.SpawnPowerUp()
	}
}

// SpawnEnemy 在画布顶部随机位置生成一架普通敌机
func (s *SpawnSystem) SpawnEnemy() *entities.Enemy {
	cfg := s.balance.Enemy
	x := s.rng.Float64() * (s.balance.World.Width - cfg.Width)
	health := s.engine.EnemyHealth(s.state.Difficulty, s.state.TwoPlayerMode, s.state.GameTime)

	enemy := entities.NewEnemy(cfg, x, cfg.SpawnY, health, s.pickTarget())
	s.world.Enemies = append(s.world.Enemies, enemy)
	return enemy
}

// SpawnBoss 在画布顶部中间生成 Boss
func (s *SpawnSystem) SpawnBoss() *entities.Boss {
	cfg := s.balance.Boss
	x := s.balance.World.Width/2 - cfg.SpawnOffsetX
	health := s.engine.BossHealth(s.state.Difficulty, s.state.TwoPlayerMode, s.state.GameTime)

	boss := entities.NewBoss(cfg, s.balance.World.BossWorldWidth, x, cfg.SpawnY, health, s.pickTarget())
	s.world.Enemies = append(s.world.Enemies, boss)

	log.Printf("[SpawnSystem] Boss spawned at t=%ds (health: %.1f)", s.state.GameTime, health)
	return boss
}

// SpawnPowerUp 在画布中部随机位置生成能量豆
func (s *SpawnSystem) SpawnPowerUp() *entities.PowerUp {
	w, h := s.balance.World.Width, s.balance.World.Height
	x := s.rng.Float64() * (w - 30)
	y := s.rng.Float64()*(h-200) + 50

	p := entities.NewPowerUp(s.rng, x, y)
	s.world.PowerUps = append(s.world.PowerUps, p)
	return p
}

// pickTarget 选择目标玩家
// 双人模式下在两名玩家中等概率随机，否则总是 1P
func (s *SpawnSystem) pickTarget() ecs.EntityID {
	ids := s.world.PlayerIDs()
	if len(ids) == 0 {
		return ecs.InvalidEntity
	}
	if s.state.TwoPlayerMode && len(ids) > 1 && s.rng.Float64() < 0.5 {
		return ids[1]
	}
	return ids[0]
}

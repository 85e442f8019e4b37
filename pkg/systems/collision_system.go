package systems

import (
	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/game"
)

// CollisionSystem 碰撞检测与结算
// 职责：
// - 玩家子弹 × 敌机：扣血、充能、得分
// - 敌方子弹 × 玩家：扣除共享生命值
// - 玩家 × 敌机：撞机
// - 玩家 × 能量豆：升级武器并回血
//
// 每一轮都按下标从大到小遍历，遍历中删除元素不会跳过任何实体。
type CollisionSystem struct {
	world   *game.World
	state   *game.GameState
	balance *config.BalanceConfig
	rng     entities.RandomSource

	cues    game.CueSink
	clock   game.Clock
	limiter *game.HitLimiter

	// onDepleted 在生命值耗尽时调用（由场景负责保证只结束一次）
	onDepleted func()
}

// NewCollisionSystem 创建碰撞系统
// 参数:
//   - cues: 音效接收者，nil 时静默
//   - clock: 用于敌机受击音效限流的时钟
//   - onDepleted: 生命值耗尽回调，可以为 nil
func NewCollisionSystem(world *game.World, state *game.GameState, balance *config.BalanceConfig, rng entities.RandomSource, cues game.CueSink, clock game.Clock, onDepleted func()) *CollisionSystem {
	if cues == nil {
		cues = game.NopCueSink{}
	}
	if clock == nil {
		clock = game.SystemClock{}
	}
	return &CollisionSystem{
		world:      world,
		state:      state,
		balance:    balance,
		rng:        rng,
		cues:       cues,
		clock:      clock,
		limiter:    game.NewHitLimiter(),
		onDepleted: onDepleted,
	}
}

// Update 按固定顺序执行四轮碰撞检测
func (s *CollisionSystem) Update() {
	s.resolveBulletHits()
	s.resolveEnemyShots()
	s.resolveCrashes()
	s.resolvePickups()
}

// resolveBulletHits 玩家子弹 × 敌机
// 每颗子弹最多命中一架敌机
func (s *CollisionSystem) resolveBulletHits() {
	combat := s.balance.Combat
	w := s.world

	for bi := len(w.Bullets) - 1; bi >= 0; bi-- {
		bullet := w.Bullets[bi]
		bb := bullet.Bounds()

		for ei := len(w.Enemies) - 1; ei >= 0; ei-- {
			enemy := w.Enemies[ei]
			eb := enemy.Bounds()
			if !bb.Overlaps(eb) {
				continue
			}

			w.Bullets = removeAt(w.Bullets, bi)
			depleted := enemy.Health().Damage(combat.BulletDamage)

			gain := s.balance.Energy.GainPerHit
			if s.state.EnergyBurstActive {
				gain = s.balance.Energy.GainPerHitBurst
			}
			s.state.AddEnergy(gain)

			w.EmitParticles(entities.ImpactBurst.Emit(s.rng, bullet.X, bullet.Y))
			s.playEnemyHit(eb.CenterX(), eb.CenterY())

			if depleted {
				s.destroyEnemy(ei, enemy)
			}
			break
		}
	}
}

// destroyEnemy 结算击毁奖励并移除敌机
func (s *CollisionSystem) destroyEnemy(index int, enemy entities.Actor) {
	combat := s.balance.Combat
	if enemy.IsBoss() {
		s.state.Score += combat.BossScore
		s.state.RaiseMaxHealth(combat.BossMaxHealthBonus)
		s.state.Heal(combat.BossHeal)
	} else {
		s.state.Score += combat.EnemyScore
	}

	eb := enemy.Bounds()
	s.world.EmitParticles(entities.DeathBurst.Emit(s.rng, eb.CenterX(), eb.CenterY()))
	s.world.Enemies = removeAt(s.world.Enemies, index)
}

// resolveEnemyShots 敌方子弹 × 玩家
// 子弹只被第一个重叠的玩家吸收
func (s *CollisionSystem) resolveEnemyShots() {
	w := s.world
	players := w.Players()

	for bi := len(w.EnemyBullets) - 1; bi >= 0; bi-- {
		shot := w.EnemyBullets[bi]
		sb := shot.Bounds()

		for _, p := range players {
			if !sb.Overlaps(p.Bounds()) {
				continue
			}
			w.EnemyBullets = removeAt(w.EnemyBullets, bi)
			s.hurtPlayer(s.balance.Combat.EnemyBulletDamage, entities.PlayerHitBurst, p)
			break
		}
	}
}

// resolveCrashes 玩家 × 敌机（撞机不得分）
func (s *CollisionSystem) resolveCrashes() {
	w := s.world
	players := w.Players()

	for ei := len(w.Enemies) - 1; ei >= 0; ei-- {
		eb := w.Enemies[ei].Bounds()

		for _, p := range players {
			if !eb.Overlaps(p.Bounds()) {
				continue
			}
			w.Enemies = removeAt(w.Enemies, ei)
			s.hurtPlayer(s.balance.Combat.BodyCollisionDamage, entities.CrashBurst, p)
			break
		}
	}
}

// resolvePickups 玩家 × 能量豆
func (s *CollisionSystem) resolvePickups() {
	w := s.world
	players := w.Players()

	for pi := len(w.PowerUps) - 1; pi >= 0; pi-- {
		pu := w.PowerUps[pi]
		pb := pu.Bounds()

		for _, p := range players {
			if !pb.Overlaps(p.Bounds()) {
				continue
			}
			p.Upgrade(s.balance.Player.MaxWeaponLevel)
			s.state.Heal(s.balance.Combat.PowerUpHeal)

			cx, cy := pb.CenterX(), pb.CenterY()
			w.EmitParticles(entities.UpgradeBurst.Emit(s.rng, cx, cy))
			w.EmitParticles(entities.HealBurst.Emit(s.rng, cx, cy))
			w.PowerUps = removeAt(w.PowerUps, pi)
			break
		}
	}
}

// hurtPlayer 扣除共享生命值并检查是否结束
func (s *CollisionSystem) hurtPlayer(damage float64, burst entities.Burst, p *entities.Player) {
	x, y := p.CenterX(), p.CenterY()
	depleted := s.state.Damage(damage)
	s.world.EmitParticles(burst.Emit(s.rng, x, y))
	s.cues.PlayCue(game.NewCue(game.CuePlayerHit, x, y, s.balance.World.Width))

	if depleted && s.onDepleted != nil {
		s.onDepleted()
	}
}

// playEnemyHit 播放敌机受击音效（同一位置 50ms 内只播放一次）
func (s *CollisionSystem) playEnemyHit(x, y float64) {
	if !s.limiter.Allow(x, y, s.clock.Now()) {
		return
	}
	s.cues.PlayCue(game.NewCue(game.CueEnemyHit, x, y, s.balance.World.Width))
}

// removeAt 删除下标 i 处的元素并保持其余元素的顺序
func removeAt[T any](s []T, i int) []T {
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

package entities

import (
	"math"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/ecs"
)

// Enemy 普通敌机：匀速下落并横向追踪目标玩家
type Enemy struct {
	X, Y          float64
	Width, Height float64
	FallSpeed     float64
	TrackSpeed    float64
	health        components.HealthComponent
	target        ecs.EntityID
}

// NewEnemy 创建普通敌机
func NewEnemy(cfg config.EnemyConfig, x, y, health float64, target ecs.EntityID) *Enemy {
	return &Enemy{
		X:          x,
		Y:          y,
		Width:      cfg.Width,
		Height:     cfg.Height,
		FallSpeed:  cfg.FallSpeed,
		TrackSpeed: cfg.TrackSpeed,
		health:     components.NewHealthComponent(health),
		target:     target,
	}
}

// Update 下落，并让机身中心向目标中心靠拢
func (e *Enemy) Update(deltaTime float64, target *Player) {
	f := components.FrameUnits(deltaTime)
	e.Y += e.FallSpeed * f
	e.trackX(target, e.TrackSpeed*f)
}

// trackX 横向追踪目标中心
func (e *Enemy) trackX(target *Player, step float64) {
	if target == nil {
		return
	}
	targetX := target.CenterX()
	centerX := e.X + e.Width/2
	if centerX < targetX {
		e.X += step
	} else if centerX > targetX {
		e.X -= step
	}
}

// Fire 普通敌机不射击
func (e *Enemy) Fire(deltaTime float64, target *Player) []*EnemyBullet {
	return nil
}

func (e *Enemy) IsBoss() bool { return false }

func (e *Enemy) Health() *components.HealthComponent { return &e.health }

func (e *Enemy) Target() ecs.EntityID { return e.target }

func (e *Enemy) SetTarget(id ecs.EntityID) { e.target = id }

// Bounds 返回碰撞盒
func (e *Enemy) Bounds() components.CollisionComponent {
	return components.CollisionComponent{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Boss 移动模式
const (
	BossPhaseHome   = iota // 向目标靠拢
	BossPhaseStrafe        // 左右摆动
	BossPhaseDive          // 下降
	bossPhaseCount
)

// Boss 周期性切换移动模式并向目标发射三连发
type Boss struct {
	Enemy
	cfg        config.BossConfig
	worldWidth float64
	Phase      int
	moveTimer  components.TimerComponent
	shootTimer components.TimerComponent
}

// NewBoss 创建 Boss
// worldWidth 为 Boss 水平活动范围
func NewBoss(cfg config.BossConfig, worldWidth, x, y, health float64, target ecs.EntityID) *Boss {
	return &Boss{
		Enemy: Enemy{
			X:          x,
			Y:          y,
			Width:      cfg.Width,
			Height:     cfg.Height,
			FallSpeed:  cfg.FallSpeed,
			TrackSpeed: cfg.TrackSpeed,
			health:     components.NewHealthComponent(health),
			target:     target,
		},
		cfg:        cfg,
		worldWidth: worldWidth,
		Phase:      BossPhaseHome,
	}
}

// Update 按当前模式移动，每 PhaseDuration 帧单位切换一次模式
// 任何模式下 X 都被限制在 [0, worldWidth-Width]
func (b *Boss) Update(deltaTime float64, target *Player) {
	f := components.FrameUnits(deltaTime)

	b.moveTimer.Advance(deltaTime)
	if b.moveTimer.Fire(b.cfg.PhaseDuration) {
		b.Phase = (b.Phase + 1) % bossPhaseCount
	}

	switch b.Phase {
	case BossPhaseHome:
		b.homeX(target, b.TrackSpeed*f)
	case BossPhaseStrafe:
		b.X += math.Sin(b.moveTimer.Elapsed*0.1) * b.cfg.StrafeAmplitude * f
	case BossPhaseDive:
		b.Y += b.FallSpeed * f
	}

	b.X = clamp(b.X, 0, b.worldWidth-b.Width)
}

// homeX 靠拢模式：用机身左边缘（而不是中心）对比目标中心
// 因此 Boss 最终停在左边缘对准目标中心的位置，整体偏右半个机身
func (b *Boss) homeX(target *Player, step float64) {
	if target == nil {
		return
	}
	targetX := target.CenterX()
	if b.X < targetX {
		b.X += step
	} else if b.X > targetX {
		b.X -= step
	}
}

// Fire 每 FireInterval 帧单位向目标发射 3 发子弹
// 第 i 发（i = -1, 0, 1）从 (centerX + 15i, bottom) 飞向 (target.X + 30i, target.Y)
func (b *Boss) Fire(deltaTime float64, target *Player) []*EnemyBullet {
	b.shootTimer.Advance(deltaTime)
	if !b.shootTimer.Fire(b.cfg.FireInterval) || target == nil {
		return nil
	}

	centerX := b.X + b.Width/2
	bottom := b.Y + b.Height
	bullets := make([]*EnemyBullet, 0, 3)
	for i := -1; i <= 1; i++ {
		dx := target.X + float64(i)*b.cfg.SpreadTargetOffset - centerX
		dy := target.Y - bottom
		vx, vy := aim(dx, dy, b.cfg.BulletSpeed)
		bullets = append(bullets, NewEnemyBullet(centerX+float64(i)*b.cfg.SpreadMuzzleOffset, bottom, vx, vy))
	}
	return bullets
}

func (b *Boss) IsBoss() bool { return true }

// aim 将方向向量归一化为指定速度
// 距离为 0 时垂直向下发射
func aim(dx, dy, speed float64) (float64, float64) {
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, speed
	}
	return dx / dist * speed, dy / dist * speed
}

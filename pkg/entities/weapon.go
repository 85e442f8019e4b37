package entities

import (
	"math"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/types"
)

// 武器等级范围
const (
	MinWeaponLevel = 1
	MaxWeaponLevel = 10
)

// muzzleOffsetX 发射点相对飞机左上角的水平偏移（60px 宽飞机的中心）
const muzzleOffsetX = 30

// Shot 武器图案中的一发子弹
// DX/DY 相对机头中心，Angle 为发射角（弧度）
type Shot struct {
	DX, DY float64
	Angle  float64
	Kind   types.ProjectileKind
}

// ClampWeaponLevel 将等级限制在 [1, 10]
func ClampWeaponLevel(level int) int {
	if level < MinWeaponLevel {
		return MinWeaponLevel
	}
	if level > MaxWeaponLevel {
		return MaxWeaponLevel
	}
	return level
}

// Pattern 返回指定等级的子弹图案（超出范围的等级会被限制）
func Pattern(level int) []Shot {
	var shots []Shot
	add := func(dx, dy, angle float64, kind types.ProjectileKind) {
		shots = append(shots, Shot{DX: dx, DY: dy, Angle: angle, Kind: kind})
	}
	ring := func(n int, dy, scale float64, kind types.ProjectileKind) {
		for i := 0; i < n; i++ {
			a := float64(i) / float64(n) * math.Pi * 2
			add(0, dy, math.Sin(a)*scale, kind)
		}
	}

	switch ClampWeaponLevel(level) {
	case 1:
		add(-2, 0, 0, types.ProjectileNormal)
	case 2:
		add(-15, 0, 0, types.ProjectileNormal)
		add(11, 0, 0, types.ProjectileNormal)
	case 3:
		add(-2, 0, 0, types.ProjectileEnhanced)
		add(-20, 0, 0, types.ProjectileNormal)
		add(16, 0, 0, types.ProjectileNormal)
	case 4:
		add(-15, 0, 0, types.ProjectileEnhanced)
		add(11, 0, 0, types.ProjectileEnhanced)
		add(-25, 15, 0, types.ProjectileNormal)
		add(21, 15, 0, types.ProjectileNormal)
	case 5:
		// 扫射
		for i := -2; i <= 2; i++ {
			add(float64(i)*8, 0, float64(i)*0.3, types.ProjectileSpread)
		}
	case 6:
		// 超级扫射 + 中路激光
		for i := -3; i <= 3; i++ {
			add(float64(i)*6, 0, float64(i)*0.4, types.ProjectileSpread)
		}
		add(-2, -10, 0, types.ProjectileLaser)
	case 7:
		// 激光炮
		for i := -2; i <= 2; i++ {
			add(float64(i)*10, 0, float64(i)*0.2, types.ProjectileLaser)
		}
		for i := -1; i <= 1; i++ {
			add(float64(i)*15, 10, float64(i)*0.5, types.ProjectileEnhanced)
		}
	case 8:
		// 螺旋弹幕
		ring(8, 0, 0.8, types.ProjectileSpiral)
	case 9:
		for i := -4; i <= 4; i++ {
			add(float64(i)*5, 0, float64(i)*0.3, types.ProjectileLaser)
		}
		ring(6, 5, 0.6, types.ProjectileSpiral)
	case 10:
		// 终极武器
		for i := -5; i <= 5; i++ {
			add(float64(i)*4, 0, float64(i)*0.2, types.ProjectileUltimate)
		}
		ring(12, 0, 0.8, types.ProjectileUltimate)
	}
	return shots
}

// Shoot 从飞机左上角 (x, y) 按等级发射一组子弹
func Shoot(level int, x, y float64) []*Bullet {
	return ShootFrom(level, x+muzzleOffsetX, y)
}

// ShootFrom 以机头中心 (centerX, y) 为原点发射
func ShootFrom(level int, centerX, y float64) []*Bullet {
	pattern := Pattern(level)
	bullets := make([]*Bullet, 0, len(pattern))
	for _, s := range pattern {
		bullets = append(bullets, NewBullet(centerX+s.DX, y+s.DY, s.Angle, s.Kind))
	}
	return bullets
}

// FireInterval 计算自动射击间隔（帧单位）
//
//	interval = max(MinInterval, floor((BaseInterval - level*LevelStep) / Divisor))
//	爆发时:    max(BurstMinInterval, floor(interval / BurstDivisor))
func FireInterval(cfg config.FireConfig, level int, burst bool) float64 {
	level = ClampWeaponLevel(level)
	interval := math.Max(cfg.MinInterval, math.Floor((cfg.BaseInterval-float64(level)*cfg.LevelStep)/cfg.Divisor))
	if burst {
		interval = math.Max(cfg.BurstMinInterval, math.Floor(interval/cfg.BurstDivisor))
	}
	return interval
}

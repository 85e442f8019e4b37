package entities

import (
	"image/color"

	"github.com/decker502/planewar/pkg/components"
)

// ParticleGravity 粒子重力加速度（每帧单位）
const ParticleGravity = 0.3

// ParticleSize 粒子绘制尺寸（像素）
const ParticleSize = 3

// Particle 纯视觉粒子，不参与碰撞
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   color.RGBA
	Life    float64 // 剩余生命（帧单位）
	MaxLife float64
}

// NewParticle 创建粒子
func NewParticle(x, y, vx, vy float64, c color.RGBA, life float64) *Particle {
	return &Particle{X: x, Y: y, VX: vx, VY: vy, Color: c, Life: life, MaxLife: life}
}

// Update 积分位置、消耗生命并施加重力
func (p *Particle) Update(deltaTime float64) {
	f := components.FrameUnits(deltaTime)
	p.X += p.VX * f
	p.Y += p.VY * f
	p.Life -= f
	p.VY += ParticleGravity * f
}

// Alive 报告粒子是否仍然存活
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Alpha 返回基于剩余生命的透明度 [0, 1]
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Burst 描述一次向四周散开的粒子爆发
type Burst struct {
	Count int
	Speed float64 // 速度分量范围：(rand-0.5)*Speed
	Color color.RGBA
	Life  float64
}

// 预定义的粒子爆发
var (
	ImpactBurst      = Burst{Count: 8, Speed: 36, Color: ColorOrange, Life: 30}
	DeathBurst       = Burst{Count: 30, Speed: 36, Color: ColorRed, Life: 80}
	PlayerHitBurst   = Burst{Count: 5, Speed: 4, Color: ColorRed, Life: 25}
	CrashBurst       = Burst{Count: 10, Speed: 6, Color: ColorRedOrange, Life: 40}
	UpgradeBurst     = Burst{Count: 12, Speed: 4, Color: ColorCyan, Life: 35}
	HealBurst        = Burst{Count: 8, Speed: 3, Color: ColorGreen, Life: 30}
	EnergyFlashBurst = Burst{Count: 20, Speed: 10, Color: ColorYellow, Life: 60}
)

// Emit 在 (x, y) 生成一组粒子
func (b Burst) Emit(r RandomSource, x, y float64) []*Particle {
	out := make([]*Particle, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		vx := spread(r, b.Speed)
		vy := spread(r, b.Speed)
		out = append(out, NewParticle(x, y, vx, vy, b.Color, b.Life))
	}
	return out
}

// MuzzleFlash 射击时在机头生成的 3 个向上飞散的粒子
func MuzzleFlash(r RandomSource, centerX, y float64, c color.RGBA) []*Particle {
	out := make([]*Particle, 0, 3)
	for i := 0; i < 3; i++ {
		x := centerX + spread(r, 20)
		vx := spread(r, 6)
		vy := -r.Float64() * 9
		out = append(out, NewParticle(x, y, vx, vy, c, 20))
	}
	return out
}

// Aura 能量爆发期间环绕飞机的粒子
func Aura(r RandomSource, centerX, centerY float64, c color.RGBA) []*Particle {
	out := make([]*Particle, 0, 5)
	for i := 0; i < 5; i++ {
		x := centerX + spread(r, 60)
		y := centerY + spread(r, 60)
		vx := spread(r, 8)
		vy := spread(r, 8)
		out = append(out, NewParticle(x, y, vx, vy, c, 30))
	}
	return out
}

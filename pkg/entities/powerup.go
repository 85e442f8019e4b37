package entities

import (
	"math"

	"github.com/decker502/planewar/pkg/components"
)

// 能量豆参数
const (
	PowerUpSize          = 25
	powerUpInitialSpeed  = 6    // 初始速度分量范围
	powerUpWanderPeriod  = 120  // 随机改变方向的周期（帧单位）
	powerUpWanderJitter  = 0.5  // 每次改变方向的扰动范围
	powerUpMaxSpeed      = 2    // 扰动后速度分量上限
	powerUpRotationSpeed = 0.05 // 每帧单位旋转弧度
)

// PowerUp 能量豆：升级武器并回复生命
type PowerUp struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64
	Rotation      float64
	Active        bool
	wander        components.TimerComponent
}

// NewPowerUp 在 (x, y) 创建随机初速度的能量豆
func NewPowerUp(r RandomSource, x, y float64) *PowerUp {
	return &PowerUp{
		X:      x,
		Y:      y,
		Width:  PowerUpSize,
		Height: PowerUpSize,
		VX:     spread(r, powerUpInitialSpeed),
		VY:     spread(r, powerUpInitialSpeed),
		Active: true,
	}
}

// Update 移动、碰壁反弹、周期性随机扰动并旋转
func (p *PowerUp) Update(deltaTime, canvasWidth, canvasHeight float64, r RandomSource) {
	f := components.FrameUnits(deltaTime)
	p.X += p.VX * f
	p.Y += p.VY * f

	// 反弹时把速度指向画布内部，避免卡在边缘来回翻转
	if p.X <= 0 {
		p.X = 0
		p.VX = math.Abs(p.VX)
	} else if p.X >= canvasWidth-p.Width {
		p.X = canvasWidth - p.Width
		p.VX = -math.Abs(p.VX)
	}
	if p.Y <= 0 {
		p.Y = 0
		p.VY = math.Abs(p.VY)
	} else if p.Y >= canvasHeight-p.Height {
		p.Y = canvasHeight - p.Height
		p.VY = -math.Abs(p.VY)
	}

	p.wander.Advance(deltaTime)
	if p.wander.Fire(powerUpWanderPeriod) {
		p.VX = clamp(p.VX+spread(r, powerUpWanderJitter), -powerUpMaxSpeed, powerUpMaxSpeed)
		p.VY = clamp(p.VY+spread(r, powerUpWanderJitter), -powerUpMaxSpeed, powerUpMaxSpeed)
	}

	p.Rotation += powerUpRotationSpeed * f
}

// Bounds 返回碰撞盒
func (p *PowerUp) Bounds() components.CollisionComponent {
	return components.CollisionComponent{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

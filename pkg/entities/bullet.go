package entities

import (
	"image/color"
	"math"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/types"
)

// ProjectileSpec 子弹类型的尺寸与速度
type ProjectileSpec struct {
	Width  float64
	Height float64
	Speed  float64 // 每帧单位像素
	Color  color.RGBA
}

// projectileSpecs 子弹类型查找表
var projectileSpecs = map[types.ProjectileKind]ProjectileSpec{
	types.ProjectileNormal:   {Width: 4, Height: 12, Speed: 18, Color: ColorYellow},
	types.ProjectileEnhanced: {Width: 6, Height: 16, Speed: 21, Color: ColorOrange},
	types.ProjectileSpread:   {Width: 4, Height: 12, Speed: 18, Color: color.RGBA{0x00, 0xff, 0x66, 0xff}},
	types.ProjectileLaser:    {Width: 3, Height: 20, Speed: 27, Color: color.RGBA{0xff, 0x00, 0x66, 0xff}},
	types.ProjectileSpiral:   {Width: 5, Height: 8, Speed: 15, Color: color.RGBA{0x66, 0x00, 0xff, 0xff}},
	types.ProjectileUltimate: {Width: 8, Height: 24, Speed: 24, Color: ColorWhite},
}

// SpecFor 返回子弹类型的参数，未知类型按普通子弹处理
func SpecFor(kind types.ProjectileKind) ProjectileSpec {
	if spec, ok := projectileSpecs[kind]; ok {
		return spec
	}
	return projectileSpecs[types.ProjectileNormal]
}

// Bullet 玩家子弹
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Angle         float64 // 弧度，0 表示垂直向上
	VX, VY        float64
	Age           float64 // 存在时间（帧单位）
	Kind          types.ProjectileKind
}

// NewBullet 按类型创建子弹
// vx = sin(angle)*speed, vy = -speed
func NewBullet(x, y, angle float64, kind types.ProjectileKind) *Bullet {
	spec := SpecFor(kind)
	return &Bullet{
		X:      x,
		Y:      y,
		Width:  spec.Width,
		Height: spec.Height,
		Speed:  spec.Speed,
		Angle:  angle,
		VX:     math.Sin(angle) * spec.Speed,
		VY:     -spec.Speed,
		Kind:   kind,
	}
}

// Update 推进子弹
// 螺旋弹的横向速度随存在时间摆动
func (b *Bullet) Update(deltaTime float64) {
	f := components.FrameUnits(deltaTime)
	b.Age += f

	if b.Kind == types.ProjectileSpiral {
		b.VX = math.Sin(b.Angle+b.Age*0.1) * b.Speed * 0.8
	}

	b.X += b.VX * f
	b.Y += b.VY * f
}

// OutOfBounds 子弹飞出画布顶部或左右两侧超过 50px 时移除
func (b *Bullet) OutOfBounds(canvasWidth float64) bool {
	return b.Y <= -20 || b.X <= -50 || b.X >= canvasWidth+50
}

// Bounds 返回碰撞盒
func (b *Bullet) Bounds() components.CollisionComponent {
	return components.CollisionComponent{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Color 返回当前绘制颜色
// 终极弹每 3 帧单位切换一次彩虹色
func (b *Bullet) Color() color.RGBA {
	if b.Kind == types.ProjectileUltimate {
		idx := int(math.Floor(b.Age/3)) % len(rainbow)
		if idx < 0 {
			idx = 0
		}
		return rainbow[idx]
	}
	return SpecFor(b.Kind).Color
}

// 敌机子弹尺寸
const (
	EnemyBulletWidth  = 6
	EnemyBulletHeight = 10
)

// EnemyBullet Boss 发射的子弹
type EnemyBullet struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64 // 每帧单位像素
}

// NewEnemyBullet 创建敌机子弹
func NewEnemyBullet(x, y, vx, vy float64) *EnemyBullet {
	return &EnemyBullet{X: x, Y: y, Width: EnemyBulletWidth, Height: EnemyBulletHeight, VX: vx, VY: vy}
}

// Update 匀速直线运动
func (b *EnemyBullet) Update(deltaTime float64) {
	f := components.FrameUnits(deltaTime)
	b.X += b.VX * f
	b.Y += b.VY * f
}

// OutOfBounds 完全离开画布超过 20px 时移除（四个方向）
func (b *EnemyBullet) OutOfBounds(canvasWidth, canvasHeight float64) bool {
	const margin = 20
	return b.Y >= canvasHeight+margin ||
		b.Y+b.Height <= -margin ||
		b.X >= canvasWidth+margin ||
		b.X+b.Width <= -margin
}

// Bounds 返回碰撞盒
func (b *EnemyBullet) Bounds() components.CollisionComponent {
	return components.CollisionComponent{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

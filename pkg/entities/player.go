package entities

import (
	"image/color"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/types"
)

// Controls 玩家的移动按键映射
type Controls struct {
	Up, Down, Left, Right types.InputKey
}

// 默认按键映射：1P 使用 WASD，2P 使用方向键
var (
	Player1Controls = Controls{Up: types.KeyP1Up, Down: types.KeyP1Down, Left: types.KeyP1Left, Right: types.KeyP1Right}
	Player2Controls = Controls{Up: types.KeyP2Up, Down: types.KeyP2Down, Left: types.KeyP2Left, Right: types.KeyP2Right}
)

// Player 玩家飞机
// 生命值是全局共享的（保存在 GameState 中），武器等级是每个玩家独立的
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Index         int // 0 = 1P, 1 = 2P
	WeaponLevel   int
	Controls      Controls
	ShootTimer    components.TimerComponent
}

// NewPlayer 创建玩家
// index 为 0 时使用 WASD，否则使用方向键
func NewPlayer(cfg config.PlayerConfig, index int, x, y float64) *Player {
	controls := Player1Controls
	if index > 0 {
		controls = Player2Controls
	}
	return &Player{
		X:           x,
		Y:           y,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Speed:       cfg.Speed,
		Index:       index,
		WeaponLevel: MinWeaponLevel,
		Controls:    controls,
	}
}

// Move 按键移动，移动后限制在画布内
// speedMultiplier 在能量爆发时为 1.5
func (p *Player) Move(keys types.KeyState, deltaTime, speedMultiplier, canvasWidth, canvasHeight float64) {
	step := p.Speed * components.FrameUnits(deltaTime) * speedMultiplier

	if keys.Pressed(p.Controls.Up) {
		p.Y -= step
	}
	if keys.Pressed(p.Controls.Down) {
		p.Y += step
	}
	if keys.Pressed(p.Controls.Left) {
		p.X -= step
	}
	if keys.Pressed(p.Controls.Right) {
		p.X += step
	}

	p.X = clamp(p.X, 0, canvasWidth-p.Width)
	p.Y = clamp(p.Y, 0, canvasHeight-p.Height)
}

// Shoot 按自身武器等级发射子弹
func (p *Player) Shoot() []*Bullet {
	return ShootFrom(p.WeaponLevel, p.CenterX(), p.Y)
}

// Upgrade 武器等级 +1（不超过上限）
func (p *Player) Upgrade(maxLevel int) {
	if p.WeaponLevel < maxLevel {
		p.WeaponLevel++
	}
	p.WeaponLevel = ClampWeaponLevel(p.WeaponLevel)
}

// CenterX 机身中心X
func (p *Player) CenterX() float64 { return p.X + p.Width/2 }

// CenterY 机身中心Y
func (p *Player) CenterY() float64 { return p.Y + p.Height/2 }

// Bounds 返回碰撞盒
func (p *Player) Bounds() components.CollisionComponent {
	return components.CollisionComponent{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Color 机身主色：1P 绿色，2P 红色
func (p *Player) Color() color.RGBA {
	if p.Index > 0 {
		return ColorRed
	}
	return ColorGreen
}

// MuzzleColor 射击粒子颜色：1P 黄色，2P 红色
func (p *Player) MuzzleColor() color.RGBA {
	if p.Index > 0 {
		return ColorRed
	}
	return ColorYellow
}

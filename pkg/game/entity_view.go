package game

import (
	"image/color"

	"github.com/decker502/planewar/pkg/types"
)

// EntityView 渲染器看到的只读实体快照
type EntityView struct {
	Kind           types.EntityKind
	X, Y           float64
	Width, Height  float64
	Color          color.RGBA
	Alpha          float64 // 透明度 [0, 1]，粒子随寿命淡出
	Rotation       float64 // 弧度
	HealthFraction float64 // 血量比例，仅敌机/Boss 有意义
	PlayerIndex    int     // 仅玩家有意义：0 = 1P，1 = 2P
	Burst          bool    // 能量爆发中（玩家发光）
	Projectile     types.ProjectileKind
}

package entities

import (
	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/ecs"
)

// Actor 敌方单位（普通敌机或 Boss）
//
// 目标玩家只保存 EntityID（弱引用），每帧由调用方通过玩家名册解析后传入；
// 解析失败时传入 nil，单位将不再追踪。
type Actor interface {
	Bounds() components.CollisionComponent
	// Update 移动单位，target 可以为 nil
	Update(deltaTime float64, target *Player)
	// Fire 推进射击计时器，到期时返回新发射的子弹
	Fire(deltaTime float64, target *Player) []*EnemyBullet
	IsBoss() bool
	Health() *components.HealthComponent
	Target() ecs.EntityID
	SetTarget(id ecs.EntityID)
}

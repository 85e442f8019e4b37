package game

import (
	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/entities"
)

// World 拥有一局游戏中的全部实体
//
// 各类实体按插入顺序保存在切片中，从切片中移除即销毁。
// 玩家保存在 ECS 名册中，其他实体通过 EntityID 弱引用玩家。
type World struct {
	Bullets      []*entities.Bullet
	EnemyBullets []*entities.EnemyBullet
	Enemies      []entities.Actor
	PowerUps     []*entities.PowerUp
	Particles    []*entities.Particle

	roster *ecs.EntityManager
}

// NewWorld 创建空世界
func NewWorld() *World {
	return &World{roster: ecs.NewEntityManager()}
}

// AddPlayer 把玩家加入名册，返回其 ID
func (w *World) AddPlayer(p *entities.Player) ecs.EntityID {
	id := w.roster.CreateEntity()
	ecs.AddComponent(w.roster, id, p)
	return id
}

// RemovePlayer 从名册中移除玩家
// 引用该玩家的敌机会在下一次解析目标时回退到其他玩家
func (w *World) RemovePlayer(id ecs.EntityID) {
	w.roster.DestroyEntity(id)
	w.roster.RemoveMarkedEntities()
}

// PlayerIDs 按加入顺序返回所有玩家 ID
func (w *World) PlayerIDs() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*entities.Player](w.roster)
}

// Players 按加入顺序返回所有玩家
func (w *World) Players() []*entities.Player {
	ids := w.PlayerIDs()
	players := make([]*entities.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := ecs.GetComponent[*entities.Player](w.roster, id); ok {
			players = append(players, p)
		}
	}
	return players
}

// Player 通过 ID 查找玩家
func (w *World) Player(id ecs.EntityID) (*entities.Player, bool) {
	return ecs.GetComponent[*entities.Player](w.roster, id)
}

// ResolveTarget 解析敌机的目标玩家
// ID 无法解析时回退到第一个存活玩家；没有玩家时返回 nil
func (w *World) ResolveTarget(id ecs.EntityID) *entities.Player {
	if p, ok := w.Player(id); ok {
		return p
	}
	ids := w.PlayerIDs()
	if len(ids) == 0 {
		return nil
	}
	p, _ := w.Player(ids[0])
	return p
}

// EmitParticles 追加粒子
func (w *World) EmitParticles(ps []*entities.Particle) {
	w.Particles = append(w.Particles, ps...)
}

// Clear 清空所有实体和名册
func (w *World) Clear() {
	w.Bullets = nil
	w.EnemyBullets = nil
	w.Enemies = nil
	w.PowerUps = nil
	w.Particles = nil
	w.roster.Clear()
}

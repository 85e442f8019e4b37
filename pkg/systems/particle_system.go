package systems

import "github.com/decker502/planewar/pkg/game"

// ParticleSystem 粒子积分与清理
type ParticleSystem struct {
	world *game.World
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(world *game.World) *ParticleSystem {
	return &ParticleSystem{world: world}
}

// Update 更新所有粒子，移除寿命耗尽的粒子
func (s *ParticleSystem) Update(deltaTime float64) {
	ps := s.world.Particles
	for i := len(ps) - 1; i >= 0; i-- {
		ps[i].Update(deltaTime)
		if !ps[i].Alive() {
			ps = removeAt(ps, i)
		}
	}
	s.world.Particles = ps
}

// Count 存活粒子数
func (s *ParticleSystem) Count() int {
	return len(s.world.Particles)
}

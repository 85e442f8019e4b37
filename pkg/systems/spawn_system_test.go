package systems

import (
	"math"
	"testing"

	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/types"
)

func newSpawnSystem(f *testFixture) *SpawnSystem {
	return NewSpawnSystem(f.world, f.state, f.balance, NewDifficultyEngine(f.balance), f.rng)
}

// TestSpawnEnemyHealth 测试首架敌机的血量（场景 1、2）
func TestSpawnEnemyHealth(t *testing.T) {
	tests := []struct {
		name       string
		difficulty types.Difficulty
		players    int
		want       float64
	}{
		{"普通难度单人", types.DifficultyNormal, 1, 5},
		{"困难难度双人", types.DifficultyHard, 2, 11},
		{"简单难度单人", types.DifficultyEasy, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(tt.players)
			f.state.Difficulty = tt.difficulty
			s := newSpawnSystem(f)

			// 累加超过 200 帧单位后生成第一架敌机
			s.Update(3.4)
			if len(f.world.Enemies) != 1 {
				t.Fatalf("enemies: got %d, want 1", len(f.world.Enemies))
			}
			if got := f.world.Enemies[0].Health().Max(); got != tt.want {
				t.Errorf("health: got %v, want %v", got, tt.want)
			}
			if f.state.EnemySpawnTimer.Elapsed != 0 {
				t.Errorf("enemy timer should reset, got %v", f.state.EnemySpawnTimer.Elapsed)
			}
		})
	}
}

// TestSpawnEnemyPosition 测试敌机出生在画布顶部的随机位置
func TestSpawnEnemyPosition(t *testing.T) {
	f := newTestFixture(1)
	f.rng = newSeqRand(0.25)
	s := newSpawnSystem(f)

	e := s.SpawnEnemy()
	// x = rand * (W - 50)
	if e.X != 237.5 || e.Y != -50 {
		t.Errorf("position: got (%v, %v), want (237.5, -50)", e.X, e.Y)
	}
}

// TestSpawnEnemyIntervalShrinks 测试游戏时间越长刷怪越快
func TestSpawnEnemyIntervalShrinks(t *testing.T) {
	f := newTestFixture(1)
	s := newSpawnSystem(f)

	// 200 帧单位时不生成（严格大于）
	f.state.EnemySpawnTimer.Elapsed = 190
	s.Update(0)
	if len(f.world.Enemies) != 0 {
		t.Fatalf("t=0: enemy spawned below interval")
	}

	// 30 秒后间隔变为 200/1.3 ≈ 153.8
	f.state.GameTime = 30
	s.Update(0)
	if len(f.world.Enemies) != 1 {
		t.Errorf("t=30: got %d enemies, want 1", len(f.world.Enemies))
	}
}

// TestSpawnBoss 测试 Boss 的概率生成，无论是否生成计时器都会清零
func TestSpawnBoss(t *testing.T) {
	tests := []struct {
		name   string
		roll   float64
		bosses int
	}{
		{"命中概率", 0.1, 1},
		{"未命中概率", 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(1)
			f.rng = newSeqRand(tt.roll)
			s := newSpawnSystem(f)

			f.state.BossSpawnTimer.Elapsed = 1600.5
			s.Update(0)

			bosses := 0
			for _, e := range f.world.Enemies {
				if e.IsBoss() {
					bosses++
				}
			}
			if bosses != tt.bosses {
				t.Errorf("bosses: got %d, want %d", bosses, tt.bosses)
			}
			if f.state.BossSpawnTimer.Elapsed != 0 {
				t.Errorf("boss timer should reset regardless, got %v", f.state.BossSpawnTimer.Elapsed)
			}
		})
	}
}

// TestSpawnBossPositionAndHealth 测试 Boss 的出生点和血量
func TestSpawnBossPositionAndHealth(t *testing.T) {
	f := newTestFixture(1)
	s := newSpawnSystem(f)

	b := s.SpawnBoss()
	if b.X != 460 || b.Y != -80 {
		t.Errorf("position: got (%v, %v), want (460, -80)", b.X, b.Y)
	}
	if b.Health().Max() != 23 {
		t.Errorf("health: got %v, want 23", b.Health().Max())
	}

	f.state.GameTime = 20
	b = s.SpawnBoss()
	// 23 + floor(20/10) * (23/2)
	if b.Health().Max() != 46 {
		t.Errorf("health at t=20: got %v, want 46", b.Health().Max())
	}
}

// TestSpawnPowerUp 测试能量豆的出生区域
func TestSpawnPowerUp(t *testing.T) {
	f := newTestFixture(1)
	f.rng = newSeqRand(0.5, 0.5, 0.5, 0.5)
	s := newSpawnSystem(f)

	f.state.PowerUpSpawnTimer.Elapsed = 1000
	s.Update(0)
	if len(f.world.PowerUps) != 0 {
		t.Fatal("power-up spawned at exactly 1000 frame units")
	}

	s.Update(1.0 / 60)
	if len(f.world.PowerUps) != 1 {
		t.Fatalf("power-ups: got %d, want 1", len(f.world.PowerUps))
	}
	p := f.world.PowerUps[0]
	// (0.5*(1000-30), 0.5*(700-200)+50)
	if p.X != 485 || p.Y != 300 {
		t.Errorf("position: got (%v, %v), want (485, 300)", p.X, p.Y)
	}
	if math.Abs(p.VX) > 3 || math.Abs(p.VY) > 3 {
		t.Errorf("initial velocity out of range: (%v, %v)", p.VX, p.VY)
	}
}

// TestSpawnTargetSelection 测试双人模式下随机选择目标
func TestSpawnTargetSelection(t *testing.T) {
	tests := []struct {
		name    string
		players int
		rolls   []float64 // x 坐标, 目标
		want    int       // 目标玩家下标
	}{
		{"单人总是 1P", 1, []float64{0.5, 0.1}, 0},
		{"双人低于 0.5 选 2P", 2, []float64{0.5, 0.2}, 1},
		{"双人不低于 0.5 选 1P", 2, []float64{0.5, 0.7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(tt.players)
			f.rng = newSeqRand(tt.rolls...)
			s := newSpawnSystem(f)

			e := s.SpawnEnemy()
			ids := f.world.PlayerIDs()
			if e.Target() != ids[tt.want] {
				t.Errorf("target: got %v, want %v", e.Target(), ids[tt.want])
			}
		})
	}
}

// TestSpawnWithoutPlayers 测试名册为空时敌机没有目标
func TestSpawnWithoutPlayers(t *testing.T) {
	f := newTestFixture(0)
	s := newSpawnSystem(f)

	e := s.SpawnEnemy()
	if got := f.world.ResolveTarget(e.Target()); got != nil {
		t.Errorf("target: got %v, want nil", got)
	}
	var _ entities.Actor = e
}

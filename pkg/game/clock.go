package game

import "time"

// Clock 提供当前时间
// 生产环境使用 SystemClock，测试中使用 ManualClock
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统时间
type SystemClock struct{}

// Now 返回系统当前时间
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock 手动推进的时钟，用于确定性测试
type ManualClock struct {
	now time.Time
}

// NewManualClock 创建从 start 开始的手动时钟
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前时间
func (c *ManualClock) Now() time.Time { return c.now }

// Advance 推进时钟
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// GameClock 可暂停的游戏时钟
//
// 游戏时间 = 当前时间 - 开始时间 - 累计暂停时长。
// 恢复时把开始时间向后平移暂停的时长，因此暂停期间不计入游戏时间。
type GameClock struct {
	clock    Clock
	start    time.Time
	pausedAt time.Time
	running  bool
	paused   bool
}

// NewGameClock 创建游戏时钟，clock 为 nil 时使用系统时间
func NewGameClock(clock Clock) *GameClock {
	if clock == nil {
		clock = SystemClock{}
	}
	return &GameClock{clock: clock}
}

// Start 记录开始时间
func (gc *GameClock) Start() {
	gc.start = gc.clock.Now()
	gc.pausedAt = time.Time{}
	gc.running = true
	gc.paused = false
}

// Stop 停止计时，Elapsed 归零
func (gc *GameClock) Stop() {
	gc.running = false
	gc.paused = false
}

// Pause 冻结游戏时间，重复调用无效
func (gc *GameClock) Pause() {
	if !gc.running || gc.paused {
		return
	}
	gc.paused = true
	gc.pausedAt = gc.clock.Now()
}

// Resume 恢复游戏时间，重复调用无效
func (gc *GameClock) Resume() {
	if !gc.running || !gc.paused {
		return
	}
	gc.start = gc.start.Add(gc.clock.Now().Sub(gc.pausedAt))
	gc.paused = false
	gc.pausedAt = time.Time{}
}

// Elapsed 返回扣除暂停时长后的游戏时间
func (gc *GameClock) Elapsed() time.Duration {
	if !gc.running {
		return 0
	}
	now := gc.clock.Now()
	if gc.paused {
		now = gc.pausedAt
	}
	if d := now.Sub(gc.start); d > 0 {
		return d
	}
	return 0
}

// Seconds 返回整数秒的游戏时间
func (gc *GameClock) Seconds() int {
	return int(gc.Elapsed() / time.Second)
}

// Now 返回底层时钟的当前时间
func (gc *GameClock) Now() time.Time {
	return gc.clock.Now()
}

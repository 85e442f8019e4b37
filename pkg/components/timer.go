package components

// FramesPerSecond 是帧单位的换算基准
// 所有"每 N 帧"的节奏都以 deltaTime*60 的累加表示，与实际帧率无关
const FramesPerSecond = 60.0

// FrameUnits 将秒数换算为帧单位
func FrameUnits(deltaTime float64) float64 {
	return deltaTime * FramesPerSecond
}

// TimerComponent 通用累加计时器（帧单位）
// 用于处理需要节奏的行为（如刷怪周期、射击间隔）
type TimerComponent struct {
	Elapsed float64 // 已累加的帧单位
}

// Advance 累加 deltaTime（秒）对应的帧单位
func (t *TimerComponent) Advance(deltaTime float64) {
	t.Elapsed += FrameUnits(deltaTime)
}

// Exceeded 检查累加值是否严格超过阈值
func (t *TimerComponent) Exceeded(threshold float64) bool {
	return t.Elapsed > threshold
}

// Fire 如果累加值超过阈值则清零并返回 true
func (t *TimerComponent) Fire(threshold float64) bool {
	if t.Elapsed > threshold {
		t.Elapsed = 0
		return true
	}
	return false
}

// Reset 清零计时器
func (t *TimerComponent) Reset() {
	t.Elapsed = 0
}

package types

// InputKey 逻辑按键（与物理按键解耦）
// 物理按键到逻辑按键的映射在 utils 包中完成
type InputKey int

const (
	KeyP1Up InputKey = iota
	KeyP1Down
	KeyP1Left
	KeyP1Right
	KeyP2Up
	KeyP2Down
	KeyP2Left
	KeyP2Right
	// KeyBurst 能量爆发（空格）
	KeyBurst
)

// KeyState 每帧采样的按键状态
// nil 的 KeyState 表示没有任何按键被按下
type KeyState map[InputKey]bool

// Pressed 报告按键当前是否处于按下状态
func (k KeyState) Pressed(key InputKey) bool {
	return k[key]
}

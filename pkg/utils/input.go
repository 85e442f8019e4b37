// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/planewar/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 逻辑按键到物理按键的映射
// 一个逻辑按键可以绑定多个物理按键
type KeyBindings map[types.InputKey][]ebiten.Key

// DefaultKeyBindings 默认按键：1P 使用 WASD，2P 使用方向键，空格激活能量爆发
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		types.KeyP1Up:    {ebiten.KeyW},
		types.KeyP1Down:  {ebiten.KeyS},
		types.KeyP1Left:  {ebiten.KeyA},
		types.KeyP1Right: {ebiten.KeyD},
		types.KeyP2Up:    {ebiten.KeyArrowUp},
		types.KeyP2Down:  {ebiten.KeyArrowDown},
		types.KeyP2Left:  {ebiten.KeyArrowLeft},
		types.KeyP2Right: {ebiten.KeyArrowRight},
		types.KeyBurst:   {ebiten.KeySpace},
	}
}

// SampleKeys 按映射采样当前帧的按键状态
// pressed 通常为 ebiten.IsKeyPressed，测试时可以替换
func SampleKeys(bindings KeyBindings, pressed func(ebiten.Key) bool) types.KeyState {
	state := make(types.KeyState, len(bindings))
	for logical, keys := range bindings {
		for _, k := range keys {
			if pressed(k) {
				state[logical] = true
				break
			}
		}
	}
	return state
}

// Triggers 当前帧刚刚触发的一次性操作
type Triggers struct {
	Start      bool // 点击 / 回车
	Pause      bool // P / Esc
	Restart    bool // R
	Burst      bool // 空格
	TwoPlayer  bool // T
	Difficulty types.Difficulty
	// SetDifficulty 为 true 时 Difficulty 有效（1/2/3）
	SetDifficulty bool

	ToggleMusic bool // M
	ToggleSound bool // N
	// VolumeSteps 音量调整方向：= 为 +1，- 为 -1
	VolumeSteps int
}

// PollTriggers 根据刚按下的按键和点击状态生成触发器
// justPressed 通常为 inpututil.IsKeyJustPressed
func PollTriggers(justPressed func(ebiten.Key) bool, clicked bool) Triggers {
	t := Triggers{
		Start:     clicked || justPressed(ebiten.KeyEnter) || justPressed(ebiten.KeyNumpadEnter),
		Pause:     justPressed(ebiten.KeyP) || justPressed(ebiten.KeyEscape),
		Restart:   justPressed(ebiten.KeyR),
		Burst:     justPressed(ebiten.KeySpace),
		TwoPlayer: justPressed(ebiten.KeyT),

		ToggleMusic: justPressed(ebiten.KeyM),
		ToggleSound: justPressed(ebiten.KeyN),
	}

	if justPressed(ebiten.KeyEqual) || justPressed(ebiten.KeyNumpadAdd) {
		t.VolumeSteps++
	}
	if justPressed(ebiten.KeyMinus) || justPressed(ebiten.KeyNumpadSubtract) {
		t.VolumeSteps--
	}

	switch {
	case justPressed(ebiten.Key1) || justPressed(ebiten.KeyNumpad1):
		t.Difficulty, t.SetDifficulty = types.DifficultyEasy, true
	case justPressed(ebiten.Key2) || justPressed(ebiten.KeyNumpad2):
		t.Difficulty, t.SetDifficulty = types.DifficultyNormal, true
	case justPressed(ebiten.Key3) || justPressed(ebiten.KeyNumpad3):
		t.Difficulty, t.SetDifficulty = types.DifficultyHard, true
	}
	return t
}

// ReadKeys 采样实时键盘状态
func ReadKeys(bindings KeyBindings) types.KeyState {
	return SampleKeys(bindings, ebiten.IsKeyPressed)
}

// ReadTriggers 采样实时的一次性操作（键盘、鼠标和触摸）
// 移动端没有空格键，运行中轻触屏幕即激活能量爆发
func ReadTriggers() Triggers {
	clicked, _, _ := IsJustTouchedOrClicked()
	t := PollTriggers(inpututil.IsKeyJustPressed, clicked)
	if IsMobile() && clicked {
		t.Burst = true
	}
	return t
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game driven by the application loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Tick advances the scene to the wall-clock instant now.
	// The scene derives its own deltaTime from consecutive ticks.
	Tick(now time.Time)

	// Draw renders the scene to the provided screen.
	// Draw is called every frame, including while the simulation is paused.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}

package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Tick and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Tick and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	log.Printf("[SceneManager] Switched scene: %T", scene)
}

// GetCurrentScene 返回当前活动的场景
//
// 用于游戏关闭时检查当前场景是否需要保存状态
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Tick advances the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Tick(now time.Time) {
	if sm.currentScene != nil {
		sm.currentScene.Tick(now)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 让当前场景在退出前保存状态
// 当前场景未实现 Saveable 时视为无需保存
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

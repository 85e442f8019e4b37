// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/scenes"
	"github.com/decker502/planewar/pkg/types"
	"github.com/decker502/planewar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "planewar"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Difficulty 覆盖保存的难度偏好，为空则使用偏好设置
	Difficulty string
	// TwoPlayer 以双人模式启动（覆盖偏好设置）
	TwoPlayer bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// BalancePath 磁盘上的平衡配置文件，为空则使用内置配置
	BalancePath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameScene                *scenes.GameScene
	bindings                 utils.KeyBindings
	screenWidth              int // 逻辑画布尺寸，与平衡配置中的世界尺寸一致
	screenHeight             int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	balance, err := loadBalance(cfg.BalancePath)
	if err != nil {
		return nil, fmt.Errorf("平衡配置加载失败: %w", err)
	}

	// 偏好设置与最好成绩（gdata 不可用时降级为仅内存）
	storage := openStorage()
	settingsManager, err := game.NewSettingsManager(storage)
	if err != nil {
		return nil, fmt.Errorf("偏好设置初始化失败: %w", err)
	}
	if cfg.Difficulty != "" {
		d, err := types.ParseDifficulty(cfg.Difficulty)
		if err != nil {
			return nil, err
		}
		settingsManager.SetDifficulty(d)
	}
	if cfg.TwoPlayer {
		settingsManager.SetTwoPlayer(true)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)
	var cues game.CueSink = game.NopCueSink{}
	if audioManager, err := game.NewAudioManager(audioContext, settingsManager); err != nil {
		log.Printf("[App] Audio disabled: %v", err)
	} else {
		cues = audioManager
		log.Printf("[App] AudioManager initialized")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	gameScene := scenes.NewGameScene(scenes.Options{
		Balance:  balance,
		Rand:     rand.New(rand.NewSource(seed)),
		Clock:    game.SystemClock{},
		Cues:     cues,
		Settings: settingsManager,
		Records:  game.NewRecordManager(storage),
	})

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	// 关闭窗口时先保存偏好设置
	ebiten.SetWindowClosingHandled(true)

	return &App{
		sceneManager: sceneManager,
		gameScene:    gameScene,
		bindings:     utils.DefaultKeyBindings(),
		screenWidth:  int(balance.World.Width),
		screenHeight: int(balance.World.Height),
	}, nil
}

// loadBalance 读取内置或磁盘上的平衡配置
func loadBalance(path string) (*config.BalanceConfig, error) {
	if path == "" {
		return config.LoadBalance(config.DefaultBalancePath)
	}
	log.Printf("[Config] Loading balance override: %s", path)
	return config.LoadBalanceFile(path)
}

// openStorage 打开 gdata 存储，失败时返回 nil
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Storage directory unavailable: %v", err)
		return nil
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	if !utils.IsMobile() {
		a.handleFullscreen()
	}

	a.gameScene.HandleInput(utils.ReadKeys(a.bindings), utils.ReadTriggers())
	a.sceneManager.Tick(time.Now())
	return nil
}

// handleFullscreen F11 切换全屏
func (a *App) handleFullscreen() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

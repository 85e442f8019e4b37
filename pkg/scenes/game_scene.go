package scenes

import (
	"log"
	"math"
	"time"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/systems"
	"github.com/decker502/planewar/pkg/types"
	"github.com/decker502/planewar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Options GameScene 的依赖
// 除 Balance 和 Rand 外都可以为空，空值使用默认实现
type Options struct {
	Balance  *config.BalanceConfig
	Rand     entities.RandomSource
	Clock    game.Clock            // 默认为系统时钟
	Cues     game.CueSink          // 默认静默
	Settings *game.SettingsManager // 为 nil 时不读写偏好
	Records  *game.RecordManager   // 为 nil 时不记录最好成绩
}

// GameScene 一局飞机大战的模拟与状态机
//
// 状态转换：
//
//	NotStarted --Start--> Running <--TogglePause--> Paused
//	Running --(生命值耗尽)--> Ended
//	Running/Paused/Ended --Restart--> NotStarted
//
// 所有实体都归 world 所有，所有标量归 state 所有；
// 外部协作者（音效、时钟、随机数、偏好设置）通过 Options 注入。
type GameScene struct {
	balance  *config.BalanceConfig
	world    *game.World
	state    *game.GameState
	clock    *game.GameClock
	cues     *game.SafeCueSink
	rng      entities.RandomSource
	settings *game.SettingsManager
	records  *game.RecordManager

	// 帧驱动
	lastTime    time.Time
	hasLastTime bool
	keys        types.KeyState

	// ECS Systems
	engine          *systems.DifficultyEngine
	energySystem    *systems.EnergySystem
	movementSystem  *systems.MovementSystem
	weaponSystem    *systems.WeaponSystem
	particleSystem  *systems.ParticleSystem
	spawnSystem     *systems.SpawnSystem
	collisionSystem *systems.CollisionSystem
	renderSystem    *systems.RenderSystem // 首次 Draw 时创建

	hud       game.HUD
	newRecord bool // 本局结束时是否刷新了最好成绩
}

// NewGameScene 创建处于未开始状态的游戏场景
func NewGameScene(opts Options) *GameScene {
	if opts.Balance == nil {
		opts.Balance = config.DefaultBalance()
	}
	if opts.Cues == nil {
		opts.Cues = game.NopCueSink{}
	}

	s := &GameScene{
		balance:  opts.Balance,
		world:    game.NewWorld(),
		state:    game.NewGameState(opts.Balance),
		clock:    game.NewGameClock(opts.Clock),
		cues:     game.NewSafeCueSink(opts.Cues),
		rng:      opts.Rand,
		settings: opts.Settings,
		records:  opts.Records,
		keys:     types.KeyState{},
	}

	if s.settings != nil {
		prefs := s.settings.GetSettings()
		s.state.Difficulty = prefs.PreferredDifficulty()
		s.state.TwoPlayerMode = prefs.TwoPlayer
	}

	s.engine = systems.NewDifficultyEngine(s.balance)
	s.energySystem = systems.NewEnergySystem(s.world, s.state, s.balance, s.rng)
	s.movementSystem = systems.NewMovementSystem(s.world, s.state, s.balance, s.rng)
	s.weaponSystem = systems.NewWeaponSystem(s.world, s.state, s.balance, s.rng)
	s.particleSystem = systems.NewParticleSystem(s.world)
	s.spawnSystem = systems.NewSpawnSystem(s.world, s.state, s.balance, s.engine, s.rng)
	s.collisionSystem = systems.NewCollisionSystem(s.world, s.state, s.balance, s.rng, s.cues, s.clock, s.end)

	s.syncHUD()
	log.Printf("[GameScene] Created (difficulty: %s, two-player: %v)", s.state.Difficulty, s.state.TwoPlayerMode)
	return s
}

// Start 开始新的一局
// 仅在未开始状态下有效
func (s *GameScene) Start() {
	if s.state.Started() {
		return
	}

	s.state.Reset(s.balance)
	s.world.Clear()

	w, h := s.balance.World.Width, s.balance.World.Height
	pc := s.balance.Player
	s.world.AddPlayer(entities.NewPlayer(pc, 0, w/2, h-pc.SpawnOffsetY))
	if s.state.TwoPlayerMode {
		s.world.AddPlayer(entities.NewPlayer(pc, 1, w/2+pc.Player2OffsetX, h-pc.SpawnOffsetY))
	}

	s.state.Status = types.StatusRunning
	s.clock.Start()
	s.cues.PlayMusic()
	s.syncHUD()

	log.Printf("[GameScene] Game started (difficulty: %s, players: %d)", s.state.Difficulty, len(s.world.PlayerIDs()))
}

// TogglePause 在运行与暂停之间切换
// 暂停期间游戏时间冻结，恢复后从暂停前的时间继续
func (s *GameScene) TogglePause() {
	switch s.state.Status {
	case types.StatusRunning:
		s.state.Status = types.StatusPaused
		s.clock.Pause()
		s.cues.PauseMusic()
		log.Printf("[GameScene] Paused at %ds", s.state.GameTime)
	case types.StatusPaused:
		s.state.Status = types.StatusRunning
		s.clock.Resume()
		s.cues.ResumeMusic()
		log.Printf("[GameScene] Resumed at %ds", s.state.GameTime)
	default:
		return
	}
	s.syncHUD()
}

// end 结束本局
// 只在运行中第一次生命值耗尽时生效，重复调用无效
func (s *GameScene) end() {
	if s.state.Status != types.StatusRunning {
		return
	}
	s.state.Status = types.StatusEnded
	s.clock.Stop()
	s.cues.StopMusic()
	if s.records != nil {
		s.newRecord = s.records.Submit(s.state.Difficulty, s.state.Score, s.state.GameTime)
	}
	s.syncHUD()

	log.Printf("[GameScene] Game over (score: %d, time: %ds)", s.state.Score, s.state.GameTime)
}

// Restart 清空本局并回到未开始状态
func (s *GameScene) Restart() {
	if !s.state.Started() {
		return
	}
	s.world.Clear()
	s.state.Reset(s.balance)
	s.state.Status = types.StatusNotStarted
	s.newRecord = false
	s.clock.Stop()
	s.cues.StopMusic()
	s.syncHUD()

	log.Printf("[GameScene] Restarted")
}

// Tick 以真实时间驱动一帧
// deltaTime 为与上一帧的间隔，最大 MaxDeltaTime；第一帧使用 1/60 秒
func (s *GameScene) Tick(now time.Time) {
	dt := 1.0 / 60
	if s.hasLastTime {
		dt = math.Max(0, math.Min(now.Sub(s.lastTime).Seconds(), s.balance.World.MaxDeltaTime))
	}
	s.lastTime = now
	s.hasLastTime = true

	if s.state.Running() {
		s.Update(dt)
	}
}

// Update 按固定顺序推进一帧模拟
func (s *GameScene) Update(deltaTime float64) {
	if !s.state.Running() {
		return
	}

	// 1. 游戏时间（扣除暂停）
	s.state.SetGameTime(s.clock.Seconds())

	// 2. 能量爆发消耗
	s.energySystem.Update(deltaTime)

	// 3. 存活得分
	s.state.AccrueScore(deltaTime, s.balance.Combat.PointsPerSecond)

	// 4. 玩家移动与自动射击
	s.movementSystem.UpdatePlayers(deltaTime, s.keys, s.energySystem.SpeedMultiplier())
	s.weaponSystem.Update(deltaTime)

	// 5. 子弹与粒子
	s.movementSystem.UpdateProjectiles(deltaTime)
	s.particleSystem.Update(deltaTime)

	// 6. 刷怪
	s.spawnSystem.Update(deltaTime)

	// 7. 敌机、Boss 射击、能量豆
	s.movementSystem.UpdateEnemies(deltaTime)
	s.movementSystem.UpdatePowerUps(deltaTime)

	// 8. 碰撞结算（可能结束本局）
	s.collisionSystem.Update()

	// 9. HUD
	s.syncHUD()
}

// ActivateEnergyBurst 激活能量爆发
// 仅在运行中、能量已满且未激活时生效
func (s *GameScene) ActivateEnergyBurst() bool {
	if !s.state.Running() {
		return false
	}
	ok := s.energySystem.Activate()
	s.syncHUD()
	return ok
}

// SetDifficulty 设置难度，只影响之后生成的敌机
func (s *GameScene) SetDifficulty(d types.Difficulty) {
	if s.state.Difficulty == d {
		return
	}
	s.state.Difficulty = d
	if s.settings != nil {
		s.settings.SetDifficulty(d)
	}
	s.syncHUD()
	log.Printf("[GameScene] Difficulty set to %s", d)
}

// SetTwoPlayerMode 切换双人模式，仅在未开始状态下有效
func (s *GameScene) SetTwoPlayerMode(on bool) {
	if s.state.Started() || s.state.TwoPlayerMode == on {
		return
	}
	s.state.TwoPlayerMode = on
	if s.settings != nil {
		s.settings.SetTwoPlayer(on)
	}
	s.syncHUD()
	log.Printf("[GameScene] Two-player mode: %v", on)
}

// VolumeStep 每次按键调整的音量
const VolumeStep = 0.1

// SetMusicEnabled 打开或关闭背景音乐
// 运行中打开时立即恢复播放，暂停中打开则等到恢复时播放
func (s *GameScene) SetMusicEnabled(on bool) {
	if s.settings == nil || s.settings.GetSettings().MusicEnabled == on {
		return
	}
	s.settings.SetMusicEnabled(on)
	switch {
	case !on:
		s.cues.PauseMusic()
	case s.state.Status == types.StatusRunning:
		s.cues.ResumeMusic()
	}
	s.syncHUD()
	log.Printf("[GameScene] Music enabled: %v", on)
}

// SetSoundEnabled 打开或关闭受击音效
func (s *GameScene) SetSoundEnabled(on bool) {
	if s.settings == nil || s.settings.GetSettings().SoundEnabled == on {
		return
	}
	s.settings.SetSoundEnabled(on)
	s.syncHUD()
	log.Printf("[GameScene] Sound enabled: %v", on)
}

// AdjustVolume 将音乐和音效音量同时调整 steps 个 VolumeStep
// 结果四舍五入到一位小数并限制在 0.0 ~ 1.0
func (s *GameScene) AdjustVolume(steps int) {
	if s.settings == nil || steps == 0 {
		return
	}
	prefs := s.settings.GetSettings()
	s.settings.SetMusicVolume(stepVolume(prefs.MusicVolume, steps))
	s.settings.SetSoundVolume(stepVolume(prefs.SoundVolume, steps))
	s.cues.ApplyVolume()
	s.syncHUD()
	log.Printf("[GameScene] Volume: music %.1f, sound %.1f", prefs.MusicVolume, prefs.SoundVolume)
}

func stepVolume(v float64, steps int) float64 {
	return math.Round((v+float64(steps)*VolumeStep)*10) / 10
}

// HandleInput 处理一帧的输入
// keys 为持续按住的按键，triggers 为刚刚触发的一次性操作
func (s *GameScene) HandleInput(keys types.KeyState, triggers utils.Triggers) {
	if keys == nil {
		keys = types.KeyState{}
	}
	s.keys = keys

	if triggers.SetDifficulty {
		s.SetDifficulty(triggers.Difficulty)
	}
	if triggers.TwoPlayer {
		s.SetTwoPlayerMode(!s.state.TwoPlayerMode)
	}
	if s.settings != nil {
		prefs := s.settings.GetSettings()
		if triggers.ToggleMusic {
			s.SetMusicEnabled(!prefs.MusicEnabled)
		}
		if triggers.ToggleSound {
			s.SetSoundEnabled(!prefs.SoundEnabled)
		}
	}
	s.AdjustVolume(triggers.VolumeSteps)

	switch s.state.Status {
	case types.StatusNotStarted:
		if triggers.Start {
			s.Start()
		}
	case types.StatusRunning, types.StatusPaused:
		if triggers.Pause {
			s.TogglePause()
		} else if triggers.Restart {
			s.Restart()
		} else if triggers.Burst {
			s.ActivateEnergyBurst()
		}
	case types.StatusEnded:
		if triggers.Restart {
			s.Restart()
		}
	}
}

// HUD 返回最近一次同步的抬头显示数据
func (s *GameScene) HUD() game.HUD {
	return s.hud
}

func (s *GameScene) syncHUD() {
	players := s.world.Players()
	levels := make([]int, len(players))
	for i, p := range players {
		levels[i] = p.WeaponLevel
	}

	best := 0
	if s.records != nil {
		best = s.records.Best(s.state.Difficulty).Score
	}

	prefs := game.DefaultSettings()
	if s.settings != nil {
		prefs = s.settings.GetSettings()
	}

	s.hud = game.HUD{
		Status:            s.state.Status,
		Difficulty:        s.state.Difficulty,
		TwoPlayerMode:     s.state.TwoPlayerMode,
		Score:             s.state.Score,
		BestScore:         best,
		NewRecord:         s.newRecord,
		WeaponLevels:      levels,
		GameTime:          s.state.GameTime,
		TimeText:          utils.FormatClock(s.state.GameTime),
		HealthText:        utils.FormatHealth(s.state.Health(), s.state.MaxHealth()),
		Energy:            s.state.Energy(),
		MaxEnergy:         s.state.MaxEnergy(),
		EnergyText:        utils.FormatEnergy(s.state.Energy(), s.state.MaxEnergy()),
		EnergyBurstActive: s.state.EnergyBurstActive,
		MusicEnabled:      prefs.MusicEnabled,
		SoundEnabled:      prefs.SoundEnabled,
		MusicVolume:       utils.FormatVolume(prefs.MusicVolume),
		SoundVolume:       utils.FormatVolume(prefs.SoundVolume),
	}
}

// VisitEntities 按绘制顺序逐个提供实体的只读快照
// 顺序：玩家、玩家子弹、敌方子弹、敌机、能量豆、粒子
func (s *GameScene) VisitEntities(visit func(game.EntityView)) {
	burst := s.state.EnergyBurstActive

	for _, p := range s.world.Players() {
		visit(game.EntityView{
			Kind:        types.KindPlayer,
			X:           p.X,
			Y:           p.Y,
			Width:       p.Width,
			Height:      p.Height,
			Color:       p.Color(),
			Alpha:       1,
			PlayerIndex: p.Index,
			Burst:       burst,
		})
	}

	for _, b := range s.world.Bullets {
		visit(game.EntityView{
			Kind:       types.KindBullet,
			X:          b.X,
			Y:          b.Y,
			Width:      b.Width,
			Height:     b.Height,
			Color:      b.Color(),
			Alpha:      1,
			Rotation:   b.Angle,
			Projectile: b.Kind,
		})
	}

	for _, b := range s.world.EnemyBullets {
		visit(game.EntityView{
			Kind:   types.KindEnemyBullet,
			X:      b.X,
			Y:      b.Y,
			Width:  b.Width,
			Height: b.Height,
			Color:  entities.ColorEnemyShot,
			Alpha:  1,
		})
	}

	for _, e := range s.world.Enemies {
		bounds := e.Bounds()
		view := game.EntityView{
			Kind:           types.KindEnemy,
			X:              bounds.X,
			Y:              bounds.Y,
			Width:          bounds.Width,
			Height:         bounds.Height,
			Color:          entities.ColorRed,
			Alpha:          1,
			HealthFraction: e.Health().Fraction(),
		}
		if e.IsBoss() {
			view.Kind = types.KindBoss
			view.Color = entities.ColorBoss
		}
		visit(view)
	}

	for _, p := range s.world.PowerUps {
		visit(game.EntityView{
			Kind:     types.KindPowerUp,
			X:        p.X,
			Y:        p.Y,
			Width:    p.Width,
			Height:   p.Height,
			Color:    entities.ColorCyan,
			Alpha:    1,
			Rotation: p.Rotation,
		})
	}

	for _, p := range s.world.Particles {
		visit(game.EntityView{
			Kind:   types.KindParticle,
			X:      p.X,
			Y:      p.Y,
			Width:  entities.ParticleSize,
			Height: entities.ParticleSize,
			Color:  p.Color,
			Alpha:  p.Alpha(),
		})
	}
}

// Draw 绘制当前画面（任何状态下都会调用）
func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.renderSystem == nil {
		s.renderSystem = systems.NewRenderSystem(s.balance.World.Width, s.balance.World.Height)
	}
	s.renderSystem.Draw(screen, s)
}

// SaveOnExit 退出时保存偏好设置
func (s *GameScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Failed to save settings: %v", err)
		return false
	}
	return true
}

package scenes

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/types"
	"github.com/decker502/planewar/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// fixedRand 始终返回同一个值
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// musicRecorder 记录音乐控制调用
type musicRecorder struct {
	game.NopCueSink
	calls []string
}

func (m *musicRecorder) PlayMusic()   { m.calls = append(m.calls, "play") }
func (m *musicRecorder) PauseMusic()  { m.calls = append(m.calls, "pause") }
func (m *musicRecorder) ResumeMusic() { m.calls = append(m.calls, "resume") }
func (m *musicRecorder) StopMusic()   { m.calls = append(m.calls, "stop") }
func (m *musicRecorder) ApplyVolume() { m.calls = append(m.calls, "volume") }

// panicSink 所有调用都会 panic
type panicSink struct{}

func (panicSink) PlayCue(game.Cue) { panic("audio device lost") }
func (panicSink) PlayMusic()       { panic("audio device lost") }
func (panicSink) PauseMusic()      { panic("audio device lost") }
func (panicSink) ResumeMusic()     { panic("audio device lost") }
func (panicSink) StopMusic()       { panic("audio device lost") }

// quietBalance 关闭所有刷新，只保留玩家
func quietBalance() *config.BalanceConfig {
	b := config.DefaultBalance()
	b.Spawn.EnemyBaseInterval = 1e9
	b.Spawn.BossInterval = 1e9
	b.Spawn.PowerUpInterval = 1e9
	return b
}

type sceneFixture struct {
	scene *GameScene
	clock *game.ManualClock
	music *musicRecorder
}

func newSceneFixture(balance *config.BalanceConfig, settings *game.SettingsManager) *sceneFixture {
	clock := game.NewManualClock(time.Unix(1_700_000_000, 0))
	music := &musicRecorder{}
	scene := NewGameScene(Options{
		Balance:  balance,
		Rand:     fixedRand(0.5),
		Clock:    clock,
		Cues:     music,
		Settings: settings,
	})
	return &sceneFixture{scene: scene, clock: clock, music: music}
}

// step 推进时钟并驱动一帧
func (f *sceneFixture) step(d time.Duration) {
	f.clock.Advance(d)
	f.scene.Tick(f.clock.Now())
}

func TestStartPlacesPlayers(t *testing.T) {
	tests := []struct {
		name      string
		twoPlayer bool
		wantX     []float64
	}{
		{"单人", false, []float64{500}},
		{"双人", true, []float64{500, 530}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSceneFixture(quietBalance(), nil)
			f.scene.SetTwoPlayerMode(tt.twoPlayer)
			f.scene.Start()

			players := f.scene.world.Players()
			if len(players) != len(tt.wantX) {
				t.Fatalf("players: got %d, want %d", len(players), len(tt.wantX))
			}
			for i, p := range players {
				if p.X != tt.wantX[i] || p.Y != 580 {
					t.Errorf("player %d: got (%v, %v), want (%v, 580)", i, p.X, p.Y, tt.wantX[i])
				}
			}
			if f.scene.state.Status != types.StatusRunning {
				t.Errorf("status: got %v, want Running", f.scene.state.Status)
			}
			if len(f.music.calls) != 1 || f.music.calls[0] != "play" {
				t.Errorf("music calls: got %v, want [play]", f.music.calls)
			}
		})
	}
}

func TestStartOnlyFromNotStarted(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)
	f.scene.Start()
	f.scene.state.Score = 42

	f.scene.Start()
	if f.scene.state.Score != 42 {
		t.Errorf("second Start must be ignored: score got %d, want 42", f.scene.state.Score)
	}
	if len(f.scene.world.Players()) != 1 {
		t.Errorf("players: got %d, want 1", len(f.scene.world.Players()))
	}
}

// TestEnergyBurstScenario 满能量激活后每 50ms 消耗 1.25
func TestEnergyBurstScenario(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)
	f.scene.Tick(f.clock.Now())
	f.scene.Start()
	f.scene.state.AddEnergy(100)

	if !f.scene.ActivateEnergyBurst() {
		t.Fatal("ActivateEnergyBurst with full energy should succeed")
	}
	if f.scene.ActivateEnergyBurst() {
		t.Error("ActivateEnergyBurst while active should fail")
	}

	for i := 0; i < 20; i++ {
		f.step(50 * time.Millisecond)
	}
	if got := f.scene.state.Energy(); math.Abs(got-75) > 1e-9 {
		t.Errorf("energy after 20 frames: got %v, want 75", got)
	}
	if !f.scene.state.EnergyBurstActive {
		t.Error("burst should still be active at 75")
	}

	for i := 0; i < 60; i++ {
		f.step(50 * time.Millisecond)
	}
	if got := f.scene.state.Energy(); got != 0 {
		t.Errorf("energy after 80 frames: got %v, want 0", got)
	}
	if f.scene.state.EnergyBurstActive {
		t.Error("burst should be deactivated when energy is depleted")
	}
	if f.scene.HUD().EnergyBurstActive {
		t.Error("HUD should reflect the deactivated burst")
	}
}

func TestActivateEnergyBurstRequiresRunning(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)
	f.scene.state.AddEnergy(100)
	if f.scene.ActivateEnergyBurst() {
		t.Error("ActivateEnergyBurst before Start should fail")
	}
}

func TestTogglePause(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)

	f.scene.TogglePause()
	if f.scene.state.Status != types.StatusNotStarted {
		t.Errorf("TogglePause before Start: got %v, want NotStarted", f.scene.state.Status)
	}

	f.scene.Start()
	f.scene.TogglePause()
	if f.scene.state.Status != types.StatusPaused {
		t.Errorf("after first toggle: got %v, want Paused", f.scene.state.Status)
	}
	f.scene.TogglePause()
	if f.scene.state.Status != types.StatusRunning {
		t.Errorf("after second toggle: got %v, want Running", f.scene.state.Status)
	}

	want := []string{"play", "pause", "resume"}
	if len(f.music.calls) != len(want) {
		t.Fatalf("music calls: got %v, want %v", f.music.calls, want)
	}
	for i := range want {
		if f.music.calls[i] != want[i] {
			t.Errorf("music call %d: got %s, want %s", i, f.music.calls[i], want[i])
		}
	}
}

// TestGameTimeExcludesPause 暂停期间游戏时间冻结
func TestGameTimeExcludesPause(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)
	f.scene.Tick(f.clock.Now())
	f.scene.Start()

	f.step(2 * time.Second)
	if f.scene.state.GameTime != 2 {
		t.Fatalf("game time before pause: got %d, want 2", f.scene.state.GameTime)
	}

	f.scene.TogglePause()
	f.step(10 * time.Second)
	if f.scene.state.GameTime != 2 {
		t.Errorf("game time while paused: got %d, want 2", f.scene.state.GameTime)
	}

	f.scene.TogglePause()
	f.step(1 * time.Second)
	if f.scene.state.GameTime != 3 {
		t.Errorf("game time after resume: got %d, want 3", f.scene.state.GameTime)
	}
	if f.scene.HUD().TimeText != "00:03" {
		t.Errorf("HUD time: got %q, want %q", f.scene.HUD().TimeText, "00:03")
	}
}

// TestTickClampsDeltaTime 长时间卡顿只按 MaxDeltaTime 推进
func TestTickClampsDeltaTime(t *testing.T) {
	tests := []struct {
		name  string
		first bool // 是否为第一帧（没有上一帧时间）
		gap   time.Duration
		wantX float64
	}{
		{"第一帧按 1/60 秒", true, 0, 509},
		{"正常帧 50ms", false, 50 * time.Millisecond, 527},
		{"卡顿 1s 被截断为 50ms", false, time.Second, 527},
		{"16ms", false, 16 * time.Millisecond, 500 + 9*0.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSceneFixture(quietBalance(), nil)
			if !tt.first {
				f.scene.Tick(f.clock.Now())
			}
			f.scene.Start()
			f.scene.HandleInput(types.KeyState{types.KeyP1Right: true}, utils.Triggers{})

			f.step(tt.gap)
			got := f.scene.world.Players()[0].X
			if math.Abs(got-tt.wantX) > 1e-6 {
				t.Errorf("player X: got %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestEndIsIdempotent(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)

	f.scene.end()
	if f.scene.state.Status != types.StatusNotStarted {
		t.Errorf("end before Start: got %v, want NotStarted", f.scene.state.Status)
	}

	f.scene.Start()
	f.scene.end()
	f.scene.end()
	if f.scene.state.Status != types.StatusEnded {
		t.Errorf("status: got %v, want Ended", f.scene.state.Status)
	}

	stops := 0
	for _, c := range f.music.calls {
		if c == "stop" {
			stops++
		}
	}
	if stops != 1 {
		t.Errorf("StopMusic calls: got %d, want 1", stops)
	}

	// 结束后不再推进
	f.scene.state.Score = 7
	f.step(time.Second)
	if f.scene.state.Score != 7 {
		t.Errorf("score changed after end: got %d, want 7", f.scene.state.Score)
	}
}

// TestHealthDepletionEndsGame 敌方子弹耗尽共享生命值后结束本局
func TestHealthDepletionEndsGame(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)
	f.scene.Start()
	f.scene.state.Damage(f.scene.state.Health() - 15)

	p := f.scene.world.Players()[0]
	f.scene.world.EnemyBullets = append(f.scene.world.EnemyBullets,
		entities.NewEnemyBullet(p.CenterX(), p.CenterY(), 0, 0))
	f.scene.collisionSystem.Update()

	if f.scene.state.Status != types.StatusEnded {
		t.Errorf("status: got %v, want Ended", f.scene.state.Status)
	}
	if f.scene.HUD().HealthText != "0/100" {
		t.Errorf("HUD health: got %q, want %q", f.scene.HUD().HealthText, "0/100")
	}
	if len(f.scene.world.EnemyBullets) != 0 {
		t.Errorf("enemy bullets: got %d, want 0", len(f.scene.world.EnemyBullets))
	}
}

func TestRestart(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)

	f.scene.Restart()
	if f.scene.state.Status != types.StatusNotStarted {
		t.Errorf("Restart before Start: got %v, want NotStarted", f.scene.state.Status)
	}

	f.scene.SetTwoPlayerMode(true)
	f.scene.SetDifficulty(types.DifficultyHard)
	f.scene.Start()
	f.scene.state.Score = 120
	f.scene.state.AddEnergy(40)
	f.scene.end()

	f.scene.Restart()
	if f.scene.state.Status != types.StatusNotStarted {
		t.Errorf("status: got %v, want NotStarted", f.scene.state.Status)
	}
	if f.scene.state.Score != 0 || f.scene.state.Energy() != 0 {
		t.Errorf("score/energy: got %d/%v, want 0/0", f.scene.state.Score, f.scene.state.Energy())
	}
	if len(f.scene.world.Players()) != 0 {
		t.Errorf("players after restart: got %d, want 0", len(f.scene.world.Players()))
	}
	if !f.scene.state.TwoPlayerMode || f.scene.state.Difficulty != types.DifficultyHard {
		t.Error("Restart must keep difficulty and two-player mode")
	}

	f.scene.Start()
	if len(f.scene.world.Players()) != 2 {
		t.Errorf("players after second Start: got %d, want 2", len(f.scene.world.Players()))
	}
}

func TestSetTwoPlayerModeOnlyBeforeStart(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)
	f.scene.Start()
	f.scene.SetTwoPlayerMode(true)
	if f.scene.state.TwoPlayerMode {
		t.Error("SetTwoPlayerMode during a game must be ignored")
	}
	if f.scene.HUD().TwoPlayerMode {
		t.Error("HUD should not report two-player mode")
	}
}

// TestHandleInput 一次性操作按状态分派
func TestHandleInput(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *GameScene)
		input  utils.Triggers
		status types.GameStatus
	}{
		{"未开始时点击开始", func(s *GameScene) {}, utils.Triggers{Start: true}, types.StatusRunning},
		{"未开始时暂停无效", func(s *GameScene) {}, utils.Triggers{Pause: true}, types.StatusNotStarted},
		{"运行中暂停", func(s *GameScene) { s.Start() }, utils.Triggers{Pause: true}, types.StatusPaused},
		{"运行中重开", func(s *GameScene) { s.Start() }, utils.Triggers{Restart: true}, types.StatusNotStarted},
		{"运行中开始无效", func(s *GameScene) { s.Start() }, utils.Triggers{Start: true}, types.StatusRunning},
		{"暂停中恢复", func(s *GameScene) { s.Start(); s.TogglePause() }, utils.Triggers{Pause: true}, types.StatusRunning},
		{"结束后重开", func(s *GameScene) { s.Start(); s.end() }, utils.Triggers{Restart: true}, types.StatusNotStarted},
		{"结束后暂停无效", func(s *GameScene) { s.Start(); s.end() }, utils.Triggers{Pause: true}, types.StatusEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSceneFixture(quietBalance(), nil)
			tt.setup(f.scene)
			f.scene.HandleInput(nil, tt.input)
			if f.scene.state.Status != tt.status {
				t.Errorf("status: got %v, want %v", f.scene.state.Status, tt.status)
			}
		})
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	settings, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager: %v", err)
	}
	settings.SetDifficulty(types.DifficultyEasy)
	settings.SetTwoPlayer(true)

	f := newSceneFixture(quietBalance(), settings)
	if f.scene.state.Difficulty != types.DifficultyEasy {
		t.Errorf("difficulty from settings: got %v, want easy", f.scene.state.Difficulty)
	}
	if !f.scene.state.TwoPlayerMode {
		t.Error("two-player mode should come from settings")
	}

	f.scene.HandleInput(nil, utils.Triggers{Difficulty: types.DifficultyHard, SetDifficulty: true})
	if got := settings.GetSettings().Difficulty; got != "hard" {
		t.Errorf("saved difficulty: got %q, want %q", got, "hard")
	}
	if !f.scene.SaveOnExit() {
		t.Error("SaveOnExit without storage should succeed")
	}
}

func newMemorySettings(t *testing.T) *game.SettingsManager {
	t.Helper()
	settings, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager: %v", err)
	}
	return settings
}

func sameCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// TestMusicToggleFollowsStatus 音乐开关与对局状态配合
func TestMusicToggleFollowsStatus(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *GameScene)
		want  []string
	}{
		{"未开始时关闭再打开", func(s *GameScene) {}, []string{"pause"}},
		{"运行中关闭再打开", func(s *GameScene) { s.Start() }, []string{"play", "pause", "resume"}},
		{"暂停中关闭再打开", func(s *GameScene) { s.Start(); s.TogglePause() }, []string{"play", "pause", "pause"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := newMemorySettings(t)
			f := newSceneFixture(quietBalance(), settings)
			tt.setup(f.scene)

			f.scene.HandleInput(nil, utils.Triggers{ToggleMusic: true})
			if settings.GetSettings().MusicEnabled {
				t.Error("music should be disabled after the first toggle")
			}
			if f.scene.HUD().MusicEnabled {
				t.Error("HUD should reflect disabled music")
			}
			f.scene.HandleInput(nil, utils.Triggers{ToggleMusic: true})
			if !settings.GetSettings().MusicEnabled {
				t.Error("music should be enabled after the second toggle")
			}
			if !sameCalls(f.music.calls, tt.want) {
				t.Errorf("music calls: got %v, want %v", f.music.calls, tt.want)
			}
		})
	}
}

func TestSoundToggle(t *testing.T) {
	settings := newMemorySettings(t)
	f := newSceneFixture(quietBalance(), settings)
	f.scene.Start()

	f.scene.HandleInput(nil, utils.Triggers{ToggleSound: true})
	if settings.GetSettings().SoundEnabled {
		t.Error("sound should be disabled")
	}
	if f.scene.HUD().SoundEnabled {
		t.Error("HUD should reflect disabled sound")
	}
	if f.scene.state.Status != types.StatusRunning {
		t.Errorf("toggling sound must not change status: got %v", f.scene.state.Status)
	}
}

func TestAdjustVolume(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		steps []int
		want  float64
		text  string
	}{
		{"增大一档", 0.3, []int{1}, 0.4, "40%"},
		{"减小一档", 0.3, []int{-1}, 0.2, "20%"},
		{"上限为 1", 0.9, []int{1, 1, 1}, 1, "100%"},
		{"下限为 0", 0.1, []int{-1, -1}, 0, "0%"},
		{"多次调整无累积误差", 0.3, []int{1, 1, 1, -1, -1, -1}, 0.3, "30%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := newMemorySettings(t)
			settings.SetMusicVolume(tt.start)
			settings.SetSoundVolume(tt.start)
			f := newSceneFixture(quietBalance(), settings)

			for _, step := range tt.steps {
				f.scene.HandleInput(nil, utils.Triggers{VolumeSteps: step})
			}

			prefs := settings.GetSettings()
			if prefs.MusicVolume != tt.want || prefs.SoundVolume != tt.want {
				t.Errorf("volume: got music %v sound %v, want %v", prefs.MusicVolume, prefs.SoundVolume, tt.want)
			}
			if hud := f.scene.HUD(); hud.MusicVolume != tt.text || hud.SoundVolume != tt.text {
				t.Errorf("HUD volume: got %q/%q, want %q", hud.MusicVolume, hud.SoundVolume, tt.text)
			}
			if len(f.music.calls) != len(tt.steps) {
				t.Errorf("ApplyVolume calls: got %v, want %d", f.music.calls, len(tt.steps))
			}
		})
	}
}

// TestAudioPreferencesPersist 音频偏好通过 gdata 保存，下次启动时恢复
func TestAudioPreferencesPersist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	storage, err := gdata.Open(gdata.Config{AppName: "planewar_scene_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}

	settings, _ := game.NewSettingsManager(storage)
	f := newSceneFixture(quietBalance(), settings)
	f.scene.HandleInput(nil, utils.Triggers{ToggleMusic: true, ToggleSound: true, VolumeSteps: 1})
	if !f.scene.SaveOnExit() {
		t.Fatal("SaveOnExit should succeed")
	}

	reloaded, _ := game.NewSettingsManager(storage)
	prefs := reloaded.GetSettings()
	if prefs.MusicEnabled || prefs.SoundEnabled {
		t.Errorf("enabled flags: got music %v sound %v, want false false", prefs.MusicEnabled, prefs.SoundEnabled)
	}
	if prefs.MusicVolume != 0.4 || prefs.SoundVolume != 0.4 {
		t.Errorf("volumes: got %v/%v, want 0.4/0.4", prefs.MusicVolume, prefs.SoundVolume)
	}
}

// TestAudioControlsWithoutSettings 没有偏好存储时音频按键被忽略
func TestAudioControlsWithoutSettings(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)
	f.scene.HandleInput(nil, utils.Triggers{ToggleMusic: true, ToggleSound: true, VolumeSteps: 1})
	if len(f.music.calls) != 0 {
		t.Errorf("music calls: got %v, want none", f.music.calls)
	}
	hud := f.scene.HUD()
	if !hud.MusicEnabled || !hud.SoundEnabled || hud.MusicVolume != "30%" {
		t.Errorf("HUD should show defaults: got %+v", hud)
	}
}

func TestHUDFormatting(t *testing.T) {
	f := newSceneFixture(quietBalance(), nil)
	f.scene.Start()
	f.scene.state.AddEnergy(37.8)
	f.scene.state.Damage(15)
	f.scene.syncHUD()

	hud := f.scene.HUD()
	if hud.HealthText != "85/100" {
		t.Errorf("HealthText: got %q, want %q", hud.HealthText, "85/100")
	}
	if hud.EnergyText != "37/100" {
		t.Errorf("EnergyText: got %q, want %q", hud.EnergyText, "37/100")
	}
	if hud.TimeText != "00:00" {
		t.Errorf("TimeText: got %q, want %q", hud.TimeText, "00:00")
	}
	if len(hud.WeaponLevels) != 1 || hud.WeaponLevels[0] != 1 {
		t.Errorf("WeaponLevels: got %v, want [1]", hud.WeaponLevels)
	}
}

// TestVisitEntitiesOrder 绘制顺序：玩家、玩家子弹、敌方子弹、敌机、能量豆、粒子
func TestVisitEntitiesOrder(t *testing.T) {
	rank := map[types.EntityKind]int{
		types.KindPlayer:      0,
		types.KindBullet:      1,
		types.KindEnemyBullet: 2,
		types.KindEnemy:       3,
		types.KindBoss:        3,
		types.KindPowerUp:     4,
		types.KindParticle:    5,
	}

	f := newSceneFixture(quietBalance(), nil)
	f.scene.Tick(f.clock.Now())
	f.scene.Start()
	f.scene.spawnSystem.SpawnEnemy()
	f.scene.spawnSystem.SpawnPowerUp()
	f.scene.world.EnemyBullets = append(f.scene.world.EnemyBullets, entities.NewEnemyBullet(100, 100, 0, 1))
	for i := 0; i < 10; i++ {
		f.step(50 * time.Millisecond)
	}

	seen := map[types.EntityKind]bool{}
	var kinds []types.EntityKind
	f.scene.VisitEntities(func(v game.EntityView) {
		kinds = append(kinds, v.Kind)
		seen[v.Kind] = true
	})
	for i := 1; i < len(kinds); i++ {
		if rank[kinds[i]] < rank[kinds[i-1]] {
			t.Errorf("entity %d (%v) drawn after %v", i, kinds[i], kinds[i-1])
		}
	}
	for _, k := range []types.EntityKind{types.KindPlayer, types.KindBullet, types.KindEnemyBullet, types.KindEnemy, types.KindPowerUp, types.KindParticle} {
		if !seen[k] {
			t.Errorf("no %v visited", k)
		}
	}
}

func TestAudioFailureDoesNotStopGame(t *testing.T) {
	clock := game.NewManualClock(time.Unix(1_700_000_000, 0))
	scene := NewGameScene(Options{
		Balance: quietBalance(),
		Rand:    fixedRand(0.5),
		Clock:   clock,
		Cues:    panicSink{},
	})
	scene.Start()
	scene.TogglePause()
	scene.TogglePause()
	scene.end()
	if scene.state.Status != types.StatusEnded {
		t.Errorf("status: got %v, want Ended", scene.state.Status)
	}
}

func TestEndSubmitsRecord(t *testing.T) {
	records := game.NewRecordManager(nil)
	clock := game.NewManualClock(time.Unix(1_700_000_000, 0))
	scene := NewGameScene(Options{
		Balance: quietBalance(),
		Rand:    fixedRand(0.5),
		Clock:   clock,
		Records: records,
	})

	scene.Start()
	scene.state.Score = 90
	scene.end()
	if !scene.HUD().NewRecord || scene.HUD().BestScore != 90 {
		t.Errorf("first game: got new=%v best=%d, want new=true best=90", scene.HUD().NewRecord, scene.HUD().BestScore)
	}

	scene.Restart()
	if scene.HUD().NewRecord {
		t.Error("Restart should clear the new-record flag")
	}
	scene.Start()
	scene.state.Score = 40
	scene.end()
	if scene.HUD().NewRecord || scene.HUD().BestScore != 90 {
		t.Errorf("second game: got new=%v best=%d, want new=false best=90", scene.HUD().NewRecord, scene.HUD().BestScore)
	}
}

package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器，实现 CueSink
//
// 职责：
//   - 合成受击音效（锯齿波/三角波扫频），按声源位置做立体声声像
//   - 循环播放合成的背景音乐
//   - 从 SettingsManager 读取音量与开关
//
// 所有 PCM 数据都是 16 位小端立体声，采样率与 audio.Context 一致。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager      // 可为 nil，使用默认设置
	cueSamples      map[CueKind][]float64 // 单声道采样缓存（未做声像）
	music           *audio.Player
	musicPaused     bool
}

var _ CueSink = (*AudioManager)(nil)

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) (*AudioManager, error) {
	if ctx == nil {
		return nil, fmt.Errorf("audio context is nil")
	}
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		cueSamples:      make(map[CueKind][]float64),
	}
	for _, kind := range []CueKind{CueEnemyHit, CuePlayerHit} {
		am.cueSamples[kind] = toneFor(kind).synthesize(ctx.SampleRate())
	}
	log.Printf("[AudioManager] Synthesized %d cues at %d Hz", len(am.cueSamples), ctx.SampleRate())
	return am, nil
}

// PlayCue 播放一次受击音效
// 每次播放都会生成带声像的 PCM，并创建一次性播放器
func (am *AudioManager) PlayCue(cue Cue) {
	settings := am.settings()
	if !settings.SoundEnabled {
		return
	}

	mono, ok := am.cueSamples[cue.Kind]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown cue %s", cue.Kind)
		return
	}

	player := am.context.NewPlayerFromBytes(encodeStereo(mono, cue.Pan))
	player.SetVolume(settings.SoundVolume)
	player.Play()
}

// PlayMusic 从头播放背景音乐
func (am *AudioManager) PlayMusic() {
	settings := am.settings()
	if !settings.MusicEnabled {
		return
	}

	if am.music == nil {
		player, err := am.newMusicPlayer()
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to create music player: %v", err)
			return
		}
		am.music = player
	}

	am.music.SetVolume(settings.MusicVolume)
	if err := am.music.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music: %v", err)
	}
	am.music.Play()
	am.musicPaused = false

	log.Printf("[AudioManager] Playing music (volume: %.2f)", settings.MusicVolume)
}

// PauseMusic 暂停背景音乐
func (am *AudioManager) PauseMusic() {
	if am.music != nil && am.music.IsPlaying() {
		am.music.Pause()
		am.musicPaused = true
	}
}

// ResumeMusic 恢复被暂停的背景音乐
// 开局时音乐处于关闭状态、之后又被打开的情况下从头播放
func (am *AudioManager) ResumeMusic() {
	if !am.settings().MusicEnabled {
		return
	}
	if am.music == nil {
		am.PlayMusic()
		return
	}
	if !am.musicPaused {
		return
	}
	am.music.SetVolume(am.settings().MusicVolume)
	am.music.Play()
	am.musicPaused = false
}

// StopMusic 停止背景音乐
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
		am.musicPaused = false
	}
}

// ApplyVolume 把当前设置中的音乐音量应用到正在播放的音乐
// 音效音量在每次 PlayCue 时读取，无需处理
func (am *AudioManager) ApplyVolume() {
	if am.music != nil {
		am.music.SetVolume(am.settings().MusicVolume)
	}
}

// newMusicPlayer 创建无限循环的背景音乐播放器
func (am *AudioManager) newMusicPlayer() (*audio.Player, error) {
	pcm := encodeStereo(musicLoop(am.context.SampleRate()), 0)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := am.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	return player, nil
}

// settings 返回当前设置，没有 SettingsManager 时使用默认值
func (am *AudioManager) settings() *GameSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return DefaultSettings()
}

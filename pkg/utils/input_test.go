package utils

import (
	"testing"

	"github.com/decker502/planewar/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestSampleKeys(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    []types.InputKey
	}{
		{"无按键", nil, nil},
		{"1P 斜向", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, []types.InputKey{types.KeyP1Up, types.KeyP1Right}},
		{"2P 方向键", []ebiten.Key{ebiten.KeyArrowLeft}, []types.InputKey{types.KeyP2Left}},
		{"空格", []ebiten.Key{ebiten.KeySpace}, []types.InputKey{types.KeyBurst}},
		{"无关按键", []ebiten.Key{ebiten.KeyQ}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := SampleKeys(DefaultKeyBindings(), keySet(tt.pressed...))

			count := 0
			for _, pressed := range state {
				if pressed {
					count++
				}
			}
			if count != len(tt.want) {
				t.Errorf("pressed keys: got %d, want %d (%v)", count, len(tt.want), state)
			}
			for _, k := range tt.want {
				if !state.Pressed(k) {
					t.Errorf("%v should be pressed", k)
				}
			}
		})
	}
}

func TestPollTriggers(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		clicked bool
		want    Triggers
	}{
		{"点击开始", nil, true, Triggers{Start: true}},
		{"回车开始", []ebiten.Key{ebiten.KeyEnter}, false, Triggers{Start: true}},
		{"P 暂停", []ebiten.Key{ebiten.KeyP}, false, Triggers{Pause: true}},
		{"Esc 暂停", []ebiten.Key{ebiten.KeyEscape}, false, Triggers{Pause: true}},
		{"R 重新开始", []ebiten.Key{ebiten.KeyR}, false, Triggers{Restart: true}},
		{"空格爆发", []ebiten.Key{ebiten.KeySpace}, false, Triggers{Burst: true}},
		{"T 双人", []ebiten.Key{ebiten.KeyT}, false, Triggers{TwoPlayer: true}},
		{"1 简单", []ebiten.Key{ebiten.Key1}, false, Triggers{Difficulty: types.DifficultyEasy, SetDifficulty: true}},
		{"2 普通", []ebiten.Key{ebiten.Key2}, false, Triggers{Difficulty: types.DifficultyNormal, SetDifficulty: true}},
		{"3 困难", []ebiten.Key{ebiten.Key3}, false, Triggers{Difficulty: types.DifficultyHard, SetDifficulty: true}},
		{"M 音乐开关", []ebiten.Key{ebiten.KeyM}, false, Triggers{ToggleMusic: true}},
		{"N 音效开关", []ebiten.Key{ebiten.KeyN}, false, Triggers{ToggleSound: true}},
		{"= 增大音量", []ebiten.Key{ebiten.KeyEqual}, false, Triggers{VolumeSteps: 1}},
		{"- 减小音量", []ebiten.Key{ebiten.KeyMinus}, false, Triggers{VolumeSteps: -1}},
		{"同时按下 - 和 = 相互抵消", []ebiten.Key{ebiten.KeyMinus, ebiten.KeyEqual}, false, Triggers{}},
		{"无操作", nil, false, Triggers{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PollTriggers(keySet(tt.pressed...), tt.clicked); got != tt.want {
				t.Errorf("PollTriggers: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

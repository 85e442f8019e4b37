package systems

import (
	"time"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/entities"
	"github.com/decker502/planewar/pkg/game"
)

// seqRand 按顺序返回预设的随机数，用尽后重复最后一个
// 仅用于测试，保证刷怪和粒子行为可复现
type seqRand struct {
	values []float64
	next   int
}

func newSeqRand(values ...float64) *seqRand {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &seqRand{values: values}
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.next]
	if r.next < len(r.values)-1 {
		r.next++
	}
	return v
}

// recordingCueSink 记录所有音效请求
type recordingCueSink struct {
	game.NopCueSink
	cues []game.Cue
}

func (s *recordingCueSink) PlayCue(c game.Cue) {
	s.cues = append(s.cues, c)
}

func (s *recordingCueSink) count(kind game.CueKind) int {
	n := 0
	for _, c := range s.cues {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// testFixture 组装一局运行中的最小模拟环境
type testFixture struct {
	balance *config.BalanceConfig
	world   *game.World
	state   *game.GameState
	clock   *game.ManualClock
	cues    *recordingCueSink
	rng     *seqRand
}

func newTestFixture(players int) *testFixture {
	balance := config.DefaultBalance()
	f := &testFixture{
		balance: balance,
		world:   game.NewWorld(),
		state:   game.NewGameState(balance),
		clock:   game.NewManualClock(time.Unix(1_700_000_000, 0)),
		cues:    &recordingCueSink{},
		rng:     newSeqRand(0.5),
	}
	f.state.TwoPlayerMode = players > 1
	for i := 0; i < players; i++ {
		p := entities.NewPlayer(balance.Player, i, 470+float64(i)*30, 580)
		f.world.AddPlayer(p)
	}
	return f
}

// simulate 无窗口运行一局飞机大战，用于验证平衡配置
//
// 时钟与随机数都是确定的：相同的种子与配置总是得到相同的结果。
// 1P 在画布底部左右往返并在能量充满时立即激活能量爆发。
//
// 用法：
//
//	go run ./cmd/simulate -seconds 120 -difficulty hard -seed 7
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/scenes"
	"github.com/decker502/planewar/pkg/types"
	"github.com/decker502/planewar/pkg/utils"
)

var (
	seconds     = flag.Int("seconds", 60, "最长模拟时间（秒）")
	difficulty  = flag.String("difficulty", "normal", "难度: easy / normal / hard")
	twoPlayer   = flag.Bool("two-player", false, "双人模式（2P 不移动）")
	seed        = flag.Int64("seed", 1, "随机种子")
	balancePath = flag.String("balance", "data/balance.yaml", "平衡配置 YAML 文件路径")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

// sweepFrames 1P 单程移动的帧数
const sweepFrames = 90

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	balance, err := config.LoadBalanceFile(*balancePath)
	if err != nil {
		fmt.Printf("❌ 平衡配置加载失败: %v\n", err)
		os.Exit(1)
	}
	d, err := types.ParseDifficulty(*difficulty)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	clock := game.NewManualClock(time.Unix(0, 0))
	scene := scenes.NewGameScene(scenes.Options{
		Balance: balance,
		Rand:    rand.New(rand.NewSource(*seed)),
		Clock:   clock,
	})
	scene.SetDifficulty(d)
	scene.SetTwoPlayerMode(*twoPlayer)

	frame := time.Second / 60
	scene.Tick(clock.Now())
	scene.HandleInput(nil, utils.Triggers{Start: true})

	totalFrames := *seconds * 60
	bursts := 0
	for i := 0; i < totalFrames; i++ {
		keys := types.KeyState{types.KeyP1Left: true}
		if (i/sweepFrames)%2 == 0 {
			keys = types.KeyState{types.KeyP1Right: true}
		}
		hud := scene.HUD()
		triggers := utils.Triggers{Burst: hud.EnergyFull() && !hud.EnergyBurstActive}
		if triggers.Burst {
			bursts++
		}
		scene.HandleInput(keys, triggers)

		clock.Advance(frame)
		scene.Tick(clock.Now())
		if scene.HUD().Status == types.StatusEnded {
			break
		}
	}

	hud := scene.HUD()
	fmt.Printf("难度: %s  双人: %v  种子: %d\n", hud.Difficulty, hud.TwoPlayerMode, *seed)
	fmt.Printf("状态: %s\n", hud.Status)
	fmt.Printf("存活: %s\n", hud.TimeText)
	fmt.Printf("得分: %d\n", hud.Score)
	fmt.Printf("生命: %s\n", hud.HealthText)
	fmt.Printf("武器等级: %v\n", hud.WeaponLevels)
	fmt.Printf("能量爆发次数: %d\n", bursts)
}

// validate_balance 检查平衡配置并打印难度曲线
//
// 用法：
//
//	go run tools/validate_balance.go [path/to/balance.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/systems"
	"github.com/decker502/planewar/pkg/types"
)

// 打印曲线时采样的游戏时间（秒）
var samples = []int{0, 30, 60, 120, 300}

func main() {
	path := "data/balance.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadBalanceFile(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确\n", path)
	fmt.Printf("✅ 画布 %vx%v，玩家初始生命 %v\n", cfg.World.Width, cfg.World.Height, cfg.Player.StartHealth)

	engine := systems.NewDifficultyEngine(cfg)

	fmt.Println()
	fmt.Println("敌机刷新间隔（帧）:")
	for _, t := range samples {
		fmt.Printf("  t=%3ds  %6.1f\n", t, engine.EnemySpawnInterval(t))
	}

	for _, d := range types.AllDifficulties() {
		fmt.Println()
		fmt.Printf("[%s] 血量 单人 / 双人 (敌机 | Boss):\n", d)
		for _, t := range samples {
			fmt.Printf("  t=%3ds  %5.1f / %5.1f | %6.1f / %6.1f\n", t,
				engine.EnemyHealth(d, false, t), engine.EnemyHealth(d, true, t),
				engine.BossHealth(d, false, t), engine.BossHealth(d, true, t))
		}
	}
}

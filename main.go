package main

import (
	"flag"
	"log"

	"github.com/decker502/planewar/pkg/app"
	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var cfg app.Config
	flag.BoolVar(&cfg.Verbose, "verbose", false, "启用详细日志输出")
	flag.StringVar(&cfg.Difficulty, "difficulty", "", "难度: easy / normal / hard（默认使用保存的偏好）")
	flag.BoolVar(&cfg.TwoPlayer, "two-player", false, "以双人模式启动")
	flag.Int64Var(&cfg.Seed, "seed", 0, "随机种子（0 表示使用当前时间）")
	flag.StringVar(&cfg.BalancePath, "balance", "", "平衡配置 YAML 文件路径（默认使用内置配置）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("飞机大战")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatalf("游戏运行失败: %v", err)
	}
}

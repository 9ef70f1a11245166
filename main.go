package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/decker502/farmshop/pkg/app"
	"github.com/decker502/farmshop/pkg/embedded"
)

// envBool 读取布尔环境变量，未设置或无法解析时返回 fallback
func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func main() {
	// .env 可选，命令行参数优先
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", envBool("FARMSHOP_VERBOSE", false), "显示详细日志")
	skipMenu := flag.Bool("skip-menu", envBool("FARMSHOP_SKIP_MENU", false), "跳过开始画面，直接进入商店")
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		SkipMenu: *skipMenu,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := gameApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

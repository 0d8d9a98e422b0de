package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/garden/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	configPath = flag.String("config", "", "花园配置文件路径（为空使用内置的 data/garden.yaml）")
)

func main() {
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		ConfigData: defaultGardenYAML,
	})
	if err != nil {
		exitWithError(err)
	}

	// 设置窗口属性
	width, height := a.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Garden")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 启动游戏循环
	if err := ebiten.RunGame(a); err != nil {
		exitWithError(err)
	}
}

// exitWithError 输出错误并退出
// 非 verbose 模式下 log 输出被丢弃，因此直接写 stderr
func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// Package app 提供花园程序的核心包装器
//
// 该包把配置加载、场景创建和 Ebiten 游戏循环接在一起，
// main.go 只负责解析命令行参数和设置窗口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/garden/pkg/config"
	"github.com/decker502/garden/pkg/game"
	"github.com/decker502/garden/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 花园配置文件路径，优先于 ConfigData
	ConfigPath string
	// ConfigData 内嵌的 YAML 配置，ConfigPath 和 ConfigData 都为空时使用默认配置
	ConfigData []byte
}

// App 是花园程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene   game.Scene
	garden  *config.GardenConfig
	verbose bool
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	garden, err := loadGardenConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("花园配置加载失败: %w", err)
	}

	scene, err := scenes.NewGardenScene(garden)
	if err != nil {
		return nil, fmt.Errorf("花园场景创建失败: %w", err)
	}

	log.Printf("[App] 网格 %dx%d, 起始季节 %v", garden.Rows, garden.Columns, garden.StartSeason)

	return &App{
		scene:   scene,
		garden:  garden,
		verbose: cfg.Verbose,
	}, nil
}

// loadGardenConfig 按 ConfigPath > ConfigData > 默认值的顺序加载配置
func loadGardenConfig(cfg Config) (*config.GardenConfig, error) {
	switch {
	case cfg.ConfigPath != "":
		log.Printf("[Config] 加载花园配置: %s", cfg.ConfigPath)
		return config.LoadGardenConfig(cfg.ConfigPath)
	case len(cfg.ConfigData) > 0:
		log.Printf("[Config] 使用内嵌花园配置")
		return config.ParseGardenConfig(cfg.ConfigData)
	default:
		log.Printf("[Config] 使用默认花园配置")
		return config.DefaultGardenConfig(), nil
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.scene.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.garden.Window.Width, a.garden.Window.Height
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.garden.Window.Width, a.garden.Window.Height
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

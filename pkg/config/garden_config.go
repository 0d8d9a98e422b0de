package config

import (
	"fmt"
	"os"

	"github.com/decker502/garden/pkg/types"
	"gopkg.in/yaml.v3"
)

// GardenConfig 花园配置
//
// 包含苗床网格尺寸、悬停反馈、植物目录、初始种子和起始季节。
// 文件中未出现的字段保留 DefaultGardenConfig 的默认值。
//
// 配置文件位置: data/garden.yaml
type GardenConfig struct {
	// Rows 苗床行数
	Rows int `yaml:"rows"`

	// Columns 苗床列数
	Columns int `yaml:"columns"`

	// CellSize 苗床方块边长（点击检测范围和间距）
	CellSize float64 `yaml:"cellSize"`

	// HoverScale 悬停放大倍数
	HoverScale float64 `yaml:"hoverScale"`

	// OriginX, OriginY 苗床 (0, 0) 中心的世界坐标
	OriginX float64 `yaml:"originX"`
	OriginY float64 `yaml:"originY"`

	// StartSeason 会话开始时的季节
	StartSeason types.Season `yaml:"startSeason"`

	// Species 植物目录
	Species []types.PlantSpecies `yaml:"species"`

	// StarterSeeds 种子袋初始内容（植物名称，允许重复）
	StarterSeeds []string `yaml:"starterSeeds"`

	// CameraZoom 镜头缩放倍数（世界单位到屏幕像素）
	CameraZoom float64 `yaml:"cameraZoom"`

	// Window 窗口尺寸
	Window WindowConfig `yaml:"window"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultGardenConfig 返回默认配置（5x4 苗床，边长 32，悬停 1.1 倍，秋季开始）
func DefaultGardenConfig() *GardenConfig {
	layout := DefaultGridLayout()
	return &GardenConfig{
		Rows:         layout.Rows,
		Columns:      layout.Columns,
		CellSize:     layout.CellSize,
		HoverScale:   layout.HoverScale,
		OriginX:      layout.OriginX,
		OriginY:      layout.OriginY,
		StartSeason:  types.SeasonAutumn,
		Species:      DefaultSpecies(),
		StarterSeeds: DefaultStarterSeeds(),
		CameraZoom:   DefaultCameraZoom,
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
	}
}

// LoadGardenConfig 加载花园配置
//
// 从指定路径加载 YAML 格式的配置文件，未指定的字段使用默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/garden.yaml"）
//
// 返回:
//   - *GardenConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGardenConfig(path string) (*GardenConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read garden config: %w", err)
	}
	return ParseGardenConfig(data)
}

// ParseGardenConfig 从 YAML 数据解析花园配置
func ParseGardenConfig(data []byte) (*GardenConfig, error) {
	cfg := DefaultGardenConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse garden config: %w", err)
	}

	// 验证配置
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid garden config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 行数、列数、边长、悬停倍数、镜头缩放为正
//   - 植物目录合法（见 NewCatalog）
//   - 初始种子都在目录中
//   - 窗口尺寸为正
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *GardenConfig) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Rows, c.Columns)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cellSize must be positive, got %.1f", c.CellSize)
	}
	if c.HoverScale <= 0 {
		return fmt.Errorf("hoverScale must be positive, got %.2f", c.HoverScale)
	}
	if c.CameraZoom <= 0 {
		return fmt.Errorf("cameraZoom must be positive, got %.2f", c.CameraZoom)
	}
	if !c.StartSeason.IsValid() {
		return fmt.Errorf("startSeason invalid: %d", int(c.StartSeason))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	catalog, err := NewCatalog(c.Species...)
	if err != nil {
		return err
	}
	if _, err := catalog.StarterSeeds(c.StarterSeeds); err != nil {
		return err
	}

	return nil
}

// Layout 返回苗床布局
func (c *GardenConfig) Layout() GridLayout {
	return GridLayout{
		Rows:       c.Rows,
		Columns:    c.Columns,
		CellSize:   c.CellSize,
		HoverScale: c.HoverScale,
		OriginX:    c.OriginX,
		OriginY:    c.OriginY,
	}
}

// Catalog 根据配置构建植物目录
func (c *GardenConfig) Catalog() (*Catalog, error) {
	return NewCatalog(c.Species...)
}

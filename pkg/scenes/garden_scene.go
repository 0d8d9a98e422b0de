package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/garden/pkg/components"
	"github.com/decker502/garden/pkg/config"
	"github.com/decker502/garden/pkg/game"
	"github.com/decker502/garden/pkg/systems"
	"github.com/decker502/garden/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// seedHotkeys 选择种子的数字键（1-9）
var seedHotkeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// GardenScene 花园场景
// 持有一次会话的全部状态（网格、种子袋、季节时钟、镜头），
// 每帧采样输入交给 BedInteractionSystem，再根据快照绘制画面。
type GardenScene struct {
	grid        *systems.BedGridSystem
	bag         *game.SeedBag
	clock       *game.SeasonClock
	interaction *systems.BedInteractionSystem
	camera      components.CameraComponent

	width, height int
	lastResult    systems.InteractionResult
	message       string // 最近一次点击的提示文字
}

// NewGardenScene 根据配置创建花园场景
//
// 参数：
//   - cfg: 已验证的花园配置
//
// 返回：
//   - *GardenScene: 场景实例
//   - error: 植物目录或初始种子不合法时返回错误
func NewGardenScene(cfg *config.GardenConfig) (*GardenScene, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build plant catalog: %w", err)
	}
	seeds, err := catalog.StarterSeeds(cfg.StarterSeeds)
	if err != nil {
		return nil, fmt.Errorf("failed to fill seed bag: %w", err)
	}

	layout := cfg.Layout()
	grid := systems.NewBedGridSystem(layout)
	bag := game.NewSeedBag(seeds...)
	clock := game.NewSeasonClock(cfg.StartSeason)

	camera := components.NewCameraComponent(float64(cfg.Window.Width), float64(cfg.Window.Height))
	camera.Zoom = cfg.CameraZoom
	camera.X, camera.Y = layout.Center()

	s := &GardenScene{
		grid:        grid,
		bag:         bag,
		clock:       clock,
		interaction: systems.NewBedInteractionSystem(grid, bag, clock),
		camera:      camera,
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
	}
	s.interaction.SetOccupiedHandler(func(bed *components.BedComponent) {
		log.Printf("[GardenScene] 苗床 (%d, %d) 已种植 %s", bed.Row, bed.Column, bed.Plant.Name)
	})

	log.Printf("[GardenScene] 初始化完成: %d 个苗床, %d 种种子, 当前季节 %v",
		layout.BedCount(), bag.Len(), clock.Current())
	return s, nil
}

// Update 更新场景
func (s *GardenScene) Update(deltaTime float64) {
	s.handleKeys()
	s.step(utils.ReadPointerInput(s.width, s.height))
}

// handleKeys 处理键盘和滚轮：数字键选种子，滚轮切换，S 推进季节
func (s *GardenScene) handleKeys() {
	for i, key := range seedHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			s.selectSeed(i)
		}
	}

	if _, wheelY := ebiten.Wheel(); wheelY > 0 {
		s.bag.SelectPrevious()
	} else if wheelY < 0 {
		s.bag.SelectNext()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.clock.Advance()
	}
}

// selectSeed 选择种子，越界时忽略
func (s *GardenScene) selectSeed(index int) {
	if err := s.bag.Select(index); err != nil {
		log.Printf("[GardenScene] 忽略种子选择: %v", err)
	}
}

// step 用一帧的指针输入驱动交互系统
func (s *GardenScene) step(input utils.PointerInput) {
	s.lastResult = s.interaction.Update(input, s.camera)

	switch s.lastResult.Outcome {
	case systems.OutcomePlanted:
		s.message = fmt.Sprintf("Planted %s at (%d, %d)", s.lastResult.Species.Name, s.lastResult.Row, s.lastResult.Column)
	case systems.OutcomeOccupied:
		s.message = fmt.Sprintf("(%d, %d) already holds %s", s.lastResult.Row, s.lastResult.Column, s.lastResult.Species.Name)
	case systems.OutcomeOutOfSeason:
		s.message = fmt.Sprintf("%s is sown in %v", s.lastResult.Species.Name, s.lastResult.Species.Sow)
	case systems.OutcomeNoSelection:
		s.message = "Seed bag is empty"
	}
}

// Grid 返回苗床网格
func (s *GardenScene) Grid() *systems.BedGridSystem {
	return s.grid
}

// SeedBag 返回种子袋
func (s *GardenScene) SeedBag() *game.SeedBag {
	return s.bag
}

// SeasonClock 返回季节时钟
func (s *GardenScene) SeasonClock() *game.SeasonClock {
	return s.clock
}

// Camera 返回镜头
func (s *GardenScene) Camera() components.CameraComponent {
	return s.camera
}

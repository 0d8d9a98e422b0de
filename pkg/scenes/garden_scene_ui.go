package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/garden/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 96, G: 140, B: 72, A: 255}
	emptyBedColor   = color.RGBA{R: 120, G: 84, B: 52, A: 255}
	plantedBedColor = color.RGBA{R: 70, G: 120, B: 40, A: 255}
	bedBorderColor  = color.RGBA{R: 60, G: 40, B: 24, A: 255}
	shelfColor      = color.RGBA{R: 150, G: 110, B: 70, A: 255}
)

// Draw 绘制场景
// 只读取网格和种子袋的快照，不修改任何状态
func (s *GardenScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.drawBeds(screen)
	s.drawSeedShelf(screen)
}

// drawBeds 绘制苗床，悬停的苗床按 HoverScale 放大
func (s *GardenScene) drawBeds(screen *ebiten.Image) {
	cellSize := s.grid.Layout().CellSize

	for _, bed := range s.grid.Views() {
		centerX, centerY := utils.WorldToScreen(s.camera, bed.X, bed.Y)
		size := cellSize * bed.HoverScale * s.camera.Zoom
		x := centerX - size/2
		y := centerY - size/2

		fill := emptyBedColor
		if bed.Occupied {
			fill = plantedBedColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), fill, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, bedBorderColor, false)

		if bed.Occupied {
			ebitenutil.DebugPrintAt(screen, bed.Species, int(x)+4, int(centerY)-8)
		}
	}
}

// drawSeedShelf 绘制种子袋和当前季节
func (s *GardenScene) drawSeedShelf(screen *ebiten.Image) {
	view := s.bag.View()

	vector.DrawFilledRect(screen, 0, 0, float32(s.width), 80, shelfColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Season: %v   [S] next season   [1-9]/wheel select seed", s.clock.Current()), 10, 6)

	x := 10
	for i, species := range view.Species {
		label := fmt.Sprintf("%d %s", i+1, species.Name)
		if i == view.Selected {
			label = "> " + label
		}
		ebitenutil.DebugPrintAt(screen, label, x, 30)
		x += len(label)*6 + 24
	}

	if s.message != "" {
		ebitenutil.DebugPrintAt(screen, s.message, 10, 54)
	}
}

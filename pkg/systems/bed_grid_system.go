package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/garden/pkg/components"
	"github.com/decker502/garden/pkg/config"
	"github.com/decker502/garden/pkg/types"
)

var (
	// ErrOutOfBounds 表示苗床坐标超出网格范围
	// 点击检测只会产生合法坐标，出现此错误说明调用方有 bug
	ErrOutOfBounds = errors.New("bed position out of bounds")

	// ErrBedOccupied 表示苗床已经种了植物
	ErrBedOccupied = errors.New("bed is already occupied")
)

// BedView 苗床只读快照（供渲染使用）
type BedView struct {
	Row, Column int
	Species     string  // 已种植的植物名称，空苗床为 ""
	Occupied    bool    // 是否已种植
	HoverScale  float64 // 悬停缩放
	X, Y        float64 // 苗床中心的世界坐标
}

// BedGridSystem 管理苗床网格
// 负责持有全部苗床，并提供查询、种植和清空方法
//
// 网格在创建时按布局生成 Rows x Columns 个空苗床，此后不再增删。
// 种植规则只检查苗床是否为空；季节限制由交互系统负责。
type BedGridSystem struct {
	layout config.GridLayout
	beds   []components.BedComponent // 按行优先顺序存储
}

// NewBedGridSystem 创建苗床网格系统
// 参数:
//   - layout: 网格布局（行列数、方块边长、原点）
//
// 返回:
//   - *BedGridSystem: 每个坐标一个空苗床
func NewBedGridSystem(layout config.GridLayout) *BedGridSystem {
	s := &BedGridSystem{
		layout: layout,
		beds:   make([]components.BedComponent, 0, layout.BedCount()),
	}

	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Columns; col++ {
			x, y := layout.BedCenter(row, col)
			s.beds = append(s.beds, components.BedComponent{
				Row:    row,
				Column: col,
				X:      x,
				Y:      y,
				Scale:  config.NeutralScale,
			})
		}
	}

	log.Printf("[BedGridSystem] 创建苗床网格: %d 行 x %d 列", layout.Rows, layout.Columns)
	return s
}

// Layout 返回网格布局
func (s *BedGridSystem) Layout() config.GridLayout {
	return s.layout
}

// Rows 返回行数
func (s *BedGridSystem) Rows() int {
	return s.layout.Rows
}

// Columns 返回列数
func (s *BedGridSystem) Columns() int {
	return s.layout.Columns
}

// BedAt 获取指定坐标的苗床
//
// 参数:
//   - row: 行索引
//   - column: 列索引
//
// 返回:
//   - *components.BedComponent: 苗床（可修改）
//   - error: 坐标越界时返回 ErrOutOfBounds
func (s *BedGridSystem) BedAt(row, column int) (*components.BedComponent, error) {
	if !s.layout.Contains(row, column) {
		return nil, fmt.Errorf("%w: row=%d, column=%d (valid range: row 0-%d, column 0-%d)",
			ErrOutOfBounds, row, column, s.layout.Rows-1, s.layout.Columns-1)
	}
	return &s.beds[row*s.layout.Columns+column], nil
}

// AllBeds 按行优先顺序（行升序，再列升序）返回全部苗床
// 每次调用返回新的切片，可重复遍历
func (s *BedGridSystem) AllBeds() []*components.BedComponent {
	out := make([]*components.BedComponent, len(s.beds))
	for i := range s.beds {
		out[i] = &s.beds[i]
	}
	return out
}

// IsOccupied 检查指定苗床是否已种植
// 无效坐标视为"已占用"，防止种植
func (s *BedGridSystem) IsOccupied(row, column int) bool {
	bed, err := s.BedAt(row, column)
	if err != nil {
		return true
	}
	return !bed.IsEmpty()
}

// Plant 在空苗床上种植植物
// 检查与设置在一次调用内完成，不存在中间状态
//
// 参数:
//   - row, column: 苗床坐标
//   - species: 要种植的植物
//
// 返回:
//   - error: 坐标越界返回 ErrOutOfBounds，苗床已种植返回 ErrBedOccupied
func (s *BedGridSystem) Plant(row, column int, species types.PlantSpecies) error {
	bed, err := s.BedAt(row, column)
	if err != nil {
		return err
	}

	if bed.Plant != nil {
		return fmt.Errorf("%w: (%d, %d) holds %s", ErrBedOccupied, row, column, bed.Plant.Name)
	}

	planted := species
	bed.Plant = &planted
	log.Printf("[BedGridSystem] 种植: %s -> (%d, %d)", species.Name, row, column)
	return nil
}

// Clear 清空指定苗床（收获用）
// 对空苗床调用无效果
//
// 返回:
//   - error: 坐标越界返回 ErrOutOfBounds
func (s *BedGridSystem) Clear(row, column int) error {
	bed, err := s.BedAt(row, column)
	if err != nil {
		return err
	}

	if bed.Plant != nil {
		log.Printf("[BedGridSystem] 清空: (%d, %d) 移除 %s", row, column, bed.Plant.Name)
	}
	bed.Plant = nil
	return nil
}

// ResetHover 将所有苗床恢复为原始缩放
func (s *BedGridSystem) ResetHover() {
	for i := range s.beds {
		s.beds[i].Scale = config.NeutralScale
	}
}

// Views 返回全部苗床的快照（行优先顺序）
func (s *BedGridSystem) Views() []BedView {
	views := make([]BedView, 0, len(s.beds))
	for i := range s.beds {
		bed := &s.beds[i]
		view := BedView{
			Row:        bed.Row,
			Column:     bed.Column,
			HoverScale: bed.Scale,
			X:          bed.X,
			Y:          bed.Y,
		}
		if bed.Plant != nil {
			view.Species = bed.Plant.Name
			view.Occupied = true
		}
		views = append(views, view)
	}
	return views
}

package systems

import (
	"errors"
	"log"

	"github.com/decker502/garden/pkg/components"
	"github.com/decker502/garden/pkg/game"
	"github.com/decker502/garden/pkg/types"
	"github.com/decker502/garden/pkg/utils"
)

// InteractionOutcome 描述一帧交互的结果
type InteractionOutcome int

const (
	// OutcomeNone 指针在可玩区域内，但本帧没有发生种植尝试
	OutcomeNone InteractionOutcome = iota
	// OutcomeNoPointer 指针不在窗口内或无法映射到世界坐标，本帧跳过
	OutcomeNoPointer
	// OutcomeNoSelection 点击了苗床，但种子袋为空
	OutcomeNoSelection
	// OutcomeOccupied 点击了已种植的苗床（查看/收获的扩展点，目前不做任何事）
	OutcomeOccupied
	// OutcomeOutOfSeason 当前季节不能播种所选植物
	OutcomeOutOfSeason
	// OutcomePlanted 种植成功
	OutcomePlanted
)

// String 返回结果的字符串表示
func (o InteractionOutcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeNoPointer:
		return "NoPointer"
	case OutcomeNoSelection:
		return "NoSelection"
	case OutcomeOccupied:
		return "Occupied"
	case OutcomeOutOfSeason:
		return "OutOfSeason"
	case OutcomePlanted:
		return "Planted"
	default:
		return "Unknown"
	}
}

// InteractionResult 一帧交互的结果
type InteractionResult struct {
	Outcome InteractionOutcome
	// Hovered 本帧是否有苗床被指针命中；命中时 Row/Column 有效
	Hovered     bool
	Row, Column int
	// Species 种植尝试涉及的植物（Occupied 时为苗床上已有的植物）
	Species types.PlantSpecies
}

// OccupiedHandler 点击已种植苗床时的回调
// 参数为被点击的苗床（只读使用）
type OccupiedHandler func(bed *components.BedComponent)

// BedInteractionSystem 苗床交互系统
//
// 此系统每帧执行一次，负责：
//   - 将指针屏幕坐标映射到世界坐标
//   - 检测指针悬停的苗床，更新悬停缩放
//   - 检测主按键刚按下事件，尝试在悬停的苗床上种植选中的种子
//
// 网格、种子袋和季节时钟在创建时注入，系统本身不持有全局状态。
type BedInteractionSystem struct {
	grid       *BedGridSystem
	bag        *game.SeedBag
	clock      *game.SeasonClock
	onOccupied OccupiedHandler

	hovered  bool
	hoverRow int
	hoverCol int
}

// NewBedInteractionSystem 创建苗床交互系统
//
// 参数：
//   - grid: 苗床网格
//   - bag: 种子袋
//   - clock: 季节时钟；为 nil 时不检查播种季节
//
// 返回：
//   - 苗床交互系统实例
func NewBedInteractionSystem(grid *BedGridSystem, bag *game.SeedBag, clock *game.SeasonClock) *BedInteractionSystem {
	return &BedInteractionSystem{
		grid:  grid,
		bag:   bag,
		clock: clock,
	}
}

// SetOccupiedHandler 设置点击已种植苗床时的回调
func (s *BedInteractionSystem) SetOccupiedHandler(handler OccupiedHandler) {
	s.onOccupied = handler
}

// Update 处理一帧的指针输入
//
// 参数：
//   - input: 本帧指针输入
//   - camera: 用于屏幕坐标到世界坐标转换的镜头
//
// 返回：
//   - InteractionResult: 本帧交互结果
//
// 执行顺序：先把所有苗床恢复为原始缩放，再放大命中的苗床，最后处理点击。
// 指针不可用时直接返回，不改变任何状态。
func (s *BedInteractionSystem) Update(input utils.PointerInput, camera components.CameraComponent) InteractionResult {
	if !input.InWindow {
		return InteractionResult{Outcome: OutcomeNoPointer}
	}
	worldX, worldY, ok := utils.ScreenToWorld(camera, input.X, input.Y)
	if !ok {
		return InteractionResult{Outcome: OutcomeNoPointer}
	}

	s.grid.ResetHover()
	hit := s.detectBedUnderPointer(worldX, worldY)

	result := InteractionResult{Outcome: OutcomeNone}
	s.hovered = hit != nil
	if hit == nil {
		return result
	}

	hit.Scale = s.grid.Layout().HoverScale
	s.hoverRow, s.hoverCol = hit.Row, hit.Column
	result.Hovered = true
	result.Row, result.Column = hit.Row, hit.Column

	if !input.JustPressed {
		return result
	}

	return s.handleClick(hit, result)
}

// detectBedUnderPointer 检测指针下的苗床
// 按行优先顺序遍历，返回第一个命中的苗床，没有则返回 nil
func (s *BedInteractionSystem) detectBedUnderPointer(worldX, worldY float64) *components.BedComponent {
	size := s.grid.Layout().CellSize
	for _, bed := range s.grid.AllBeds() {
		if utils.BedRect(bed.X, bed.Y, size).Contains(worldX, worldY) {
			return bed
		}
	}
	return nil
}

// handleClick 处理苗床点击
func (s *BedInteractionSystem) handleClick(bed *components.BedComponent, result InteractionResult) InteractionResult {
	species, ok := s.bag.CurrentSelection()
	if !ok {
		result.Outcome = OutcomeNoSelection
		return result
	}

	// 已种植：查看/收获分支，暂不实现
	if bed.Plant != nil {
		result.Outcome = OutcomeOccupied
		result.Species = *bed.Plant
		if s.onOccupied != nil {
			s.onOccupied(bed)
		}
		return result
	}

	result.Species = species
	if s.clock != nil && !species.CanSowIn(s.clock.Current()) {
		log.Printf("[BedInteractionSystem] %s 只能在 %v 播种，当前为 %v", species.Name, species.Sow, s.clock.Current())
		result.Outcome = OutcomeOutOfSeason
		return result
	}

	if err := s.grid.Plant(bed.Row, bed.Column, species); err != nil {
		if !errors.Is(err, ErrBedOccupied) {
			log.Printf("[BedInteractionSystem] Warning: 种植失败: %v", err)
		}
		result.Outcome = OutcomeNone
		return result
	}

	result.Outcome = OutcomePlanted
	return result
}

// Hovered 返回上一帧悬停的苗床坐标
// 指针不可用的帧不会改变此值
func (s *BedInteractionSystem) Hovered() (row, column int, ok bool) {
	if !s.hovered {
		return 0, 0, false
	}
	return s.hoverRow, s.hoverCol, true
}

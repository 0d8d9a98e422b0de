package game

import (
	"errors"
	"fmt"

	"github.com/decker502/garden/pkg/types"
)

// ErrIndexOutOfRange 表示选择的种子下标超出种子袋范围
var ErrIndexOutOfRange = errors.New("seed index out of range")

// SeedBag 种子袋
// 玩家持有的有序种子列表（允许重复）以及当前选中的下标
//
// 不变量：种子袋非空时 0 <= selected < len(seeds)；为空时没有可选种子。
// 种植不会消耗种子（每种种子无限使用）。
type SeedBag struct {
	seeds    []types.PlantSpecies
	selected int
}

// SeedBagView 种子袋只读快照（供渲染使用）
type SeedBagView struct {
	Species  []types.PlantSpecies // 种子列表（副本）
	Selected int                  // 选中下标，空袋为 -1
}

// NewSeedBag 创建种子袋，默认选中第一个种子
func NewSeedBag(seeds ...types.PlantSpecies) *SeedBag {
	bag := &SeedBag{seeds: make([]types.PlantSpecies, 0, len(seeds))}
	bag.seeds = append(bag.seeds, seeds...)
	return bag
}

// Select 选中指定下标的种子
//
// 参数:
//   - index: 种子下标
//
// 返回:
//   - error: 下标越界时返回 ErrIndexOutOfRange，选中状态不变
func (b *SeedBag) Select(index int) error {
	if index < 0 || index >= len(b.seeds) {
		return fmt.Errorf("%w: %d (bag has %d seeds)", ErrIndexOutOfRange, index, len(b.seeds))
	}
	b.selected = index
	return nil
}

// SelectNext 循环选中下一个种子，空袋时无效果
func (b *SeedBag) SelectNext() {
	if len(b.seeds) == 0 {
		return
	}
	b.selected = (b.selected + 1) % len(b.seeds)
}

// SelectPrevious 循环选中上一个种子，空袋时无效果
func (b *SeedBag) SelectPrevious() {
	if len(b.seeds) == 0 {
		return
	}
	b.selected = (b.selected - 1 + len(b.seeds)) % len(b.seeds)
}

// CurrentSelection 返回当前选中的种子
//
// 返回:
//   - types.PlantSpecies: 选中的植物
//   - bool: 空袋时返回 false
func (b *SeedBag) CurrentSelection() (types.PlantSpecies, bool) {
	if len(b.seeds) == 0 {
		return types.PlantSpecies{}, false
	}
	return b.seeds[b.selected], true
}

// Add 向种子袋末尾追加一个种子
func (b *SeedBag) Add(species types.PlantSpecies) {
	b.seeds = append(b.seeds, species)
}

// Len 返回种子数量
func (b *SeedBag) Len() int {
	return len(b.seeds)
}

// Selected 返回选中下标，空袋返回 -1
func (b *SeedBag) Selected() int {
	if len(b.seeds) == 0 {
		return -1
	}
	return b.selected
}

// Seeds 返回种子列表副本
func (b *SeedBag) Seeds() []types.PlantSpecies {
	out := make([]types.PlantSpecies, len(b.seeds))
	copy(out, b.seeds)
	return out
}

// View 返回种子袋快照
func (b *SeedBag) View() SeedBagView {
	return SeedBagView{
		Species:  b.Seeds(),
		Selected: b.Selected(),
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decker502/garden/pkg/types"
)

var (
	// ErrInvalidSpecies 表示植物定义不合法（名称为空、重名或播种季节等于收获季节）
	ErrInvalidSpecies = errors.New("invalid plant species")

	// ErrUnknownSpecies 表示目录中没有该名称的植物
	ErrUnknownSpecies = errors.New("unknown plant species")
)

// 内置植物定义
// 三种植物都在秋季播种、春季收获
var (
	// Kumara 红薯
	Kumara = types.PlantSpecies{Name: "Kumara", Sow: types.SeasonAutumn, Harvest: types.SeasonSpring}
	// Manuka 麦卢卡
	Manuka = types.PlantSpecies{Name: "Manuka", Sow: types.SeasonAutumn, Harvest: types.SeasonSpring}
	// Puha 苦苣菜
	Puha = types.PlantSpecies{Name: "Puha", Sow: types.SeasonAutumn, Harvest: types.SeasonSpring}
)

// DefaultSpecies 返回内置植物列表（定义顺序）
func DefaultSpecies() []types.PlantSpecies {
	return []types.PlantSpecies{Kumara, Manuka, Puha}
}

// DefaultStarterSeeds 返回新种子袋的初始植物名称
func DefaultStarterSeeds() []string {
	return []string{Kumara.Name, Manuka.Name, Puha.Name}
}

// Catalog 植物目录（只读）
// 创建后不再修改，按定义顺序保存植物
type Catalog struct {
	species []types.PlantSpecies
	byName  map[string]int // 小写名称 -> species 下标
}

// NewCatalog 创建植物目录
//
// 参数:
//   - species: 植物定义列表
//
// 返回:
//   - *Catalog: 植物目录
//   - error: 名称为空、重名或 Sow == Harvest 时返回 ErrInvalidSpecies
func NewCatalog(species ...types.PlantSpecies) (*Catalog, error) {
	c := &Catalog{
		species: make([]types.PlantSpecies, 0, len(species)),
		byName:  make(map[string]int, len(species)),
	}

	for _, s := range species {
		if err := validateSpecies(s); err != nil {
			return nil, err
		}
		key := strings.ToLower(s.Name)
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidSpecies, s.Name)
		}
		c.byName[key] = len(c.species)
		c.species = append(c.species, s)
	}

	return c, nil
}

// DefaultCatalog 返回内置植物目录
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultSpecies()...)
	if err != nil {
		// 内置定义必须合法
		panic(err)
	}
	return c
}

// validateSpecies 检查单个植物定义
func validateSpecies(s types.PlantSpecies) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSpecies)
	}
	if !s.Sow.IsValid() || !s.Harvest.IsValid() {
		return fmt.Errorf("%w: %s has an invalid season", ErrInvalidSpecies, s.Name)
	}
	if s.Sow == s.Harvest {
		return fmt.Errorf("%w: %s sows and harvests in %v", ErrInvalidSpecies, s.Name, s.Sow)
	}
	return nil
}

// Lookup 按名称查找植物（大小写不敏感）
func (c *Catalog) Lookup(name string) (types.PlantSpecies, bool) {
	idx, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return types.PlantSpecies{}, false
	}
	return c.species[idx], true
}

// Species 返回目录中全部植物的副本（定义顺序）
func (c *Catalog) Species() []types.PlantSpecies {
	out := make([]types.PlantSpecies, len(c.species))
	copy(out, c.species)
	return out
}

// Len 返回植物种类数
func (c *Catalog) Len() int {
	return len(c.species)
}

// StarterSeeds 将植物名称列表解析为植物（保持顺序，允许重复）
//
// 返回:
//   - []types.PlantSpecies: 解析结果
//   - error: 任一名称不在目录中时返回 ErrUnknownSpecies
func (c *Catalog) StarterSeeds(names []string) ([]types.PlantSpecies, error) {
	seeds := make([]types.PlantSpecies, 0, len(names))
	for _, name := range names {
		s, ok := c.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
		}
		seeds = append(seeds, s)
	}
	return seeds, nil
}

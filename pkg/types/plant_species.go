package types

// PlantSpecies 定义一种可种植的植物
//
// 植物是值类型：两个 PlantSpecies 相等当且仅当所有字段相等。
// 目录中的每种植物都满足 Sow != Harvest。
type PlantSpecies struct {
	// Name 显示名称（目录内唯一）
	Name string `yaml:"name"`
	// Sow 可播种的季节
	Sow Season `yaml:"sow"`
	// Harvest 可收获的季节
	Harvest Season `yaml:"harvest"`
}

// CanSowIn 检查植物能否在指定季节播种
func (p PlantSpecies) CanSowIn(season Season) bool {
	return p.Sow == season
}

// IsHarvestableIn 检查植物在指定季节是否可收获
func (p PlantSpecies) IsHarvestableIn(season Season) bool {
	return p.Harvest == season
}

// String 返回植物名称
func (p PlantSpecies) String() string {
	if p.Name == "" {
		return "Unknown"
	}
	return p.Name
}

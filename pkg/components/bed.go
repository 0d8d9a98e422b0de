package components

import "github.com/decker502/garden/pkg/types"

// BedComponent 苗床
// 网格中的一个可种植格子，最多种一株植物
//
// 状态只有两种：空（Plant == nil）和已种植（Plant != nil）。
// X/Y/Scale 是展示用数据，不影响种植规则。
type BedComponent struct {
	// Row, Column 苗床坐标，范围 [0, Rows) x [0, Columns)
	Row    int
	Column int

	// Plant 已种植的植物，nil 表示空苗床
	Plant *types.PlantSpecies

	// X, Y 苗床中心的世界坐标
	X, Y float64

	// Scale 悬停反馈缩放（1.0 = 原始大小）
	Scale float64
}

// IsEmpty 检查苗床是否为空
func (b *BedComponent) IsEmpty() bool {
	return b.Plant == nil
}

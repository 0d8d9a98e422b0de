package config

// 布局配置常量
// 本文件定义了苗床网格的布局参数
//
// 所有坐标使用"世界坐标系"：原点位于画面中心，X 向右，Y 向上。
// 苗床坐标 (row, column) 中 row 沿 X 轴排列，column 沿 Y 轴排列。

// Bed Grid Configuration (苗床网格配置)
const (
	// GridRows 是苗床的行数
	GridRows = 5

	// GridColumns 是苗床的列数
	GridColumns = 4

	// CellSize 是苗床方块的边长（世界单位），与苗床贴图尺寸一致
	// 同时也是点击检测方块的边长和相邻苗床的间距
	CellSize = 32.0

	// HoverScale 是鼠标悬停时苗床的放大倍数
	HoverScale = 1.1

	// NeutralScale 是苗床未悬停时的缩放
	NeutralScale = 1.0

	// GridOriginX 是苗床 (0, 0) 中心的世界X坐标
	// 计算方式：CellSize * (0 - 2) = -64
	GridOriginX = -2 * CellSize

	// GridOriginY 是苗床 (0, 0) 中心的世界Y坐标
	// 计算方式：CellSize * (0 - 3) = -96
	GridOriginY = -3 * CellSize
)

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// DefaultCameraZoom 默认镜头缩放，32 单位的苗床在屏幕上显示为 96 像素
	DefaultCameraZoom = 3.0
)

// GridLayout 描述苗床网格的尺寸和摆放
type GridLayout struct {
	Rows       int     // 行数
	Columns    int     // 列数
	CellSize   float64 // 方块边长（点击检测 + 间距）
	HoverScale float64 // 悬停放大倍数
	OriginX    float64 // 苗床 (0, 0) 中心的世界X坐标
	OriginY    float64 // 苗床 (0, 0) 中心的世界Y坐标
}

// DefaultGridLayout 返回默认的 5x4 苗床布局
func DefaultGridLayout() GridLayout {
	return GridLayout{
		Rows:       GridRows,
		Columns:    GridColumns,
		CellSize:   CellSize,
		HoverScale: HoverScale,
		OriginX:    GridOriginX,
		OriginY:    GridOriginY,
	}
}

// BedCount 返回苗床总数
func (l GridLayout) BedCount() int {
	return l.Rows * l.Columns
}

// BedCenter 计算苗床中心的世界坐标
//
// 参数:
//   - row: 行索引
//   - column: 列索引
//
// 返回:
//   - x, y: 苗床中心的世界坐标
func (l GridLayout) BedCenter(row, column int) (x, y float64) {
	x = l.OriginX + float64(row)*l.CellSize
	y = l.OriginY + float64(column)*l.CellSize
	return x, y
}

// Center 返回整个网格中心的世界坐标
func (l GridLayout) Center() (x, y float64) {
	x = l.OriginX + float64(l.Rows-1)*l.CellSize/2
	y = l.OriginY + float64(l.Columns-1)*l.CellSize/2
	return x, y
}

// Contains 检查 (row, column) 是否在网格范围内
func (l GridLayout) Contains(row, column int) bool {
	return row >= 0 && row < l.Rows && column >= 0 && column < l.Columns
}

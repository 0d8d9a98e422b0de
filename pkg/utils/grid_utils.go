package utils

// Rect 世界坐标中的轴对齐矩形
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BedRect 返回以 (centerX, centerY) 为中心、边长为 size 的点击方块
//
// 参数:
//   - centerX, centerY: 苗床中心的世界坐标
//   - size: 方块边长
//
// 返回:
//   - Rect: 点击检测矩形
func BedRect(centerX, centerY, size float64) Rect {
	half := size / 2
	return Rect{
		MinX: centerX - half,
		MinY: centerY - half,
		MaxX: centerX + half,
		MaxY: centerY + half,
	}
}

// Contains 检查点是否在矩形内（包含边界）
//
// 相邻苗床共享边界，边界上的点同时落在两个方块内，
// 由调用方按遍历顺序取第一个命中的苗床。
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Width 返回矩形宽度
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height 返回矩形高度
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

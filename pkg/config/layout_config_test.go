package config

import (
	"testing"
)

// TestBedCenter 测试苗床中心坐标计算
// 默认布局下苗床 (row, column) 位于 (32*(row-2), 32*(column-3))
func TestBedCenter(t *testing.T) {
	layout := DefaultGridLayout()

	tests := []struct {
		name         string
		row, column  int
		wantX, wantY float64
	}{
		{"左下角", 0, 0, -64, -96},
		{"中间", 2, 1, 0, -64},
		{"右上角", 4, 3, 64, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := layout.BedCenter(tt.row, tt.column)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("BedCenter(%d, %d) = (%.1f, %.1f), want (%.1f, %.1f)",
					tt.row, tt.column, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestLayoutContains 测试网格范围检查
func TestLayoutContains(t *testing.T) {
	layout := DefaultGridLayout()

	if layout.BedCount() != 20 {
		t.Errorf("Expected 20 beds, got %d", layout.BedCount())
	}

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridColumns; col++ {
			if !layout.Contains(row, col) {
				t.Errorf("Expected (%d, %d) to be inside the grid", row, col)
			}
		}
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 4}, {5, 4}}
	for _, p := range outside {
		if layout.Contains(p[0], p[1]) {
			t.Errorf("Expected (%d, %d) to be outside the grid", p[0], p[1])
		}
	}
}

// TestLayoutCenter 测试网格中心
func TestLayoutCenter(t *testing.T) {
	x, y := DefaultGridLayout().Center()
	if x != 0 || y != -48 {
		t.Errorf("Center() = (%.1f, %.1f), want (0.0, -48.0)", x, y)
	}
}

package utils

import (
	"math"
	"testing"

	"github.com/decker502/garden/pkg/components"
)

// TestScreenToWorld 测试屏幕坐标到世界坐标的转换
func TestScreenToWorld(t *testing.T) {
	tests := []struct {
		name             string
		cam              components.CameraComponent
		screenX, screenY float64
		wantX, wantY     float64
		wantOK           bool
	}{
		{
			name:    "视口中心对应镜头中心",
			cam:     components.NewCameraComponent(800, 600),
			screenX: 400, screenY: 300,
			wantX: 0, wantY: 0,
			wantOK: true,
		},
		{
			name:    "屏幕Y向下对应世界Y向上",
			cam:     components.NewCameraComponent(800, 600),
			screenX: 400, screenY: 364,
			wantX: 0, wantY: -64,
			wantOK: true,
		},
		{
			name:    "左上角",
			cam:     components.NewCameraComponent(800, 600),
			screenX: 0, screenY: 0,
			wantX: -400, wantY: 300,
			wantOK: true,
		},
		{
			name:    "镜头偏移和缩放",
			cam:     components.CameraComponent{X: 10, Y: 20, Zoom: 2, ViewportWidth: 800, ViewportHeight: 600},
			screenX: 500, screenY: 200,
			wantX: 60, wantY: 70, // (500-400)/2+10, (300-200)/2+20
			wantOK: true,
		},
		{
			name:    "视口之外",
			cam:     components.NewCameraComponent(800, 600),
			screenX: 801, screenY: 300,
			wantOK: false,
		},
		{
			name:    "负坐标",
			cam:     components.NewCameraComponent(800, 600),
			screenX: 10, screenY: -1,
			wantOK: false,
		},
		{
			name:    "缩放为零",
			cam:     components.CameraComponent{ViewportWidth: 800, ViewportHeight: 600},
			screenX: 400, screenY: 300,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ScreenToWorld(tt.cam, tt.screenX, tt.screenY)
			if ok != tt.wantOK {
				t.Fatalf("ScreenToWorld ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(x-tt.wantX) > 0.001 || math.Abs(y-tt.wantY) > 0.001 {
				t.Errorf("ScreenToWorld = (%.2f, %.2f), want (%.2f, %.2f)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestWorldToScreenRoundTrip 测试世界坐标与屏幕坐标互逆
func TestWorldToScreenRoundTrip(t *testing.T) {
	cam := components.CameraComponent{X: -15, Y: 40, Zoom: 1.5, ViewportWidth: 800, ViewportHeight: 600}

	points := [][2]float64{{0, 0}, {-64, -96}, {64, 0}, {100.5, -33.25}}
	for _, p := range points {
		sx, sy := WorldToScreen(cam, p[0], p[1])
		wx, wy, ok := ScreenToWorld(cam, sx, sy)
		if !ok {
			t.Fatalf("Point (%.2f, %.2f) mapped outside viewport: (%.2f, %.2f)", p[0], p[1], sx, sy)
		}
		if math.Abs(wx-p[0]) > 0.001 || math.Abs(wy-p[1]) > 0.001 {
			t.Errorf("Round trip (%.2f, %.2f) -> (%.2f, %.2f)", p[0], p[1], wx, wy)
		}
	}
}

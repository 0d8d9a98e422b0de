package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/garden/pkg/config"
	"github.com/decker502/garden/pkg/systems"
	"github.com/decker502/garden/pkg/types"
	"github.com/decker502/garden/pkg/utils"
)

// TestNewGardenScene 测试按默认配置创建场景
func TestNewGardenScene(t *testing.T) {
	scene, err := NewGardenScene(config.DefaultGardenConfig())
	if err != nil {
		t.Fatalf("NewGardenScene failed: %v", err)
	}

	if len(scene.Grid().AllBeds()) != 20 {
		t.Errorf("Expected 20 beds, got %d", len(scene.Grid().AllBeds()))
	}
	if scene.SeedBag().Len() != 3 {
		t.Errorf("Expected 3 seeds, got %d", scene.SeedBag().Len())
	}
	if scene.SeasonClock().Current() != types.SeasonAutumn {
		t.Errorf("Expected Autumn, got %v", scene.SeasonClock().Current())
	}

	cam := scene.Camera()
	if cam.X != 0 || cam.Y != -48 || cam.Zoom != config.DefaultCameraZoom {
		t.Errorf("Expected camera centred on the grid, got %+v", cam)
	}
}

// TestNewGardenSceneRejectsUnknownSeed 测试未知初始种子
func TestNewGardenSceneRejectsUnknownSeed(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.StarterSeeds = []string{"Taro"}

	if _, err := NewGardenScene(cfg); err == nil {
		t.Error("Expected error for unknown starter seed")
	}
}

// TestGardenSceneStep 测试一帧点击种植并生成提示
func TestGardenSceneStep(t *testing.T) {
	scene, err := NewGardenScene(config.DefaultGardenConfig())
	if err != nil {
		t.Fatalf("NewGardenScene failed: %v", err)
	}
	scene.selectSeed(1)

	bed, _ := scene.Grid().BedAt(2, 1)
	sx, sy := utils.WorldToScreen(scene.Camera(), bed.X, bed.Y)

	scene.step(utils.PointerAt(sx, sy, true))
	if scene.lastResult.Outcome != systems.OutcomePlanted {
		t.Fatalf("Expected OutcomePlanted, got %v", scene.lastResult.Outcome)
	}
	if bed.Plant == nil || bed.Plant.Name != "Manuka" {
		t.Errorf("Expected Manuka at (2,1), got %v", bed.Plant)
	}
	if !strings.Contains(scene.message, "Planted Manuka") {
		t.Errorf("Unexpected message: %q", scene.message)
	}

	scene.step(utils.PointerAt(sx, sy, true))
	if scene.lastResult.Outcome != systems.OutcomeOccupied {
		t.Errorf("Expected OutcomeOccupied, got %v", scene.lastResult.Outcome)
	}
	if !strings.Contains(scene.message, "already holds Manuka") {
		t.Errorf("Unexpected message: %q", scene.message)
	}

	// 越界选择被忽略
	scene.selectSeed(8)
	if scene.SeedBag().Selected() != 1 {
		t.Errorf("Selection should stay at 1, got %d", scene.SeedBag().Selected())
	}
}

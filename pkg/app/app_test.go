package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewAppDefaults 测试不指定配置文件时使用默认配置
func TestNewAppDefaults(t *testing.T) {
	a, err := NewApp(Config{Verbose: true})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	w, h := a.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", w, h)
	}
	if !a.IsVerbose() {
		t.Error("Expected verbose app")
	}
}

// TestNewAppConfigFile 测试从文件加载配置
func TestNewAppConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 640\n  height: 480\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	a, err := NewApp(Config{Verbose: true, ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if w, h := a.WindowSize(); w != 640 || h != 480 {
		t.Errorf("WindowSize = %dx%d, want 640x480", w, h)
	}
}

// TestNewAppConfigData 测试内嵌配置，文件路径优先
func TestNewAppConfigData(t *testing.T) {
	data := []byte("window:\n  width: 1024\n  height: 768\n")

	a, err := NewApp(Config{Verbose: true, ConfigData: data})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if w, h := a.WindowSize(); w != 1024 || h != 768 {
		t.Errorf("WindowSize = %dx%d, want 1024x768", w, h)
	}

	path := filepath.Join(t.TempDir(), "garden.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 640\n  height: 480\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	a, err = NewApp(Config{Verbose: true, ConfigPath: path, ConfigData: data})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if w, h := a.WindowSize(); w != 640 || h != 480 {
		t.Errorf("ConfigPath should win: WindowSize = %dx%d, want 640x480", w, h)
	}
}

// TestNewAppBadConfig 测试非法配置
func TestNewAppBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.yaml")
	if err := os.WriteFile(path, []byte("rows: -3\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := NewApp(Config{Verbose: true, ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "grid size must be positive") {
		t.Errorf("Expected grid size error, got %v", err)
	}
}

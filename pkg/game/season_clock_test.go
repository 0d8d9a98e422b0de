package game

import (
	"testing"

	"github.com/decker502/garden/pkg/types"
)

// TestSeasonClockAdvance 测试季节推进
func TestSeasonClockAdvance(t *testing.T) {
	clock := NewSeasonClock(types.SeasonAutumn)

	if clock.Current() != types.SeasonAutumn {
		t.Fatalf("Expected Autumn, got %v", clock.Current())
	}

	want := []types.Season{types.SeasonWinter, types.SeasonSpring, types.SeasonSummer, types.SeasonAutumn}
	for i, w := range want {
		if got := clock.Advance(); got != w {
			t.Errorf("Advance #%d = %v, want %v", i+1, got, w)
		}
		if clock.Current() != w {
			t.Errorf("Current after Advance #%d = %v, want %v", i+1, clock.Current(), w)
		}
	}
}

// TestSeasonClockSet 测试直接设置季节
func TestSeasonClockSet(t *testing.T) {
	clock := NewSeasonClock(types.SeasonSpring)
	clock.Set(types.SeasonWinter)

	if clock.Current() != types.SeasonWinter {
		t.Errorf("Expected Winter, got %v", clock.Current())
	}
}

package game

import (
	"log"

	"github.com/decker502/garden/pkg/types"
)

// SeasonClock 记录当前季节
// 由会话持有，交互系统在种植前查询当前季节判断能否播种。
// 季节只会被显式推进（Advance/Set），不随时间自动变化。
type SeasonClock struct {
	current types.Season
}

// NewSeasonClock 创建季节时钟
func NewSeasonClock(start types.Season) *SeasonClock {
	return &SeasonClock{current: start}
}

// Current 返回当前季节
func (c *SeasonClock) Current() types.Season {
	return c.current
}

// Advance 推进到下一个季节并返回新季节
func (c *SeasonClock) Advance() types.Season {
	prev := c.current
	c.current = c.current.Next()
	log.Printf("[SeasonClock] 季节推进: %v -> %v", prev, c.current)
	return c.current
}

// Set 直接设置当前季节
func (c *SeasonClock) Set(season types.Season) {
	c.current = season
}

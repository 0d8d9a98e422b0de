// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSeason 表示无法识别的季节名称
var ErrUnknownSeason = errors.New("unknown season")

// Season 定义季节
// 四个季节构成一个循环：Spring → Summer → Autumn → Winter → Spring
type Season int

const (
	// SeasonSpring 春
	SeasonSpring Season = iota
	// SeasonSummer 夏
	SeasonSummer
	// SeasonAutumn 秋
	SeasonAutumn
	// SeasonWinter 冬
	SeasonWinter
)

// seasonCount 季节总数
const seasonCount = 4

// AllSeasons 按循环顺序返回全部季节
func AllSeasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// String 返回季节的字符串表示
func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonAutumn:
		return "Autumn"
	case SeasonWinter:
		return "Winter"
	default:
		return "Unknown"
	}
}

// IsValid 检查季节值是否在定义范围内
func (s Season) IsValid() bool {
	return s >= SeasonSpring && s <= SeasonWinter
}

// Next 返回循环中的下一个季节（Winter 之后回到 Spring）
func (s Season) Next() Season {
	return Season((int(s) + 1) % seasonCount)
}

// ParseSeason 将名称解析为季节（大小写不敏感）
//
// 返回:
//   - Season: 解析结果
//   - error: 名称无法识别时返回 ErrUnknownSeason
func ParseSeason(name string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	case "autumn", "fall":
		return SeasonAutumn, nil
	case "winter":
		return SeasonWinter, nil
	}
	return SeasonSpring, fmt.Errorf("%w: %q", ErrUnknownSeason, name)
}

// UnmarshalYAML 从 YAML 标量（如 "autumn"）解析季节
func (s *Season) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("season must be a string (line %d): %w", value.Line, err)
	}
	parsed, err := ParseSeason(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}

// MarshalYAML 以小写名称写出季节
func (s Season) MarshalYAML() (interface{}, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeason, int(s))
	}
	return strings.ToLower(s.String()), nil
}

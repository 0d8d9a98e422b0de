package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个游戏场景（目前只有花园场景）
// 每个场景有自己的更新和渲染逻辑，由 App 每帧驱动。
type Scene interface {
	// Update 更新场景逻辑
	// deltaTime 为距上一帧的时间（秒）
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

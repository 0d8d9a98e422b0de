package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 存储当前帧的指针输入
// 由宿主引擎每帧采样后交给交互系统
type PointerInput struct {
	// InWindow 指针是否在窗口内（为 false 时 X/Y 无意义）
	InWindow bool
	// X, Y 指针屏幕坐标
	X, Y float64
	// JustPressed 主按键（鼠标左键或触摸）是否在本帧刚按下
	JustPressed bool
}

// NoPointer 返回表示指针不在窗口内的输入
func NoPointer() PointerInput {
	return PointerInput{}
}

// PointerAt 返回位于 (x, y) 的指针输入
func PointerAt(x, y float64, justPressed bool) PointerInput {
	return PointerInput{InWindow: true, X: x, Y: y, JustPressed: justPressed}
}

// ReadPointerInput 从 Ebiten 采样当前帧的指针输入
// 同时支持鼠标和触摸，优先检测触摸
//
// 参数:
//   - width, height: 逻辑屏幕尺寸，光标超出此范围视为不在窗口内
func ReadPointerInput(width, height int) PointerInput {
	// 首先检查刚按下的触摸（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerInput{InWindow: true, X: float64(x), Y: float64(y), JustPressed: true}
	}

	// 活动中的触摸只用于悬停
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerInput{InWindow: true, X: float64(x), Y: float64(y)}
	}

	// 鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= width || y >= height {
		return NoPointer()
	}
	return PointerInput{
		InWindow:    true,
		X:           float64(x),
		Y:           float64(y),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

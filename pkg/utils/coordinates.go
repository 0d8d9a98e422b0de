// Package utils 提供通用工具函数
//
// coordinates.go 提供屏幕坐标与世界坐标之间的转换。
//
// # 坐标系统概述
//
//   - **屏幕坐标**：相对于视口左上角，X 向右，Y 向下（Ebiten 默认）
//   - **世界坐标**：镜头对准点位于视口中心，X 向右，Y 向上
//
// # 核心转换公式
//
//	worldX = (screenX - viewportWidth/2) / zoom + cameraX
//	worldY = (viewportHeight/2 - screenY) / zoom + cameraY
package utils

import (
	"github.com/decker502/garden/pkg/components"
)

// ScreenToWorld 将屏幕坐标转换为世界坐标
//
// # 参数
//
//   - cam: 镜头
//   - screenX, screenY: 屏幕坐标
//
// # 返回值
//
//   - worldX, worldY: 世界坐标
//   - ok: 屏幕点在视口之外或镜头缩放不合法时返回 false
//
// ok 为 false 是正常情况（指针不在可玩区域），不是错误。
func ScreenToWorld(cam components.CameraComponent, screenX, screenY float64) (worldX, worldY float64, ok bool) {
	if cam.Zoom <= 0 || cam.ViewportWidth <= 0 || cam.ViewportHeight <= 0 {
		return 0, 0, false
	}
	if screenX < 0 || screenX > cam.ViewportWidth || screenY < 0 || screenY > cam.ViewportHeight {
		return 0, 0, false
	}

	worldX = (screenX-cam.ViewportWidth/2)/cam.Zoom + cam.X
	worldY = (cam.ViewportHeight/2-screenY)/cam.Zoom + cam.Y
	return worldX, worldY, true
}

// WorldToScreen 将世界坐标转换为屏幕坐标
//
// 这是 ScreenToWorld 的逆运算，主要用于渲染。
// 结果可能落在视口之外。
func WorldToScreen(cam components.CameraComponent, worldX, worldY float64) (screenX, screenY float64) {
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}
	screenX = (worldX-cam.X)*zoom + cam.ViewportWidth/2
	screenY = cam.ViewportHeight/2 - (worldY-cam.Y)*zoom
	return screenX, screenY
}

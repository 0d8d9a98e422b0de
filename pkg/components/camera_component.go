package components

// CameraComponent 描述把屏幕坐标映射到世界坐标的正交镜头
//
// 世界坐标原点在镜头中心时位于视口中心，X 轴向右，Y 轴向上；
// 屏幕坐标原点在视口左上角，Y 轴向下。
type CameraComponent struct {
	// X, Y 镜头中心对准的世界坐标
	X, Y float64

	// Zoom 缩放倍数（1.0 = 一个世界单位对应一个像素），必须为正
	Zoom float64

	// ViewportWidth, ViewportHeight 视口尺寸（屏幕像素）
	ViewportWidth  float64
	ViewportHeight float64
}

// NewCameraComponent 创建对准世界原点、无缩放的镜头
func NewCameraComponent(viewportWidth, viewportHeight float64) CameraComponent {
	return CameraComponent{
		Zoom:           1.0,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

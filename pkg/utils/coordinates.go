package utils

// 坐标系统：
//   - 屏幕坐标：相对于逻辑屏幕左上角（Layout 返回的尺寸）
//   - 世界坐标：原点位于逻辑屏幕中心，Y 轴向下
//
// 展台、农场网格等游戏实体使用世界坐标，按钮和文字面板使用屏幕坐标。

// Viewport 逻辑屏幕尺寸
type Viewport struct {
	Width, Height float64
}

// NewViewport 创建视口
func NewViewport(width, height int) Viewport {
	return Viewport{Width: float64(width), Height: float64(height)}
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (v Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx - v.Width/2, sy - v.Height/2
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (v Viewport) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx + v.Width/2, wy + v.Height/2
}

// CenteredOrigin 以 (cx, cy) 为中心、w x h 的矩形左上角
func CenteredOrigin(cx, cy, w, h float64) (float64, float64) {
	return cx - w/2, cy - h/2
}

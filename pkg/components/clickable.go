package components

// ClickableComponent 标记实体可以被点击
// 点击区域以 PositionComponent 为中心，Width x Height（世界坐标）
type ClickableComponent struct {
	Width     float64
	Height    float64
	IsEnabled bool
}

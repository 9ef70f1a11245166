package components

// PositionComponent 世界坐标
// 世界原点位于逻辑屏幕中心，Y 轴向下
type PositionComponent struct {
	X float64
	Y float64
}

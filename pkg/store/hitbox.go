package store

// Point 世界坐标中的点
type Point struct {
	X, Y float64
}

// PointInside 判断点是否在以 center 为中心、边长 size 的正方形内
// 使用严格不等式：恰好落在边界上的点视为在外部
func PointInside(p, center Point, size float64) bool {
	half := size / 2
	return p.X > center.X-half &&
		p.X < center.X+half &&
		p.Y > center.Y-half &&
		p.Y < center.Y+half
}

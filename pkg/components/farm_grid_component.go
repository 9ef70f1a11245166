package components

import "github.com/decker502/farmshop/pkg/farm"

// FarmGridComponent 5x5 农场网格，以 PositionComponent 为中心
type FarmGridComponent struct {
	Grid     farm.Grid
	TileSize float64
	// LastChanged 最近一步改变的格子序号，-1 表示没有
	LastChanged int
}

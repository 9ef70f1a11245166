// Package farm 实现农田模拟的纯逻辑部分
//
// 该包不依赖 ECS 与渲染，只操作 Grid 与 ActiveItemQueue。
// 每个 Step 函数最多改变一个格子：节奏（每 0.5 秒一步）由
// systems.FarmSimulationSystem 的计时器控制。
package farm

import "github.com/decker502/farmshop/pkg/types"

const (
	// GridSize 网格边长
	GridSize = 5
	// TileCount 格子总数
	TileCount = GridSize * GridSize
)

// Grid 5×5 农田，按行优先存储（索引 = row*GridSize + col）
type Grid [TileCount]types.TileState

// NewGrid 返回全部为泥土的网格
func NewGrid() Grid {
	var g Grid
	for i := range g {
		g[i] = types.TileDirt
	}
	return g
}

// FindFirst 返回第一个处于任一给定状态的格子索引，找不到返回 -1
func (g *Grid) FindFirst(states ...types.TileState) int {
	for i, s := range g {
		for _, want := range states {
			if s == want {
				return i
			}
		}
	}
	return -1
}

// Count 统计处于指定状态的格子数量
func (g *Grid) Count(state types.TileState) int {
	n := 0
	for _, s := range g {
		if s == state {
			n++
		}
	}
	return n
}

// Any 判断是否存在处于指定状态的格子
func (g *Grid) Any(state types.TileState) bool {
	return g.FindFirst(state) >= 0
}

// RowCol 将索引转换为行列
func RowCol(index int) (row, col int) {
	return index / GridSize, index % GridSize
}

// Summary 一季结束时的农田统计
type Summary struct {
	Counts map[types.TileState]int
}

// Summarize 统计各状态格子数量
func Summarize(g Grid) Summary {
	s := Summary{Counts: make(map[types.TileState]int, len(types.AllTileStates()))}
	for _, state := range types.AllTileStates() {
		s.Counts[state] = 0
	}
	for _, state := range g {
		s.Counts[state]++
	}
	return s
}

package farm

import "github.com/decker502/farmshop/pkg/types"

// toolTransition 工具作用的源状态与目标状态
type toolTransition struct {
	from []types.TileState
	to   types.TileState
}

// transitionFor 按工具类型分派
func transitionFor(item types.ItemType) (toolTransition, bool) {
	switch item {
	case types.ItemHoe:
		return toolTransition{from: []types.TileState{types.TileDirt}, to: types.TileTilled}, true
	case types.ItemWateringCan:
		return toolTransition{from: []types.TileState{types.TileSproutedDry}, to: types.TileSproutedWet}, true
	case types.ItemScythe:
		return toolTransition{from: []types.TileState{types.TileFullGrown, types.TileFailed}, to: types.TileDirt}, true
	case types.ItemParsnipSeed, types.ItemBlueberrySeed:
		return toolTransition{from: []types.TileState{types.TileTilled}, to: types.TileSeeded}, true
	}
	return toolTransition{}, false
}

// StepCheckSeeded CheckSeeded 阶段的一步
//
// 先让上一季浇过水的幼苗成熟（SproutedWet → FullGrown），
// 没有可成熟的幼苗时再让一个种子发芽（Seeded → SproutedDry）。
// 每次最多转换一个格子；没有任何转换时返回 -1，表示阶段结束。
func StepCheckSeeded(g *Grid) int {
	if i := g.FindFirst(types.TileSproutedWet); i >= 0 {
		g[i] = types.TileFullGrown
		return i
	}
	if i := g.FindFirst(types.TileSeeded); i >= 0 {
		g[i] = types.TileSproutedDry
		return i
	}
	return -1
}

// StepCheckFailed CheckFailed 阶段的一步
// 一个仍未浇水的幼苗枯死；没有时返回 -1
func StepCheckFailed(g *Grid) int {
	if i := g.FindFirst(types.TileSproutedDry); i >= 0 {
		g[i] = types.TileFailed
		return i
	}
	return -1
}

// ApplyOutcome ApplyNext 的结果类型
type ApplyOutcome int

const (
	// ApplyQueueEmpty 队列已空，无事可做
	ApplyQueueEmpty ApplyOutcome = iota
	// ApplyUsed 成功作用于一个格子，消耗一次
	ApplyUsed
	// ApplyExhausted 成功作用且次数用尽，已出队
	ApplyExhausted
	// ApplyNoTarget 没有可作用的格子，直接出队，不消耗次数
	ApplyNoTarget
)

// ApplyResult 一次工具作用的详细结果
type ApplyResult struct {
	Outcome ApplyOutcome
	Item    ActiveItem // 作用后的物品快照
	Tile    int        // 被改变的格子索引，未改变为 -1
}

// ApplyNext ApplyItems 阶段的一步：取队首物品作用于第一个符合条件的格子
func ApplyNext(g *Grid, q *ActiveItemQueue) ApplyResult {
	item, ok := q.Front()
	if !ok {
		return ApplyResult{Outcome: ApplyQueueEmpty, Tile: -1}
	}

	tr, known := transitionFor(item.Type)
	target := -1
	if known {
		target = g.FindFirst(tr.from...)
	}
	if target < 0 {
		snapshot := *item
		q.Pop()
		return ApplyResult{Outcome: ApplyNoTarget, Item: snapshot, Tile: -1}
	}

	g[target] = tr.to
	item.Uses--
	snapshot := *item
	if item.Uses <= 0 {
		q.Pop()
		return ApplyResult{Outcome: ApplyExhausted, Item: snapshot, Tile: target}
	}
	return ApplyResult{Outcome: ApplyUsed, Item: snapshot, Tile: target}
}

// ReadyForSummary 战斗能否进入总结：队列为空且没有未浇水幼苗
func ReadyForSummary(g *Grid, q *ActiveItemQueue) bool {
	return q.Empty() && !g.Any(types.TileSproutedDry)
}

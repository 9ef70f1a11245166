package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/entities"
	"github.com/decker502/farmshop/pkg/farm"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/types"
)

type farmWorld struct {
	*testWorld
	sim  *FarmSimulationSystem
	grid *components.FarmGridComponent
}

func newFarmWorld(t *testing.T, goal config.GoalConfig) *farmWorld {
	t.Helper()
	w := newTestWorld(t)
	id := entities.NewFarmGridEntity(w.em, w.cfg.Farm)
	grid, ok := ecs.GetComponent[*components.FarmGridComponent](w.em, id)
	require.True(t, ok)

	sim := NewFarmSimulationSystem(w.em, w.flow, w.ctx, w.events, w.dialog, nil, w.handle, w.cfg.Dialogue.SummaryNode, goal)
	return &farmWorld{testWorld: w, sim: sim, grid: grid}
}

func (w *farmWorld) enterFarm(t *testing.T) {
	t.Helper()
	require.NoError(t, w.flow.SetState(game.StateFarmingBattle))
	w.flow.ApplyTransitions()
	require.True(t, w.flow.InFarming(game.FarmingCheckSeeded))
}

// runUntilSummary 推进直到 ShowSummary，返回所用帧数
func (w *farmWorld) runUntilSummary(t *testing.T) int {
	t.Helper()
	for i := 0; i < 200; i++ {
		if w.flow.InFarming(game.FarmingShowSummary) {
			return i
		}
		w.tick(w.sim)
	}
	t.Fatalf("never reached ShowSummary, stuck in %s", w.flow.FarmingState())
	return 0
}

// closeSummary 关闭总结对话并应用转换
func (w *farmWorld) closeSummary(t *testing.T) {
	t.Helper()
	require.True(t, w.dialog.Active())
	w.input.Tap(ebiten.KeySpace)
	w.tick(w.sim)
	w.tick(w.sim)
}

func TestFarmSeasonFromDirt(t *testing.T) {
	w := newFarmWorld(t, config.GoalConfig{})
	w.ctx.ActiveItems.Push(farm.ActiveItem{Type: types.ItemHoe, Uses: 2})
	w.ctx.ActiveItems.Push(farm.ActiveItem{Type: types.ItemParsnipSeed, Uses: 1})
	w.ctx.ActiveItems.Push(farm.ActiveItem{Type: types.ItemWateringCan, Uses: 1})
	w.enterFarm(t)

	w.runUntilSummary(t)

	g := w.grid.Grid
	assert.Equal(t, types.TileSeeded, g[0])
	assert.Equal(t, types.TileTilled, g[1])
	assert.Equal(t, 23, g.Count(types.TileDirt))
	assert.True(t, w.ctx.ActiveItems.Empty())
	assert.True(t, farm.ReadyForSummary(&g, w.ctx.ActiveItems))
	assert.Equal(t, 1, w.ctx.LastSummary.Counts[types.TileSeeded])

	w.closeSummary(t)
	assert.Equal(t, game.StateStoreSetup, w.flow.State())
	assert.Equal(t, 1, w.ctx.Season)
}

func TestFarmGrowthAcrossSeasons(t *testing.T) {
	w := newFarmWorld(t, config.GoalConfig{})
	w.grid.Grid[0] = types.TileSeeded
	w.grid.Grid[1] = types.TileSeeded
	w.ctx.ActiveItems.Push(farm.ActiveItem{Type: types.ItemWateringCan, Uses: 1})
	w.enterFarm(t)

	w.runUntilSummary(t)
	// 两个种子都发芽，只浇了一个，另一个枯死
	assert.Equal(t, types.TileSproutedWet, w.grid.Grid[0])
	assert.Equal(t, types.TileFailed, w.grid.Grid[1])
	w.closeSummary(t)

	w.ctx.ActiveItems.Push(farm.ActiveItem{Type: types.ItemScythe, Uses: 1})
	require.NoError(t, w.flow.SetState(game.StateFarmingBattle))
	w.flow.ApplyTransitions()
	w.runUntilSummary(t)

	// 湿润幼苗在 CheckSeeded 中成熟，镰刀先遇到第一个成熟格子
	assert.Equal(t, types.TileDirt, w.grid.Grid[0])
	assert.Equal(t, types.TileFailed, w.grid.Grid[1])
	assert.Equal(t, 1, w.ctx.Season, "season counts only closed summaries")
}

func TestFarmOneChangePerStep(t *testing.T) {
	w := newFarmWorld(t, config.GoalConfig{})
	w.grid.Grid[3] = types.TileSeeded
	w.grid.Grid[7] = types.TileSeeded
	w.enterFarm(t)

	w.sim.Step(w.grid)
	assert.Equal(t, 3, w.grid.LastChanged)
	assert.Equal(t, types.TileSproutedDry, w.grid.Grid[3])
	assert.Equal(t, types.TileSeeded, w.grid.Grid[7])

	w.sim.Step(w.grid)
	assert.Equal(t, 7, w.grid.LastChanged)
	w.sim.Step(w.grid)
	assert.Equal(t, -1, w.grid.LastChanged)
	w.flow.ApplyTransitions()
	assert.True(t, w.flow.InFarming(game.FarmingApplyItems))
}

func TestFarmPacing(t *testing.T) {
	w := newFarmWorld(t, config.GoalConfig{})
	w.grid.Grid[0] = types.TileSeeded
	w.enterFarm(t)

	// 未到间隔不推进
	w.sim.Update(w.cfg.Farm.StepInterval / 2)
	assert.Equal(t, types.TileSeeded, w.grid.Grid[0])
	w.sim.Update(w.cfg.Farm.StepInterval / 2)
	assert.Equal(t, types.TileSproutedDry, w.grid.Grid[0])
}

func TestFarmItemAppliedEvent(t *testing.T) {
	w := newFarmWorld(t, config.GoalConfig{})
	w.ctx.ActiveItems.Push(farm.ActiveItem{Type: types.ItemHoe, Uses: 1})
	w.ctx.ActiveItems.Push(farm.ActiveItem{Type: types.ItemScythe, Uses: 1})
	require.NoError(t, w.flow.SetState(game.StateFarmingBattle))
	w.flow.SetFarmingState(game.FarmingApplyItems)
	w.flow.ApplyTransitions()
	require.True(t, w.flow.InFarming(game.FarmingApplyItems))

	w.sim.Step(w.grid)
	w.sim.Step(w.grid) // 镰刀没有目标，直接丢弃
	w.events.Advance()
	assert.Equal(t, []game.ItemApplied{{Tile: 0}}, w.events.ItemApplied.Events())
	assert.True(t, w.ctx.ActiveItems.Empty())
}

func TestFarmIgnoredOutsideBattle(t *testing.T) {
	w := newFarmWorld(t, config.GoalConfig{})
	w.grid.Grid[0] = types.TileSeeded
	for i := 0; i < 5; i++ {
		w.tick(w.sim)
	}
	assert.Equal(t, types.TileSeeded, w.grid.Grid[0])
}

func TestFarmGoals(t *testing.T) {
	t.Run("failed", func(t *testing.T) {
		w := newFarmWorld(t, config.GoalConfig{FailedTiles: 2})
		w.grid.Grid[0] = types.TileSeeded
		w.grid.Grid[1] = types.TileSeeded
		w.enterFarm(t)
		w.runUntilSummary(t)
		w.closeSummary(t)
		assert.Equal(t, game.StateFailed, w.flow.State())
		assert.ErrorIs(t, w.flow.SetState(game.StateStoreSetup), game.ErrTerminalState)
	})

	t.Run("success", func(t *testing.T) {
		w := newFarmWorld(t, config.GoalConfig{Earnings: 100, FailedTiles: 5})
		w.ctx.Earnings = 150
		w.enterFarm(t)
		w.runUntilSummary(t)
		w.closeSummary(t)
		assert.Equal(t, game.StateSuccess, w.flow.State())
	})

	t.Run("disabled", func(t *testing.T) {
		w := newFarmWorld(t, config.GoalConfig{})
		w.ctx.Earnings = 1 << 20
		w.enterFarm(t)
		w.runUntilSummary(t)
		w.closeSummary(t)
		assert.Equal(t, game.StateStoreSetup, w.flow.State())
	})
}

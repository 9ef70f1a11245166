package systems

import (
	"log"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/farm"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/types"
)

// FarmSimulationSystem 农场模拟
//
// 每个计时器周期执行一步：
//   - CheckSeeded: 成熟/发芽一个格子，无变化时进入 ApplyItems
//   - ApplyItems: 队首物品作用一次，队列为空时进入 CheckFailed
//   - CheckFailed: 一个未浇水幼苗枯死，无变化时进入 ShowSummary
//
// ShowSummary 显示总结对话，对话结束后季数 +1，按结束条件进入
// Failed / Success，否则回到 StoreSetup。
type FarmSimulationSystem struct {
	entityManager *ecs.EntityManager
	flow          *game.GameFlow
	ctx           *game.FlowContext
	events        *game.Events
	dialog        *DialogSystem
	audio         *game.AudioManager
	handle        game.DialogueHandle
	summaryNode   string
	goal          config.GoalConfig
}

// NewFarmSimulationSystem 创建农场模拟系统并注册钩子
func NewFarmSimulationSystem(
	em *ecs.EntityManager,
	flow *game.GameFlow,
	ctx *game.FlowContext,
	events *game.Events,
	dialog *DialogSystem,
	audio *game.AudioManager,
	handle game.DialogueHandle,
	summaryNode string,
	goal config.GoalConfig,
) *FarmSimulationSystem {
	s := &FarmSimulationSystem{
		entityManager: em,
		flow:          flow,
		ctx:           ctx,
		events:        events,
		dialog:        dialog,
		audio:         audio,
		handle:        handle,
		summaryNode:   summaryNode,
		goal:          goal,
	}
	flow.OnEnter(game.StateFarmingBattle, s.resetTimer)
	flow.OnEnterFarming(game.FarmingShowSummary, s.showSummary)
	return s
}

func (s *FarmSimulationSystem) farmGrid() (*components.FarmGridComponent, *components.TimerComponent, bool) {
	id, grid, ok := ecs.First[*components.FarmGridComponent](s.entityManager)
	if !ok {
		return nil, nil, false
	}
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
	return grid, timer, ok
}

func (s *FarmSimulationSystem) resetTimer() {
	grid, timer, ok := s.farmGrid()
	if !ok {
		return
	}
	timer.Reset()
	grid.LastChanged = -1
}

func (s *FarmSimulationSystem) showSummary() {
	grid, _, ok := s.farmGrid()
	if ok {
		s.ctx.LastSummary = farm.Summarize(grid.Grid)
	}
	s.dialog.Show(s.handle, s.summaryNode)
}

// Update 按节奏推进农场
func (s *FarmSimulationSystem) Update(deltaTime float64) {
	if s.flow.State() != game.StateFarmingBattle {
		return
	}

	if s.flow.InFarming(game.FarmingShowSummary) {
		if dialogDone(s.events, s.dialog, s.summaryNode) {
			s.endSeason()
		}
		return
	}

	grid, timer, ok := s.farmGrid()
	if !ok {
		return
	}
	if timer.Tick(deltaTime) {
		s.Step(grid)
	}
}

// Step 执行当前阶段的一步
func (s *FarmSimulationSystem) Step(grid *components.FarmGridComponent) {
	switch s.flow.FarmingState() {
	case game.FarmingCheckSeeded:
		tile := farm.StepCheckSeeded(&grid.Grid)
		grid.LastChanged = tile
		if tile < 0 {
			s.flow.SetFarmingState(game.FarmingApplyItems)
		}

	case game.FarmingApplyItems:
		res := farm.ApplyNext(&grid.Grid, s.ctx.ActiveItems)
		grid.LastChanged = res.Tile
		switch res.Outcome {
		case farm.ApplyQueueEmpty:
			s.flow.SetFarmingState(game.FarmingCheckFailed)
		case farm.ApplyNoTarget:
			log.Printf("[FarmSimulationSystem] %s has nothing to work on, dropped", res.Item.Type)
		case farm.ApplyUsed, farm.ApplyExhausted:
			s.events.ItemApplied.Publish(game.ItemApplied{Tile: res.Tile})
			s.audio.PlaySound(game.SoundFarmStep)
		}

	case game.FarmingCheckFailed:
		tile := farm.StepCheckFailed(&grid.Grid)
		grid.LastChanged = tile
		if tile < 0 {
			s.flow.SetFarmingState(game.FarmingShowSummary)
		}
	}
}

// endSeason 季节结束，检查结束条件
func (s *FarmSimulationSystem) endSeason() {
	s.ctx.Season++
	next := game.StateStoreSetup
	failed := s.ctx.LastSummary.Counts[types.TileFailed]
	switch {
	case s.goal.FailedTiles > 0 && failed >= s.goal.FailedTiles:
		next = game.StateFailed
	case s.goal.Earnings > 0 && s.ctx.Earnings >= s.goal.Earnings:
		next = game.StateSuccess
	}
	log.Printf("[FarmSimulationSystem] season %d over (earnings %d, failed tiles %d) -> %s",
		s.ctx.Season, s.ctx.Earnings, failed, next)
	if err := s.flow.SetState(next); err != nil {
		log.Printf("[FarmSimulationSystem] %v", err)
	}
}

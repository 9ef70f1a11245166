package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameFlowInitialState(t *testing.T) {
	f := NewGameFlow()
	assert.Equal(t, StateStart, f.State())
	assert.Equal(t, StoreInactive, f.StoreState())
	assert.Equal(t, FarmingInactive, f.FarmingState())
	assert.False(t, f.ApplyTransitions(), "nothing queued")
}

func TestGameFlowRequestsAreDeferred(t *testing.T) {
	f := NewGameFlow()
	require.NoError(t, f.SetState(StateStoreSetup))

	// 在 ApplyTransitions 前状态不变
	assert.Equal(t, StateStart, f.State())

	assert.True(t, f.ApplyTransitions())
	assert.Equal(t, StateStoreSetup, f.State())
	assert.Equal(t, StoreOpeningDialog, f.StoreState(), "entering StoreSetup starts its first sub-state")
	assert.True(t, f.InStore(StoreOpeningDialog))
}

func TestGameFlowSubStatesResetOnExit(t *testing.T) {
	f := NewGameFlow()
	require.NoError(t, f.SetState(StateStoreSetup))
	f.ApplyTransitions()

	f.SetStoreState(StoreFarmerBuy)
	f.ApplyTransitions()
	assert.Equal(t, StoreFarmerBuy, f.StoreState())

	require.NoError(t, f.SetState(StateFarmingBattle))
	f.ApplyTransitions()
	assert.Equal(t, StoreInactive, f.StoreState())
	assert.Equal(t, FarmingCheckSeeded, f.FarmingState())
	assert.True(t, f.InFarming(FarmingCheckSeeded))

	f.SetFarmingState(FarmingShowSummary)
	f.ApplyTransitions()

	require.NoError(t, f.SetState(StateStoreSetup))
	f.ApplyTransitions()
	assert.Equal(t, FarmingInactive, f.FarmingState())
	assert.Equal(t, StoreOpeningDialog, f.StoreState(), "re-entering StoreSetup starts over")
}

func TestGameFlowIgnoresSubStateOutsideParent(t *testing.T) {
	f := NewGameFlow()

	f.SetStoreState(StorePedestalSelect)
	f.SetFarmingState(FarmingApplyItems)
	assert.False(t, f.ApplyTransitions())
	assert.Equal(t, StoreInactive, f.StoreState())
	assert.Equal(t, FarmingInactive, f.FarmingState())

	require.NoError(t, f.SetState(StateStoreSetup))
	f.ApplyTransitions()
	f.SetFarmingState(FarmingApplyItems)
	f.SetStoreState(StoreInactive)
	assert.False(t, f.ApplyTransitions())
	assert.Equal(t, StoreOpeningDialog, f.StoreState())
}

func TestGameFlowSubStateQueuedWithParent(t *testing.T) {
	f := NewGameFlow()
	require.NoError(t, f.SetState(StateStoreSetup))
	// 父状态即将进入时，子状态请求被接受并在进入后应用
	f.SetStoreState(StorePedestalSelect)
	f.ApplyTransitions()
	assert.Equal(t, StorePedestalSelect, f.StoreState())
}

func TestGameFlowHooks(t *testing.T) {
	f := NewGameFlow()
	var log []string

	f.OnExit(StateStart, func() { log = append(log, "exit Start") })
	f.OnEnter(StateStoreSetup, func() { log = append(log, "enter StoreSetup") })
	f.OnEnterStore(StoreOpeningDialog, func() {
		log = append(log, "enter OpeningDialog")
		// 钩子中请求的切换在同一次 ApplyTransitions 中完成
		f.SetStoreState(StorePedestalSelect)
	})
	f.OnEnterStore(StorePedestalSelect, func() { log = append(log, "enter PedestalSelect") })
	f.OnExit(StateStoreSetup, func() { log = append(log, "exit StoreSetup") })
	f.OnEnterFarming(FarmingCheckSeeded, func() { log = append(log, "enter CheckSeeded") })

	require.NoError(t, f.SetState(StateStoreSetup))
	f.ApplyTransitions()
	assert.Equal(t, []string{
		"exit Start",
		"enter StoreSetup",
		"enter OpeningDialog",
		"enter PedestalSelect",
	}, log)
	assert.Equal(t, StorePedestalSelect, f.StoreState())

	log = nil
	require.NoError(t, f.SetState(StateFarmingBattle))
	f.ApplyTransitions()
	assert.Equal(t, []string{"exit StoreSetup", "enter CheckSeeded"}, log)
}

func TestGameFlowTerminalStates(t *testing.T) {
	for _, terminal := range []GameFlowState{StateFailed, StateSuccess} {
		t.Run(terminal.String(), func(t *testing.T) {
			f := NewGameFlow()
			require.NoError(t, f.SetState(StateFarmingBattle))
			f.ApplyTransitions()
			require.NoError(t, f.SetState(terminal))
			f.ApplyTransitions()

			assert.Equal(t, terminal, f.State())
			assert.Equal(t, FarmingInactive, f.FarmingState())
			assert.True(t, f.State().IsTerminal())

			err := f.SetState(StateStoreSetup)
			assert.True(t, errors.Is(err, ErrTerminalState))
			assert.False(t, f.ApplyTransitions())
			assert.Equal(t, terminal, f.State())
		})
	}
}

func TestGameFlowRejectsUnknownState(t *testing.T) {
	f := NewGameFlow()
	assert.Error(t, f.SetState(GameFlowState(42)))
}

func TestGameFlowRunawayChainStops(t *testing.T) {
	f := NewGameFlow()
	// 两个子状态互相请求，形成死循环
	f.OnEnterStore(StorePedestalSelect, func() { f.SetStoreState(StoreInventory) })
	f.OnEnterStore(StoreInventory, func() { f.SetStoreState(StorePedestalSelect) })

	require.NoError(t, f.SetState(StateStoreSetup))
	f.SetStoreState(StorePedestalSelect)
	assert.True(t, f.ApplyTransitions())
	assert.Equal(t, StateStoreSetup, f.State())
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "FarmingBattle", StateFarmingBattle.String())
	assert.Equal(t, "PriceSelect", StorePriceSelect.String())
	assert.Equal(t, "ShowSummary", FarmingShowSummary.String())
	assert.Equal(t, "GameFlowState(9)", GameFlowState(9).String())
}

package game

import (
	"errors"
	"fmt"
	"log"
)

// ErrTerminalState 结束状态（Failed/Success）之后不能再切换
var ErrTerminalState = errors.New("game flow is in a terminal state")

// GameFlowState 顶层游戏状态
type GameFlowState int

const (
	StateStart GameFlowState = iota
	StateStoreSetup
	StateFarmingBattle
	StateFailed
	StateSuccess
)

// String 返回状态名称
func (s GameFlowState) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateStoreSetup:
		return "StoreSetup"
	case StateFarmingBattle:
		return "FarmingBattle"
	case StateFailed:
		return "Failed"
	case StateSuccess:
		return "Success"
	default:
		return fmt.Sprintf("GameFlowState(%d)", int(s))
	}
}

// IsTerminal 是否为结束状态
func (s GameFlowState) IsTerminal() bool {
	return s == StateFailed || s == StateSuccess
}

// StoreSetupState 商店准备阶段的子状态，仅在 StoreSetup 中有效
type StoreSetupState int

const (
	StoreInactive StoreSetupState = iota
	StoreOpeningDialog
	StorePedestalSelect
	StoreInventory
	StorePriceSelect
	StoreFarmerBuy
)

// String 返回子状态名称
func (s StoreSetupState) String() string {
	switch s {
	case StoreInactive:
		return "Inactive"
	case StoreOpeningDialog:
		return "OpeningDialog"
	case StorePedestalSelect:
		return "PedestalSelect"
	case StoreInventory:
		return "Inventory"
	case StorePriceSelect:
		return "PriceSelect"
	case StoreFarmerBuy:
		return "FarmerBuy"
	default:
		return fmt.Sprintf("StoreSetupState(%d)", int(s))
	}
}

// FarmingBattleState 农场阶段的子状态，仅在 FarmingBattle 中有效
type FarmingBattleState int

const (
	FarmingInactive FarmingBattleState = iota
	FarmingCheckSeeded
	FarmingApplyItems
	FarmingCheckFailed
	FarmingShowSummary
)

// String 返回子状态名称
func (s FarmingBattleState) String() string {
	switch s {
	case FarmingInactive:
		return "Inactive"
	case FarmingCheckSeeded:
		return "CheckSeeded"
	case FarmingApplyItems:
		return "ApplyItems"
	case FarmingCheckFailed:
		return "CheckFailed"
	case FarmingShowSummary:
		return "ShowSummary"
	default:
		return fmt.Sprintf("FarmingBattleState(%d)", int(s))
	}
}

// maxTransitionChain 一次 ApplyTransitions 中连锁切换的上限
const maxTransitionChain = 16

// GameFlow 游戏流程状态机
//
// Set* 只记录"下一个状态"，真正的切换发生在每帧开头的 ApplyTransitions：
// 先执行旧状态的退出钩子，再进入新状态及其第一个子状态，
// 钩子中请求的切换在同一次调用内继续处理，系统运行时看到的状态总是稳定的。
type GameFlow struct {
	state   GameFlowState
	store   StoreSetupState
	farming FarmingBattleState

	next        *GameFlowState
	nextStore   *StoreSetupState
	nextFarming *FarmingBattleState

	onEnter        map[GameFlowState][]func()
	onExit         map[GameFlowState][]func()
	onEnterStore   map[StoreSetupState][]func()
	onEnterFarming map[FarmingBattleState][]func()

	transitions int
}

// NewGameFlow 创建状态机，初始状态为 Start
func NewGameFlow() *GameFlow {
	return &GameFlow{
		state:          StateStart,
		onEnter:        make(map[GameFlowState][]func()),
		onExit:         make(map[GameFlowState][]func()),
		onEnterStore:   make(map[StoreSetupState][]func()),
		onEnterFarming: make(map[FarmingBattleState][]func()),
	}
}

// State 当前顶层状态
func (f *GameFlow) State() GameFlowState { return f.state }

// StoreState 当前商店子状态（不在 StoreSetup 时为 Inactive）
func (f *GameFlow) StoreState() StoreSetupState { return f.store }

// FarmingState 当前农场子状态（不在 FarmingBattle 时为 Inactive）
func (f *GameFlow) FarmingState() FarmingBattleState { return f.farming }

// Transitions 累计切换次数（调试显示用）
func (f *GameFlow) Transitions() int { return f.transitions }

// InStore 是否处于指定的商店子状态
func (f *GameFlow) InStore(s StoreSetupState) bool {
	return f.state == StateStoreSetup && f.store == s
}

// InFarming 是否处于指定的农场子状态
func (f *GameFlow) InFarming(s FarmingBattleState) bool {
	return f.state == StateFarmingBattle && f.farming == s
}

// SetState 请求切换顶层状态
func (f *GameFlow) SetState(s GameFlowState) error {
	if f.state.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrTerminalState, f.state, s)
	}
	if s < StateStart || s > StateSuccess {
		return fmt.Errorf("unknown game flow state %d", int(s))
	}
	f.next = &s
	return nil
}

// SetStoreState 请求切换商店子状态
// StoreSetup 未激活（且没有即将进入）时忽略请求
func (f *GameFlow) SetStoreState(s StoreSetupState) {
	if s == StoreInactive || !f.parentActive(StateStoreSetup) {
		log.Printf("[GameFlow] ignored store state request %s in %s", s, f.state)
		return
	}
	f.nextStore = &s
}

// SetFarmingState 请求切换农场子状态
// FarmingBattle 未激活（且没有即将进入）时忽略请求
func (f *GameFlow) SetFarmingState(s FarmingBattleState) {
	if s == FarmingInactive || !f.parentActive(StateFarmingBattle) {
		log.Printf("[GameFlow] ignored farming state request %s in %s", s, f.state)
		return
	}
	f.nextFarming = &s
}

func (f *GameFlow) parentActive(parent GameFlowState) bool {
	if f.next != nil {
		return *f.next == parent
	}
	return f.state == parent
}

// OnEnter 注册进入顶层状态时的钩子
func (f *GameFlow) OnEnter(s GameFlowState, fn func()) {
	f.onEnter[s] = append(f.onEnter[s], fn)
}

// OnExit 注册离开顶层状态时的钩子
func (f *GameFlow) OnExit(s GameFlowState, fn func()) {
	f.onExit[s] = append(f.onExit[s], fn)
}

// OnEnterStore 注册进入商店子状态时的钩子
func (f *GameFlow) OnEnterStore(s StoreSetupState, fn func()) {
	f.onEnterStore[s] = append(f.onEnterStore[s], fn)
}

// OnEnterFarming 注册进入农场子状态时的钩子
func (f *GameFlow) OnEnterFarming(s FarmingBattleState, fn func()) {
	f.onEnterFarming[s] = append(f.onEnterFarming[s], fn)
}

// ApplyTransitions 应用所有挂起的切换，返回是否发生了变化
// 每帧开头、任何系统运行之前调用一次
func (f *GameFlow) ApplyTransitions() bool {
	changed := false
	for i := 0; i < maxTransitionChain; i++ {
		if !f.applyOnce() {
			return changed
		}
		changed = true
	}
	log.Printf("[GameFlow] Warning: transition chain exceeded %d steps", maxTransitionChain)
	return changed
}

func (f *GameFlow) applyOnce() bool {
	if f.next != nil {
		to := *f.next
		f.next = nil
		if to != f.state {
			f.changeState(to)
			return true
		}
	}

	if f.nextStore != nil {
		to := *f.nextStore
		f.nextStore = nil
		if f.state == StateStoreSetup && to != f.store {
			f.changeStore(to)
			return true
		}
	}

	if f.nextFarming != nil {
		to := *f.nextFarming
		f.nextFarming = nil
		if f.state == StateFarmingBattle && to != f.farming {
			f.changeFarming(to)
			return true
		}
	}
	return false
}

func (f *GameFlow) changeState(to GameFlowState) {
	from := f.state
	log.Printf("[GameFlow] %s -> %s", from, to)
	f.transitions++

	runHooks(f.onExit[from])
	switch from {
	case StateStoreSetup:
		f.store = StoreInactive
		f.nextStore = nil
	case StateFarmingBattle:
		f.farming = FarmingInactive
		f.nextFarming = nil
	}

	f.state = to
	runHooks(f.onEnter[to])

	switch to {
	case StateStoreSetup:
		f.changeStore(StoreOpeningDialog)
	case StateFarmingBattle:
		f.changeFarming(FarmingCheckSeeded)
	}
}

func (f *GameFlow) changeStore(to StoreSetupState) {
	log.Printf("[GameFlow] store %s -> %s", f.store, to)
	f.transitions++
	f.store = to
	runHooks(f.onEnterStore[to])
}

func (f *GameFlow) changeFarming(to FarmingBattleState) {
	log.Printf("[GameFlow] farming %s -> %s", f.farming, to)
	f.transitions++
	f.farming = to
	runHooks(f.onEnterFarming[to])
}

func runHooks(hooks []func()) {
	for _, fn := range hooks {
		fn()
	}
}

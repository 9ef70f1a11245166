package systems

import (
	"log"

	"github.com/decker502/farmshop/pkg/game"
)

// StoreFlowSystem 商店开场
// 进入 OpeningDialog 时显示欢迎对话，对话结束后进入 PedestalSelect
type StoreFlowSystem struct {
	flow        *game.GameFlow
	events      *game.Events
	dialog      *DialogSystem
	handle      game.DialogueHandle
	welcomeNode string
}

// NewStoreFlowSystem 创建商店开场系统并注册进入钩子
func NewStoreFlowSystem(
	flow *game.GameFlow,
	events *game.Events,
	dialog *DialogSystem,
	handle game.DialogueHandle,
	welcomeNode string,
) *StoreFlowSystem {
	s := &StoreFlowSystem{
		flow:        flow,
		events:      events,
		dialog:      dialog,
		handle:      handle,
		welcomeNode: welcomeNode,
	}
	flow.OnEnterStore(game.StoreOpeningDialog, func() {
		s.dialog.Show(s.handle, s.welcomeNode)
	})
	return s
}

// Update 等待欢迎对话结束
func (s *StoreFlowSystem) Update(deltaTime float64) {
	if !s.flow.InStore(game.StoreOpeningDialog) {
		return
	}
	if dialogDone(s.events, s.dialog, s.welcomeNode) {
		log.Printf("[StoreFlowSystem] welcome finished, selecting pedestals")
		s.flow.SetStoreState(game.StorePedestalSelect)
	}
}

package systems

import (
	"log"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
)

// FarmerBuySystem 农夫购买
//
// 进入 FarmerBuy 时按展台顺序把商品放入 ActiveItems 队列、累加售价、清空展台，
// 然后显示 FarmerBuy 对话；对话结束后进入 FarmingBattle。
type FarmerBuySystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	flow            *game.GameFlow
	ctx             *game.FlowContext
	events          *game.Events
	dialog          *DialogSystem
	audio           *game.AudioManager
	handle          game.DialogueHandle
	node            string
}

// NewFarmerBuySystem 创建农夫购买系统并注册进入钩子
func NewFarmerBuySystem(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	flow *game.GameFlow,
	ctx *game.FlowContext,
	events *game.Events,
	dialog *DialogSystem,
	audio *game.AudioManager,
	handle game.DialogueHandle,
	node string,
) *FarmerBuySystem {
	s := &FarmerBuySystem{
		entityManager:   em,
		resourceManager: rm,
		flow:            flow,
		ctx:             ctx,
		events:          events,
		dialog:          dialog,
		audio:           audio,
		handle:          handle,
		node:            node,
	}
	flow.OnEnterStore(game.StoreFarmerBuy, func() {
		if sold := s.Collect(); sold > 0 {
			s.audio.PlaySound(game.SoundPurchase)
		}
		s.dialog.Show(s.handle, s.node)
	})
	return s
}

// Collect 收走所有展台上的商品，返回收走的件数
func (s *FarmerBuySystem) Collect() int {
	sold := 0
	for _, id := range ecs.GetEntitiesWith1[*components.PedestalComponent](s.entityManager) {
		pedestal, _ := ecs.GetComponent[*components.PedestalComponent](s.entityManager, id)
		if pedestal.Empty() {
			continue
		}
		s.ctx.ActiveItems.Push(*pedestal.Item)
		s.ctx.Earnings += pedestal.SellAt
		log.Printf("[FarmerBuySystem] farmer bought %s x%d for %d", pedestal.Name, pedestal.Item.Uses, pedestal.SellAt)

		pedestal.Clear()
		resetPedestalSprite(s.entityManager, s.resourceManager, id)
		sold++
	}
	return sold
}

// Update 等待 FarmerBuy 对话结束
func (s *FarmerBuySystem) Update(deltaTime float64) {
	if !s.flow.InStore(game.StoreFarmerBuy) {
		return
	}
	if dialogDone(s.events, s.dialog, s.node) {
		log.Printf("[FarmerBuySystem] %d items queued, heading to the farm", s.ctx.ActiveItems.Len())
		if err := s.flow.SetState(game.StateFarmingBattle); err != nil {
			log.Printf("[FarmerBuySystem] %v", err)
		}
	}
}

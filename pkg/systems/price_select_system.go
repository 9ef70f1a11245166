package systems

import (
	"log"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/entities"
	"github.com/decker502/farmshop/pkg/farm"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/utils"
)

// PriceSelectSystem 数量与售价设置
//
// 上/下调整数量，右/左调整售价；确认键或 "Done" 按钮提交，取消键返回 Inventory。
// 提交时把 ActiveItem{Type, Uses: Quantity} 和售价放到选中的展台上，
// 展台换成商品图标，然后回到 PedestalSelect。
type PriceSelectSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	flow            *game.GameFlow
	ctx             *game.FlowContext
	input           utils.InputProvider
	audio           *game.AudioManager
	buttons         []ecs.EntityID
}

// NewPriceSelectSystem 创建定价系统
func NewPriceSelectSystem(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	flow *game.GameFlow,
	ctx *game.FlowContext,
	input utils.InputProvider,
	audio *game.AudioManager,
) *PriceSelectSystem {
	return &PriceSelectSystem{
		entityManager:   em,
		resourceManager: rm,
		flow:            flow,
		ctx:             ctx,
		input:           input,
		audio:           audio,
	}
}

// SetButtons 绑定只在 PriceSelect 中显示的按钮
func (s *PriceSelectSystem) SetButtons(ids ...ecs.EntityID) {
	s.buttons = ids
}

func (s *PriceSelectSystem) setter() (*components.PriceSetterComponent, bool) {
	_, p, ok := ecs.First[*components.PriceSetterComponent](s.entityManager)
	if !ok || p.Setter == nil {
		return p, false
	}
	return p, true
}

// Update 处理定价输入
func (s *PriceSelectSystem) Update(deltaTime float64) {
	active := s.flow.InStore(game.StorePriceSelect)
	setButtonsHidden(s.entityManager, !active, s.buttons)
	if !active {
		return
	}

	p, ok := s.setter()
	if !ok {
		s.flow.SetStoreState(game.StoreInventory)
		return
	}

	switch {
	case utils.IsCancelJustPressed(s.input):
		s.Cancel()
	case utils.IsConfirmJustPressed(s.input):
		s.Commit()
	case utils.IsUpJustPressed(s.input):
		p.Setter.IncQuantity()
	case utils.IsDownJustPressed(s.input):
		p.Setter.DecQuantity()
	case utils.IsRightJustPressed(s.input):
		p.Setter.IncPrice()
	case utils.IsLeftJustPressed(s.input):
		p.Setter.DecPrice()
	}
}

// IncQuantity 数量 +1（按钮回调）
func (s *PriceSelectSystem) IncQuantity() {
	if p, ok := s.setter(); ok {
		p.Setter.IncQuantity()
	}
}

// DecQuantity 数量 -1（按钮回调）
func (s *PriceSelectSystem) DecQuantity() {
	if p, ok := s.setter(); ok {
		p.Setter.DecQuantity()
	}
}

// IncPrice 售价增加一档（按钮回调）
func (s *PriceSelectSystem) IncPrice() {
	if p, ok := s.setter(); ok {
		p.Setter.IncPrice()
	}
}

// DecPrice 售价减少一档（按钮回调）
func (s *PriceSelectSystem) DecPrice() {
	if p, ok := s.setter(); ok {
		p.Setter.DecPrice()
	}
}

// Cancel 放弃定价，返回库存选择
func (s *PriceSelectSystem) Cancel() {
	if !s.flow.InStore(game.StorePriceSelect) {
		return
	}
	if p, ok := s.setter(); ok {
		p.Setter = nil
	}
	s.flow.SetStoreState(game.StoreInventory)
}

// Commit 把商品放上选中的展台
func (s *PriceSelectSystem) Commit() {
	if !s.flow.InStore(game.StorePriceSelect) {
		return
	}
	p, ok := s.setter()
	if !ok {
		return
	}
	defer func() {
		p.Setter = nil
		s.ctx.SelectedPedestal = ecs.InvalidEntity
		s.flow.SetStoreState(game.StorePedestalSelect)
	}()

	id := s.ctx.SelectedPedestal
	pedestal, ok := ecs.GetComponent[*components.PedestalComponent](s.entityManager, id)
	if !ok {
		log.Printf("[PriceSelectSystem] selected pedestal %d not found", id)
		return
	}

	pedestal.Item = &farm.ActiveItem{Type: p.Item.Type, Uses: p.Setter.Quantity}
	pedestal.SellAt = p.Setter.SellAt
	pedestal.Name = p.Item.Name
	pedestal.Icon = p.Item.Icon
	s.setSprite(id, p.Item.Icon)

	log.Printf("[PriceSelectSystem] pedestal %d: %s x%d for %d",
		pedestal.Index, p.Item.ID, p.Setter.Quantity, p.Setter.SellAt)
	s.audio.PlaySound(game.SoundPurchase)
}

// setSprite 切换展台图片；加载失败时保留原图
func (s *PriceSelectSystem) setSprite(id ecs.EntityID, resourceID string) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.ResourceID == resourceID {
		return
	}
	img, err := s.resourceManager.LoadImageByID(resourceID)
	if err != nil {
		log.Printf("[PriceSelectSystem] icon %s: %v", resourceID, err)
		return
	}
	sprite.Image = img
	sprite.ResourceID = resourceID
}

// resetPedestalSprite 恢复空展台图片
func resetPedestalSprite(em *ecs.EntityManager, rm *game.ResourceManager, id ecs.EntityID) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !ok || sprite.ResourceID == entities.PedestalImageID {
		return
	}
	img, err := rm.LoadImageByID(entities.PedestalImageID)
	if err != nil {
		log.Printf("[PedestalSprite] %v", err)
		return
	}
	sprite.Image = img
	sprite.ResourceID = entities.PedestalImageID
}

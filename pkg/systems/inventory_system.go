package systems

import (
	"log"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/store"
	"github.com/decker502/farmshop/pkg/utils"
)

// InventorySystem 库存选择
//
// 左/上选择上一个，右/下选择下一个（首尾循环）；
// 点击图标或按确认键进入 PriceSelect；取消键返回 PedestalSelect。
type InventorySystem struct {
	entityManager *ecs.EntityManager
	flow          *game.GameFlow
	ctx           *game.FlowContext
	input         utils.InputProvider
	viewport      utils.Viewport
	catalog       *config.Catalog
	limits        store.PriceLimits
}

// NewInventorySystem 创建库存选择系统
func NewInventorySystem(
	em *ecs.EntityManager,
	flow *game.GameFlow,
	ctx *game.FlowContext,
	input utils.InputProvider,
	viewport utils.Viewport,
	catalog *config.Catalog,
	limits store.PriceLimits,
) *InventorySystem {
	return &InventorySystem{
		entityManager: em,
		flow:          flow,
		ctx:           ctx,
		input:         input,
		viewport:      viewport,
		catalog:       catalog,
		limits:        limits,
	}
}

// Update 处理库存选择输入
func (s *InventorySystem) Update(deltaTime float64) {
	_, panel, ok := ecs.First[*components.InventoryPanelComponent](s.entityManager)
	if !ok {
		return
	}

	panel.Visible = s.flow.InStore(game.StoreInventory)
	s.syncSlots(panel.Visible)
	if !panel.Visible {
		return
	}

	switch {
	case utils.IsCancelJustPressed(s.input):
		s.ctx.SelectedPedestal = ecs.InvalidEntity
		s.flow.SetStoreState(game.StorePedestalSelect)
		return
	case utils.IsLeftJustPressed(s.input), utils.IsUpJustPressed(s.input):
		panel.Cursor.Prev()
	case utils.IsRightJustPressed(s.input), utils.IsDownJustPressed(s.input):
		panel.Cursor.Next()
	case utils.IsConfirmJustPressed(s.input):
		s.Choose(panel.Cursor.Selected())
		return
	}

	if s.input.IsPointerJustPressed() {
		if index, ok := s.SlotAt(worldPointer(s.input, s.viewport)); ok {
			panel.Cursor.Select(index)
			s.Choose(index)
		}
	}
}

// SlotAt 返回包含世界坐标点 p 的商品图标索引
func (s *InventorySystem) SlotAt(p store.Point) (int, bool) {
	for _, id := range ecs.GetEntitiesWith3[*components.InventorySlotComponent, *components.PositionComponent, *components.ClickableComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		if store.PointInside(p, store.Point{X: pos.X, Y: pos.Y}, clickable.Width) {
			slot, _ := ecs.GetComponent[*components.InventorySlotComponent](s.entityManager, id)
			return slot.Index, true
		}
	}
	return -1, false
}

// Choose 选中目录第 index 件商品，打开定价面板
func (s *InventorySystem) Choose(index int) {
	item, ok := s.catalog.Item(index)
	if !ok {
		return
	}
	_, setter, ok := ecs.First[*components.PriceSetterComponent](s.entityManager)
	if !ok {
		log.Printf("[InventorySystem] no price setter entity")
		return
	}
	setter.Setter = store.NewPriceSetter(item.StorePrice, s.limits)
	setter.Item = item
	log.Printf("[InventorySystem] chose %s (store price %d)", item.ID, item.StorePrice)
	s.flow.SetStoreState(game.StorePriceSelect)
}

func (s *InventorySystem) syncSlots(visible bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.InventorySlotComponent, *components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.Hidden = !visible
	}
}

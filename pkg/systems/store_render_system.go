package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/utils"
)

var (
	storeLabelColor    = color.RGBA{255, 255, 255, 255}
	storeHintColor     = color.RGBA{200, 200, 200, 255}
	storeCursorColor   = color.RGBA{255, 200, 0, 255}
	storeSelectedColor = color.RGBA{120, 200, 255, 255}
	pricePanelColor    = color.RGBA{20, 20, 28, 220}
)

// StoreRenderSystem 商店界面文字与高亮
//   - 展台下方的商品名和售价，正在编辑的展台加框
//   - Inventory 中光标所在的商品图标加框，并显示名称与进价
//   - PriceSelect 中的数量/售价面板
//   - 当前阶段的操作提示
type StoreRenderSystem struct {
	entityManager *ecs.EntityManager
	flow          *game.GameFlow
	ctx           *game.FlowContext
	catalog       *config.Catalog
	font          *text.GoTextFace
	viewport      utils.Viewport
}

// NewStoreRenderSystem 创建商店界面渲染系统
func NewStoreRenderSystem(
	em *ecs.EntityManager,
	flow *game.GameFlow,
	ctx *game.FlowContext,
	catalog *config.Catalog,
	font *text.GoTextFace,
	viewport utils.Viewport,
) *StoreRenderSystem {
	return &StoreRenderSystem{
		entityManager: em,
		flow:          flow,
		ctx:           ctx,
		catalog:       catalog,
		font:          font,
		viewport:      viewport,
	}
}

// Draw 绘制商店界面
func (s *StoreRenderSystem) Draw(screen *ebiten.Image) {
	if s.flow.State() != game.StateStoreSetup || s.font == nil {
		return
	}
	s.drawPedestalLabels(screen)
	if s.flow.InStore(game.StoreInventory) {
		s.drawInventoryCursor(screen)
	}
	if s.flow.InStore(game.StorePriceSelect) {
		s.drawPricePanel(screen)
	}
	if hint := StoreHint(s.flow.StoreState()); hint != "" {
		s.drawText(screen, hint, 8, 24, storeHintColor, text.AlignStart)
	}
}

// StoreHint 各阶段的操作提示
func StoreHint(state game.StoreSetupState) string {
	switch state {
	case game.StorePedestalSelect:
		return "Click a pedestal to stock it. F or Finish when done."
	case game.StoreInventory:
		return "Pick an item: arrows + Enter, or click. Esc to go back."
	case game.StorePriceSelect:
		return "Up/Down quantity, Left/Right price. Enter to place, Esc to go back."
	}
	return ""
}

func (s *StoreRenderSystem) drawPedestalLabels(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PedestalComponent, *components.PositionComponent](s.entityManager) {
		pedestal, _ := ecs.GetComponent[*components.PedestalComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sx, sy := s.viewport.WorldToScreen(pos.X, pos.Y)

		if id == s.ctx.SelectedPedestal {
			x, y := utils.CenteredOrigin(sx, sy, pedestal.Size+4, pedestal.Size+4)
			vector.StrokeRect(screen, float32(x), float32(y), float32(pedestal.Size+4), float32(pedestal.Size+4), 1, storeSelectedColor, false)
		}
		if pedestal.Empty() {
			continue
		}
		label := fmt.Sprintf("%s x%d", pedestal.Name, pedestal.Item.Uses)
		s.drawText(screen, label, sx, sy+pedestal.Size/2+4, storeLabelColor, text.AlignCenter)
		s.drawText(screen, fmt.Sprintf("$%d", pedestal.SellAt), sx, sy+pedestal.Size/2+18, storeCursorColor, text.AlignCenter)
	}
}

func (s *StoreRenderSystem) drawInventoryCursor(screen *ebiten.Image) {
	_, panel, ok := ecs.First[*components.InventoryPanelComponent](s.entityManager)
	if !ok {
		return
	}
	selected := panel.Cursor.Selected()
	for _, id := range ecs.GetEntitiesWith3[*components.InventorySlotComponent, *components.PositionComponent, *components.ClickableComponent](s.entityManager) {
		slot, _ := ecs.GetComponent[*components.InventorySlotComponent](s.entityManager, id)
		if slot.Index != selected {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		sx, sy := s.viewport.WorldToScreen(pos.X, pos.Y)
		x, y := utils.CenteredOrigin(sx, sy, clickable.Width, clickable.Height)
		vector.StrokeRect(screen, float32(x), float32(y), float32(clickable.Width), float32(clickable.Height), 1, storeCursorColor, false)

		if item, ok := s.catalog.Item(selected); ok {
			s.drawText(screen, fmt.Sprintf("%s ($%d)", item.Name, item.StorePrice), sx, y+clickable.Height+4, storeLabelColor, text.AlignCenter)
			if item.Description != "" {
				s.drawText(screen, item.Description, sx, y+clickable.Height+18, storeHintColor, text.AlignCenter)
			}
		}
	}
}

func (s *StoreRenderSystem) drawPricePanel(screen *ebiten.Image) {
	_, p, ok := ecs.First[*components.PriceSetterComponent](s.entityManager)
	if !ok || !p.Visible() {
		return
	}
	const w, h = 200.0, 64.0
	x, y := utils.CenteredOrigin(s.viewport.Width/2, s.viewport.Height/2+24, w, h)
	vector.DrawFilledRect(screen, float32(x), float32(y), w, h, pricePanelColor, false)

	cx := x + w/2
	s.drawText(screen, p.Item.Name, cx, y+6, storeLabelColor, text.AlignCenter)
	s.drawText(screen, fmt.Sprintf("Quantity: %d", p.Setter.Quantity), cx, y+22, storeLabelColor, text.AlignCenter)
	s.drawText(screen, fmt.Sprintf("Sell at: $%d (cost $%d)", p.Setter.SellAt, p.Setter.Floor()), cx, y+38, storeCursorColor, text.AlignCenter)
}

func (s *StoreRenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, str, s.font, op)
}

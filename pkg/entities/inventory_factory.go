package entities

import (
	"fmt"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/store"
)

// 库存面板布局（世界坐标）
const (
	InventorySlotSize    = 24.0
	InventorySlotSpacing = 32.0
	InventoryPanelY      = 24.0
)

// NewInventoryPanel 创建库存面板及每个商品的图标实体
// 图标按目录顺序水平排列，居中于 x=0；面板初始隐藏
func NewInventoryPanel(em *ecs.EntityManager, rm *game.ResourceManager, catalog *config.Catalog) (ecs.EntityID, []ecs.EntityID, error) {
	panel := em.CreateEntity()
	ecs.AddComponent(em, panel, &components.InventoryPanelComponent{
		Cursor: store.NewInventory(catalog.Len()),
	})

	slots := make([]ecs.EntityID, 0, catalog.Len())
	left := -float64(catalog.Len()-1) * InventorySlotSpacing / 2
	for i, item := range catalog.Items {
		img, err := rm.LoadImageByID(item.Icon)
		if err != nil {
			return panel, slots, fmt.Errorf("inventory slot %s: %w", item.ID, err)
		}
		slot := em.CreateEntity()
		ecs.AddComponent(em, slot, &components.PositionComponent{
			X: left + float64(i)*InventorySlotSpacing,
			Y: InventoryPanelY,
		})
		ecs.AddComponent(em, slot, &components.SpriteComponent{
			Image:      img,
			ResourceID: item.Icon,
			Layer:      5,
			Hidden:     true,
		})
		ecs.AddComponent(em, slot, &components.ClickableComponent{
			Width:     InventorySlotSize,
			Height:    InventorySlotSize,
			IsEnabled: true,
		})
		ecs.AddComponent(em, slot, &components.InventorySlotComponent{Index: i})
		slots = append(slots, slot)
	}
	return panel, slots, nil
}

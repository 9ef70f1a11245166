package components

import "github.com/decker502/farmshop/pkg/store"

// InventoryPanelComponent 库存选择面板
// Cursor 的索引对应商品目录中的条目
type InventoryPanelComponent struct {
	Cursor  *store.Inventory
	Visible bool
}

// InventorySlotComponent 面板中的一个商品图标（可点击）
type InventorySlotComponent struct {
	Index int
}

package store

// Inventory 库存选择光标
// 左右/上下移动时首尾循环
type Inventory struct {
	size     int
	selected int
}

// NewInventory 创建 size 个条目的光标，初始选中第 0 个
func NewInventory(size int) *Inventory {
	return &Inventory{size: size}
}

// Selected 当前选中的索引；空库存返回 -1
func (inv *Inventory) Selected() int {
	if inv.size == 0 {
		return -1
	}
	return inv.selected
}

// Select 直接选中（越界时忽略）
func (inv *Inventory) Select(i int) {
	if i >= 0 && i < inv.size {
		inv.selected = i
	}
}

// Next 选中下一个，末尾回到开头
func (inv *Inventory) Next() {
	if inv.size == 0 {
		return
	}
	inv.selected = (inv.selected + 1) % inv.size
}

// Prev 选中上一个，开头回到末尾
func (inv *Inventory) Prev() {
	if inv.size == 0 {
		return
	}
	inv.selected = (inv.selected - 1 + inv.size) % inv.size
}

// Len 条目数量
func (inv *Inventory) Len() int {
	return inv.size
}

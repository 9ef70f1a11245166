package components

import "github.com/decker502/farmshop/pkg/farm"

// PedestalComponent 商店展台
// Item 为 nil 表示空展台
type PedestalComponent struct {
	Index  int            // 展台序号（从左到右）
	Size   float64        // 点击区域边长（世界坐标）
	Item   *farm.ActiveItem
	SellAt int            // 售价
	Name   string         // 商品名称（显示用）
	Icon   string         // 商品图标资源 ID，空展台为空
}

// Empty 展台是否为空
func (p *PedestalComponent) Empty() bool {
	return p.Item == nil
}

// Clear 清空展台
func (p *PedestalComponent) Clear() {
	p.Item = nil
	p.SellAt = 0
	p.Name = ""
	p.Icon = ""
}

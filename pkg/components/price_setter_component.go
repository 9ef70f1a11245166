package components

import (
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/store"
)

// PriceSetterComponent 数量/售价设置面板
// Setter 为 nil 时面板不显示
type PriceSetterComponent struct {
	Setter *store.PriceSetter
	Item   config.CatalogItem
}

// Visible 面板是否显示
func (p *PriceSetterComponent) Visible() bool {
	return p.Setter != nil
}

// Package store 实现商店准备阶段的纯逻辑：
// 定价/数量设置、展台点击检测、库存光标。
package store

// PriceLimits 定价界面的取值范围
type PriceLimits struct {
	MinQuantity int
	MaxQuantity int
	PriceStep   int
	MinPrice    int
	MaxPrice    int
}

// DefaultPriceLimits 默认范围：数量 [1,5]，价格步长 50，价格 [0,10000]
func DefaultPriceLimits() PriceLimits {
	return PriceLimits{
		MinQuantity: 1,
		MaxQuantity: 5,
		PriceStep:   50,
		MinPrice:    0,
		MaxPrice:    10000,
	}
}

// PriceSetter 某件商品的数量与售价设置
//
// 规则：
//   - Quantity 限制在 [MinQuantity, MaxQuantity]
//   - 每次数量变化后，SellAt 至少为 Quantity*StorePrice
//   - SellAt 也可按 PriceStep 独立调整，限制在 [MinPrice, MaxPrice]
type PriceSetter struct {
	Quantity   int
	SellAt     int
	StorePrice int
	limits     PriceLimits
}

// NewPriceSetter 以最小数量创建设置器，初始售价为 MinQuantity*storePrice
func NewPriceSetter(storePrice int, limits PriceLimits) *PriceSetter {
	p := &PriceSetter{
		Quantity:   limits.MinQuantity,
		StorePrice: storePrice,
		limits:     limits,
	}
	p.SellAt = p.clampPrice(p.Quantity * storePrice)
	return p
}

// SetQuantity 设置数量（会被限制）并按下限抬高售价
func (p *PriceSetter) SetQuantity(q int) {
	if q < p.limits.MinQuantity {
		q = p.limits.MinQuantity
	}
	if q > p.limits.MaxQuantity {
		q = p.limits.MaxQuantity
	}
	p.Quantity = q
	if floor := p.Floor(); p.SellAt < floor {
		p.SellAt = p.clampPrice(floor)
	}
}

// IncQuantity 数量 +1
func (p *PriceSetter) IncQuantity() {
	p.SetQuantity(p.Quantity + 1)
}

// DecQuantity 数量 -1
func (p *PriceSetter) DecQuantity() {
	p.SetQuantity(p.Quantity - 1)
}

// IncPrice 售价 +PriceStep
func (p *PriceSetter) IncPrice() {
	p.SellAt = p.clampPrice(p.SellAt + p.limits.PriceStep)
}

// DecPrice 售价 -PriceStep
func (p *PriceSetter) DecPrice() {
	p.SellAt = p.clampPrice(p.SellAt - p.limits.PriceStep)
}

// Floor 当前数量对应的售价下限
func (p *PriceSetter) Floor() int {
	return p.Quantity * p.StorePrice
}

func (p *PriceSetter) clampPrice(v int) int {
	if v < p.limits.MinPrice {
		return p.limits.MinPrice
	}
	if v > p.limits.MaxPrice {
		return p.limits.MaxPrice
	}
	return v
}

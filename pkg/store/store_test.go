package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceSetterQuantityFloorsSellPrice(t *testing.T) {
	p := NewPriceSetter(20, DefaultPriceLimits())
	assert.Equal(t, 1, p.Quantity)
	assert.Equal(t, 20, p.SellAt)

	p.SetQuantity(3)
	assert.Equal(t, 60, p.SellAt)

	p.IncQuantity()
	assert.Equal(t, 4, p.Quantity)
	assert.Equal(t, 80, p.SellAt, "max(60, 4*20)")

	// 数量减少时售价不下调
	p.DecQuantity()
	assert.Equal(t, 80, p.SellAt)
}

func TestPriceSetterQuantityClamp(t *testing.T) {
	p := NewPriceSetter(10, DefaultPriceLimits())
	for i := 0; i < 10; i++ {
		p.IncQuantity()
	}
	assert.Equal(t, 5, p.Quantity)

	for i := 0; i < 10; i++ {
		p.DecQuantity()
	}
	assert.Equal(t, 1, p.Quantity)
}

func TestPriceSetterPriceClamp(t *testing.T) {
	p := NewPriceSetter(20, DefaultPriceLimits())
	p.SetQuantity(3)

	for i := 0; i < 5; i++ {
		p.DecPrice()
	}
	assert.Equal(t, 0, p.SellAt, "price decrements floor at 0")

	for i := 0; i < 500; i++ {
		p.IncPrice()
	}
	assert.Equal(t, 10000, p.SellAt)
}

func TestPriceSetterHigherPriceSurvivesQuantityChange(t *testing.T) {
	p := NewPriceSetter(20, DefaultPriceLimits())
	p.IncPrice()
	p.IncPrice()
	assert.Equal(t, 120, p.SellAt)
	p.IncQuantity()
	assert.Equal(t, 120, p.SellAt, "already above 2*20")
}

func TestPointInsideStrictBoundary(t *testing.T) {
	center := Point{X: 48, Y: 0}
	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{48, 0}, true},
		{"just inside", Point{59.9, -11.9}, true},
		{"right edge", Point{60, 0}, false},
		{"left edge", Point{36, 0}, false},
		{"top edge", Point{48, 12}, false},
		{"bottom edge", Point{48, -12}, false},
		{"corner", Point{60, 12}, false},
		{"outside", Point{100, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PointInside(tc.p, center, 24))
		})
	}
}

func TestInventoryWraps(t *testing.T) {
	inv := NewInventory(3)
	assert.Equal(t, 0, inv.Selected())
	inv.Prev()
	assert.Equal(t, 2, inv.Selected())
	inv.Next()
	assert.Equal(t, 0, inv.Selected())
	inv.Next()
	inv.Next()
	inv.Next()
	assert.Equal(t, 0, inv.Selected())

	inv.Select(7)
	assert.Equal(t, 0, inv.Selected(), "out-of-range select is ignored")
	inv.Select(1)
	assert.Equal(t, 1, inv.Selected())
}

func TestEmptyInventory(t *testing.T) {
	inv := NewInventory(0)
	inv.Next()
	inv.Prev()
	assert.Equal(t, -1, inv.Selected())
}

package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件
// 按钮使用屏幕坐标（左上角 X, Y），不受世界坐标影响
//
// 点击判定：在按钮内按下并在按钮内松开才触发 OnClick
type ButtonComponent struct {
	X, Y          float64
	Width, Height float64

	NormalImage *ebiten.Image
	HoverImage  *ebiten.Image // 可选

	Text      string
	Font      *text.GoTextFace
	TextColor [4]uint8 // R, G, B, A

	State   UIState
	Enabled bool
	Hidden  bool // 隐藏的按钮不绘制也不响应

	// Pressed 在按钮内按下后置位，松开时清除
	Pressed bool

	OnClick func()
}

// Contains 屏幕坐标点是否在按钮内
func (b *ButtonComponent) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

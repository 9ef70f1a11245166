package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
)

// ButtonRenderSystem 按钮渲染系统
// 按钮图片拉伸到按钮尺寸，文字居中
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if button.Hidden {
			continue
		}
		s.drawBackground(screen, button)
		s.drawText(screen, button)
	}
}

func (s *ButtonRenderSystem) drawBackground(screen *ebiten.Image, button *components.ButtonComponent) {
	img := button.NormalImage
	if (button.State == components.UIHovered || button.State == components.UIClicked) && button.HoverImage != nil {
		img = button.HoverImage
	}
	if img == nil {
		return
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(button.Width/float64(bounds.Dx()), button.Height/float64(bounds.Dy()))
	op.GeoM.Translate(button.X, button.Y)
	if button.State == components.UIClicked {
		op.GeoM.Translate(1, 1)
	}
	if button.State == components.UIDisabled {
		op.ColorScale.Scale(0.5, 0.5, 0.5, 1)
	}
	screen.DrawImage(img, op)
}

// drawText 渲染按钮文字（居中，带阴影效果）
func (s *ButtonRenderSystem) drawText(screen *ebiten.Image, button *components.ButtonComponent) {
	if button.Text == "" || button.Font == nil {
		return
	}
	cx := button.X + button.Width/2
	cy := button.Y + button.Height/2

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(cx+1, cy+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 128})
	text.Draw(screen, button.Text, button.Font, shadowOp)

	c := button.TextColor
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(color.RGBA{c[0], c[1], c[2], c[3]})
	text.Draw(screen, button.Text, button.Font, op)
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/utils"
)

var endCardColor = color.RGBA{0, 0, 0, 180}

// EndingSystem Failed / Success 结束画面
// 进入结束状态时显示对应的对话节点（未配置则跳过），并绘制结束卡片
type EndingSystem struct {
	flow      *game.GameFlow
	ctx       *game.FlowContext
	dialog    *DialogSystem
	handle    game.DialogueHandle
	titleFont *text.GoTextFace
	font      *text.GoTextFace
	viewport  utils.Viewport
}

// NewEndingSystem 创建结束画面系统并注册进入钩子
func NewEndingSystem(
	flow *game.GameFlow,
	ctx *game.FlowContext,
	dialog *DialogSystem,
	handle game.DialogueHandle,
	failedNode, successNode string,
	titleFont, font *text.GoTextFace,
	viewport utils.Viewport,
) *EndingSystem {
	s := &EndingSystem{
		flow:      flow,
		ctx:       ctx,
		dialog:    dialog,
		handle:    handle,
		titleFont: titleFont,
		font:      font,
		viewport:  viewport,
	}
	show := func(node string) func() {
		return func() {
			if node != "" {
				s.dialog.Show(s.handle, node)
			}
		}
	}
	flow.OnEnter(game.StateFailed, show(failedNode))
	flow.OnEnter(game.StateSuccess, show(successNode))
	return s
}

// Title 结束卡片标题，非结束状态返回空串
func (s *EndingSystem) Title() string {
	switch s.flow.State() {
	case game.StateFailed:
		return "The farm has failed"
	case game.StateSuccess:
		return "The shop is a success!"
	}
	return ""
}

// Draw 绘制结束卡片
func (s *EndingSystem) Draw(screen *ebiten.Image) {
	title := s.Title()
	if title == "" {
		return
	}
	const w, h = 280.0, 80.0
	cx, cy := s.viewport.Width/2, s.viewport.Height/2-40
	x, y := utils.CenteredOrigin(cx, cy, w, h)
	vector.DrawFilledRect(screen, float32(x), float32(y), w, h, endCardColor, false)

	if s.titleFont != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(cx, cy-12)
		op.ColorScale.ScaleWithColor(color.RGBA{255, 200, 0, 255})
		text.Draw(screen, title, s.titleFont, op)
	}
	if s.font != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(cx, cy+18)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, fmt.Sprintf("%d seasons, $%d earned", s.ctx.Season, s.ctx.Earnings), s.font, op)
	}
}

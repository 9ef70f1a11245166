package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/farmshop/pkg/game"
)

// HUDRenderSystem 顶部状态栏与调试信息
// 调试信息（F3 切换）显示流程状态、转换次数、队列长度和 TPS
type HUDRenderSystem struct {
	flow     *game.GameFlow
	ctx      *game.FlowContext
	settings *game.SettingsManager
	font     *text.GoTextFace
}

// NewHUDRenderSystem 创建状态栏渲染系统
// settings 为 nil 时不显示调试信息
func NewHUDRenderSystem(flow *game.GameFlow, ctx *game.FlowContext, settings *game.SettingsManager, font *text.GoTextFace) *HUDRenderSystem {
	return &HUDRenderSystem{
		flow:     flow,
		ctx:      ctx,
		settings: settings,
		font:     font,
	}
}

// StatusLine 状态栏文字
func (s *HUDRenderSystem) StatusLine() string {
	return fmt.Sprintf("Season %d   Earnings $%d", s.ctx.Season+1, s.ctx.Earnings)
}

// DebugLines 调试信息
func (s *HUDRenderSystem) DebugLines() []string {
	return []string{
		fmt.Sprintf("state: %s / %s / %s", s.flow.State(), s.flow.StoreState(), s.flow.FarmingState()),
		fmt.Sprintf("transitions: %d", s.flow.Transitions()),
		fmt.Sprintf("queue: %d", s.ctx.ActiveItems.Len()),
		fmt.Sprintf("tps: %.1f", ebiten.ActualTPS()),
	}
}

// Draw 绘制状态栏
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	if s.font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s.StatusLine(), s.font, op)

	if s.settings == nil || !s.settings.GetSettings().DebugOverlay {
		return
	}
	w := float64(screen.Bounds().Dx())
	for i, line := range s.DebugLines() {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(w-8, 6+float64(i)*14)
		op.ColorScale.ScaleWithColor(color.RGBA{0, 255, 0, 255})
		text.Draw(screen, line, s.font, op)
	}
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/dialogue"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/utils"
)

// 对话面板布局（屏幕坐标）
const (
	dialogPanelHeight  = 72.0
	dialogPanelMargin  = 8.0
	dialogTextPadding  = 8.0
	dialogLineHeight   = 16.0
	dialogChoiceMarker = "-->"
)

var (
	dialogPanelColor  = color.RGBA{20, 20, 28, 220}
	dialogTextColor   = color.RGBA{255, 255, 255, 255}
	dialogChoiceColor = color.RGBA{255, 200, 0, 255}
)

// DialogRenderSystem 对话框渲染系统
// 在屏幕底部绘制文字面板：台词显示为 "who: what"，选项组逐行列出，高亮项前加 "-->"
type DialogRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
	viewport      utils.Viewport
}

// NewDialogRenderSystem 创建对话框渲染系统
func NewDialogRenderSystem(em *ecs.EntityManager, font *text.GoTextFace, viewport utils.Viewport) *DialogRenderSystem {
	return &DialogRenderSystem{
		entityManager: em,
		font:          font,
		viewport:      viewport,
	}
}

// Draw 绘制当前对话
func (s *DialogRenderSystem) Draw(screen *ebiten.Image) {
	_, d, ok := ecs.First[*components.DialogBoxComponent](s.entityManager)
	if !ok || !d.Visible || d.Runner == nil {
		return
	}

	lines := dialogLines(d.Runner.CurrentStatement(), d.Runner)
	if len(lines) == 0 {
		return
	}

	x := dialogPanelMargin
	y := s.viewport.Height - dialogPanelHeight - dialogPanelMargin
	w := s.viewport.Width - 2*dialogPanelMargin
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(dialogPanelHeight), dialogPanelColor, false)

	if s.font == nil {
		return
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+dialogTextPadding, y+dialogTextPadding+float64(i)*dialogLineHeight)
		if line.highlighted {
			op.ColorScale.ScaleWithColor(dialogChoiceColor)
		} else {
			op.ColorScale.ScaleWithColor(dialogTextColor)
		}
		text.Draw(screen, line.text, s.font, op)
	}
}

type dialogLine struct {
	text        string
	highlighted bool
}

// dialogLines 把当前语句排成面板中的文字行
func dialogLines(st dialogue.Statement, r *dialogue.Runner) []dialogLine {
	switch st.Kind {
	case dialogue.StatementLine:
		if st.Who == "" {
			return []dialogLine{{text: st.What}}
		}
		return []dialogLine{{text: fmt.Sprintf("%s: %s", st.Who, st.What)}}
	case dialogue.StatementChoices:
		_, selected := r.CurrentChoices()
		lines := make([]dialogLine, 0, len(st.Choices))
		for i, c := range st.Choices {
			label := c.What
			if c.Who != "" {
				label = fmt.Sprintf("%s: %s", c.Who, c.What)
			}
			if i == selected {
				lines = append(lines, dialogLine{text: dialogChoiceMarker + " " + label, highlighted: true})
			} else {
				lines = append(lines, dialogLine{text: "    " + label})
			}
		}
		return lines
	}
	return nil
}

package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/farmshop/pkg/entities"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/utils"
)

// StartLogoImageID 开始画面的标志
const StartLogoImageID = "IMAGE_START_LOGO"

var startMenuBackground = color.RGBA{R: 56, G: 102, B: 65, A: 255}

// StartMenuScene 开始画面
// 显示标志和 "Click to Start"；点击、Space/Enter 或按住手柄 Start/South 进入商店
type StartMenuScene struct {
	env     *Env
	logo    *ebiten.Image
	title   *text.GoTextFace
	font    *text.GoTextFace
	elapsed float64
	started bool
}

// NewStartMenuScene 创建开始画面
// 标志图片缺失时只绘制标题文字
func NewStartMenuScene(env *Env) *StartMenuScene {
	s := &StartMenuScene{env: env}
	if img, err := env.Resources.LoadImageByID(StartLogoImageID); err != nil {
		log.Printf("[StartMenuScene] Warning: logo unavailable: %v", err)
	} else {
		s.logo = img
	}
	s.title = loadFont(env.Resources, TitleFontID, 24)
	s.font = loadFont(env.Resources, entities.ButtonFontID, 12)
	return s
}

// StartRequested 本帧是否请求开始
func (s *StartMenuScene) StartRequested() bool {
	in := s.env.Input
	return in.IsPointerJustPressed() ||
		utils.IsConfirmJustPressed(in) ||
		in.IsGamepadButtonPressed(ebiten.StandardGamepadButtonCenterRight) ||
		in.IsGamepadButtonPressed(ebiten.StandardGamepadButtonRightBottom)
}

// Update 等待开始输入
func (s *StartMenuScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.started || !s.StartRequested() {
		return
	}
	s.started = true
	if s.env.Audio != nil {
		s.env.Audio.PlaySound(game.SoundClick)
	}
	if err := s.env.Flow.SetState(game.StateStoreSetup); err != nil {
		log.Printf("[StartMenuScene] %v", err)
		return
	}
	// 离开 Start 的钩子会切换到游戏场景
	s.env.Flow.ApplyTransitions()
}

// Draw 绘制开始画面
func (s *StartMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(startMenuBackground)
	vp := s.env.Viewport()
	cx, cy := vp.Width/2, vp.Height/2

	if s.logo != nil {
		w, h := s.logo.Bounds().Dx(), s.logo.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		x, y := utils.CenteredOrigin(cx, cy-40, float64(w), float64(h))
		op.GeoM.Translate(x, y)
		screen.DrawImage(s.logo, op)
	}
	if s.title != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(cx, cy-40)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, s.env.Config.Window.Title, s.title, op)
	}

	// 提示文字每 0.5 秒闪烁一次
	if s.font != nil && int(s.elapsed*2)%2 == 0 {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(cx, cy+40)
		op.ColorScale.ScaleWithColor(color.RGBA{255, 230, 150, 255})
		text.Draw(screen, "Click to Start", s.font, op)
	}
}

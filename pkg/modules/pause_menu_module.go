package modules

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/entities"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/systems"
	"github.com/decker502/farmshop/pkg/utils"
)

// PauseMenuModule 暂停菜单模块
//
// 职责：
//   - P / 手柄 Start 切换暂停，暂停期间场景冻结
//   - 提供继续、音效开关、全屏、调试信息四个按钮
//   - 设置变化立即通过 SettingsManager 保存
//
// 菜单按钮放在模块自己的 EntityManager 中，与场景按钮互不干扰。
type PauseMenuModule struct {
	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	settings  *game.SettingsManager // 可为 nil，此时设置类按钮禁用
	callbacks PauseMenuCallbacks
	font      *text.GoTextFace
	viewport  utils.Viewport

	active bool

	resumeButton     ecs.EntityID
	soundButton      ecs.EntityID
	fullscreenButton ecs.EntityID
	debugButton      ecs.EntityID
}

// PauseMenuCallbacks 暂停菜单回调，均可为 nil
type PauseMenuCallbacks struct {
	OnPause      func()
	OnResume     func()
	OnFullscreen func(enabled bool) // 设置已保存后调用，由调用方切换窗口
}

// 菜单布局
const (
	pauseButtonW       = 120.0
	pauseButtonH       = 20.0
	pauseButtonSpacing = 26.0
	pausePanelW        = 160.0
	pausePanelH        = 150.0
	pauseTitle         = "Paused"
)

var (
	pauseOverlayColor = color.RGBA{0, 0, 0, 140}
	pausePanelColor   = color.RGBA{44, 36, 28, 235}
)

// NewPauseMenuModule 创建暂停菜单模块
// audio 和 settings 可以为 nil
func NewPauseMenuModule(
	rm *game.ResourceManager,
	input utils.InputProvider,
	audio *game.AudioManager,
	settings *game.SettingsManager,
	viewport utils.Viewport,
	callbacks PauseMenuCallbacks,
) (*PauseMenuModule, error) {
	em := ecs.NewEntityManager()
	m := &PauseMenuModule{
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em, input, audio),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
		settings:           settings,
		callbacks:          callbacks,
		viewport:           viewport,
	}

	font, err := rm.LoadFontByID(entities.ButtonFontID)
	if err != nil {
		return nil, fmt.Errorf("pause menu font: %w", err)
	}
	m.font = font

	x := viewport.Width/2 - pauseButtonW/2
	y := viewport.Height/2 - pausePanelH/2 + 36
	buttons := []struct {
		id      *ecs.EntityID
		onClick func()
	}{
		{&m.resumeButton, m.Hide},
		{&m.soundButton, m.toggleSound},
		{&m.fullscreenButton, m.toggleFullscreen},
		{&m.debugButton, m.toggleDebug},
	}
	for i, b := range buttons {
		id, err := entities.NewTextButton(em, rm, x, y+float64(i)*pauseButtonSpacing, pauseButtonW, pauseButtonH, "", b.onClick)
		if err != nil {
			return nil, fmt.Errorf("pause menu button %d: %w", i, err)
		}
		*b.id = id
	}
	m.refreshButtons()
	return m, nil
}

// IsActive 菜单是否打开（场景暂停中）
func (m *PauseMenuModule) IsActive() bool {
	return m.active
}

// Show 打开菜单
func (m *PauseMenuModule) Show() {
	if m.active {
		return
	}
	m.active = true
	m.refreshButtons()
	log.Printf("[PauseMenuModule] paused")
	if m.callbacks.OnPause != nil {
		m.callbacks.OnPause()
	}
}

// Hide 关闭菜单
func (m *PauseMenuModule) Hide() {
	if !m.active {
		return
	}
	m.active = false
	log.Printf("[PauseMenuModule] resumed")
	if m.callbacks.OnResume != nil {
		m.callbacks.OnResume()
	}
}

// Toggle 切换菜单
func (m *PauseMenuModule) Toggle() {
	if m.active {
		m.Hide()
	} else {
		m.Show()
	}
}

// Update 处理菜单按钮，菜单关闭时不做任何事
func (m *PauseMenuModule) Update(deltaTime float64) {
	if !m.active {
		return
	}
	m.buttonSystem.Update(deltaTime)
	m.refreshButtons()
}

// Draw 绘制遮罩、面板和按钮
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(m.viewport.Width), float32(m.viewport.Height), pauseOverlayColor, false)

	px := m.viewport.Width/2 - pausePanelW/2
	py := m.viewport.Height/2 - pausePanelH/2
	vector.DrawFilledRect(screen, float32(px), float32(py), pausePanelW, pausePanelH, pausePanelColor, false)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(m.viewport.Width/2, py+8)
	text.Draw(screen, pauseTitle, m.font, op)

	m.buttonRenderSystem.Draw(screen)
}

// Labels 当前按钮文字（测试和调试用）
func (m *PauseMenuModule) Labels() []string {
	var labels []string
	for _, id := range m.buttonIDs() {
		if btn, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, id); ok {
			labels = append(labels, btn.Text)
		}
	}
	return labels
}

func (m *PauseMenuModule) buttonIDs() []ecs.EntityID {
	return []ecs.EntityID{m.resumeButton, m.soundButton, m.fullscreenButton, m.debugButton}
}

// refreshButtons 按当前设置刷新按钮文字和可用状态
func (m *PauseMenuModule) refreshButtons() {
	m.setButton(m.resumeButton, "Resume", true)
	if m.settings == nil {
		m.setButton(m.soundButton, "Sound: -", false)
		m.setButton(m.fullscreenButton, "Fullscreen: -", false)
		m.setButton(m.debugButton, "Debug: -", false)
		return
	}
	s := m.settings.GetSettings()
	m.setButton(m.soundButton, "Sound: "+onOff(s.SoundEnabled), true)
	m.setButton(m.fullscreenButton, "Fullscreen: "+onOff(s.Fullscreen), true)
	m.setButton(m.debugButton, "Debug: "+onOff(s.DebugOverlay), true)
}

func (m *PauseMenuModule) setButton(id ecs.EntityID, label string, enabled bool) {
	btn, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, id)
	if !ok {
		return
	}
	btn.Text = label
	btn.Enabled = enabled
}

func (m *PauseMenuModule) toggleSound() {
	if m.settings == nil {
		return
	}
	m.settings.SetSoundEnabled(!m.settings.GetSettings().SoundEnabled)
	if err := m.settings.Save(); err != nil {
		log.Printf("[PauseMenuModule] Warning: %v", err)
	}
}

func (m *PauseMenuModule) toggleFullscreen() {
	if m.settings == nil {
		return
	}
	enabled := m.settings.ToggleFullscreen()
	if m.callbacks.OnFullscreen != nil {
		m.callbacks.OnFullscreen(enabled)
	}
}

func (m *PauseMenuModule) toggleDebug() {
	if m.settings == nil {
		return
	}
	m.settings.ToggleDebugOverlay()
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

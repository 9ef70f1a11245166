package systems

import (
	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 在按钮内按下并在按钮内松开时触发 OnClick
//   - 隐藏或禁用的按钮不响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputProvider
	audio         *game.AudioManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, input utils.InputProvider, audio *game.AudioManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
		audio:         audio,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	px, py := s.input.PointerPosition()
	x, y := float64(px), float64(py)
	justPressed := s.input.IsPointerJustPressed()
	pressed := s.input.IsPointerPressed()
	released := s.input.IsPointerJustReleased()

	// 回调可能切换其他按钮的 Hidden，先收集再触发
	var clicked []func()

	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)

		if button.Hidden {
			button.State = components.UINormal
			button.Pressed = false
			s.syncUIState(id, button.State)
			continue
		}
		if !button.Enabled {
			button.State = components.UIDisabled
			button.Pressed = false
			s.syncUIState(id, button.State)
			continue
		}

		inside := button.Contains(x, y)
		if justPressed && inside {
			button.Pressed = true
		}

		switch {
		case released:
			if button.Pressed && inside && button.OnClick != nil {
				clicked = append(clicked, button.OnClick)
			}
			button.Pressed = false
			button.State = hoverState(inside)
		case pressed && button.Pressed && inside:
			button.State = components.UIClicked
		default:
			if !pressed {
				button.Pressed = false
			}
			button.State = hoverState(inside)
		}
		s.syncUIState(id, button.State)
	}

	for _, fn := range clicked {
		if s.audio != nil {
			s.audio.PlaySound(game.SoundClick)
		}
		fn()
	}
}

func hoverState(inside bool) components.UIState {
	if inside {
		return components.UIHovered
	}
	return components.UINormal
}

func (s *ButtonSystem) syncUIState(id ecs.EntityID, state components.UIState) {
	if ui, ok := ecs.GetComponent[*components.UIComponent](s.entityManager, id); ok {
		ui.State = state
	}
}

package systems

import (
	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/store"
	"github.com/decker502/farmshop/pkg/utils"
)

// setButtonsHidden 显示/隐藏一组按钮
func setButtonsHidden(em *ecs.EntityManager, hidden bool, ids []ecs.EntityID) {
	for _, id := range ids {
		if button, ok := ecs.GetComponent[*components.ButtonComponent](em, id); ok {
			button.Hidden = hidden
		}
	}
}

// worldPointer 指针位置（世界坐标）
func worldPointer(input utils.InputProvider, viewport utils.Viewport) store.Point {
	sx, sy := input.PointerPosition()
	wx, wy := viewport.ScreenToWorld(float64(sx), float64(sy))
	return store.Point{X: wx, Y: wy}
}

// dialogDone 对话是否已经结束
// 收到结束事件，或对话因资源加载失败等原因已不在进行中
func dialogDone(events *game.Events, dialog *DialogSystem, node string) bool {
	return events.DialogExitedFor(node) || !dialog.Active()
}

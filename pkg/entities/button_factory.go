package entities

import (
	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
)

// 按钮资源
const (
	ButtonImageID      = "IMAGE_BUTTON"
	ButtonHoverImageID = "IMAGE_BUTTON_HOVER"
	ButtonFontID       = "FONT_DEFAULT"
)

// NewTextButton 创建文字按钮实体
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源管理器（加载按钮图片和字体）
//   - x, y: 按钮左上角（屏幕坐标）
//   - width, height: 按钮尺寸
//   - text: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
//   - 错误信息
func NewTextButton(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	x, y float64,
	width, height float64,
	text string,
	onClick func(),
) (ecs.EntityID, error) {
	normal, err := rm.LoadImageByID(ButtonImageID)
	if err != nil {
		return ecs.InvalidEntity, err
	}
	hover, err := rm.LoadImageByID(ButtonHoverImageID)
	if err != nil {
		return ecs.InvalidEntity, err
	}
	font, err := rm.LoadFontByID(ButtonFontID)
	if err != nil {
		return ecs.InvalidEntity, err
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		NormalImage: normal,
		HoverImage:  hover,
		Text:        text,
		Font:        font,
		TextColor:   [4]uint8{255, 255, 255, 255},
		State:       components.UINormal,
		Enabled:     true,
		OnClick:     onClick,
	})

	// 添加 UI 组件标记（方便过滤）
	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})
	return entity, nil
}

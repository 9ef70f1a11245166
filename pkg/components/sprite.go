package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以 PositionComponent 为中心绘制
type SpriteComponent struct {
	Image      *ebiten.Image
	ResourceID string // 当前图像对应的资源 ID，换图时用于判断是否需要重新加载
	Layer      int    // 越大越靠上
	Hidden     bool
}

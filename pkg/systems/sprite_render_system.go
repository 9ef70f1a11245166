package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/utils"
)

// SpriteRenderSystem 精灵渲染系统
// 以世界坐标为中心绘制所有可见精灵，Layer 小的先画
type SpriteRenderSystem struct {
	entityManager *ecs.EntityManager
	viewport      utils.Viewport
}

// NewSpriteRenderSystem 创建精灵渲染系统
func NewSpriteRenderSystem(em *ecs.EntityManager, viewport utils.Viewport) *SpriteRenderSystem {
	return &SpriteRenderSystem{
		entityManager: em,
		viewport:      viewport,
	}
}

// Draw 绘制所有精灵
func (s *SpriteRenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)
	// 同层保持 ID 顺序
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, ids[i])
		b, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, ids[j])
		return a.Layer < b.Layer
	})

	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Hidden || sprite.Image == nil {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		bounds := sprite.Image.Bounds()
		w, h := float64(bounds.Dx()), float64(bounds.Dy())
		sx, sy := s.viewport.WorldToScreen(pos.X, pos.Y)
		x, y := utils.CenteredOrigin(sx, sy, w, h)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(sprite.Image, op)
	}
}

package entities

import (
	"fmt"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
)

// PedestalImageID 空展台的图片资源
const PedestalImageID = "IMAGE_PEDESTAL"

// NewPedestalEntity 创建一个空展台
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源管理器（加载展台图片）
//   - index: 展台序号（从左到右）
//   - x, y: 展台中心（世界坐标）
//   - size: 点击区域边长
func NewPedestalEntity(em *ecs.EntityManager, rm *game.ResourceManager, index int, x, y, size float64) (ecs.EntityID, error) {
	img, err := rm.LoadImageByID(PedestalImageID)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("pedestal %d: %w", index, err)
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.SpriteComponent{
		Image:      img,
		ResourceID: PedestalImageID,
		Layer:      1,
	})
	ecs.AddComponent(em, entity, &components.PedestalComponent{
		Index: index,
		Size:  size,
	})
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:     size,
		Height:    size,
		IsEnabled: true,
	})
	return entity, nil
}

// SpawnPedestals 按配置水平排列展台，居中于 x=0
// 返回的 ID 顺序即展台顺序
func SpawnPedestals(em *ecs.EntityManager, rm *game.ResourceManager, cfg config.StoreConfig) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, cfg.PedestalCount)
	left := -float64(cfg.PedestalCount-1) * cfg.PedestalSpacing / 2
	for i := 0; i < cfg.PedestalCount; i++ {
		id, err := NewPedestalEntity(em, rm, i, left+float64(i)*cfg.PedestalSpacing, cfg.PedestalY, cfg.PedestalSize)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

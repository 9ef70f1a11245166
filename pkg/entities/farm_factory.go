package entities

import (
	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/farm"
)

// FarmStepTimer 农场节奏计时器名称
const FarmStepTimer = "farm_step"

// NewFarmGridEntity 创建农场网格实体
// 网格中心位于 (0, OffsetY)，全部为 Dirt；计时器按 StepInterval 重复触发
func NewFarmGridEntity(em *ecs.EntityManager, cfg config.FarmConfig) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 0, Y: cfg.OffsetY})
	ecs.AddComponent(em, entity, &components.FarmGridComponent{
		Grid:        farm.NewGrid(),
		TileSize:    cfg.TileSize,
		LastChanged: -1,
	})
	ecs.AddComponent(em, entity, &components.TimerComponent{
		Name:       FarmStepTimer,
		TargetTime: cfg.StepInterval,
		Repeat:     true,
	})
	return entity
}

package entities

import (
	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
)

// NewPriceSetterEntity 创建定价面板实体（Setter 为 nil，不显示）
func NewPriceSetterEntity(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PriceSetterComponent{})
	return entity
}

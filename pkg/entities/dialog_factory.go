package entities

import (
	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
)

// NewDialogBoxEntity 创建对话框实体（初始隐藏、未绑定脚本）
// 场景中只应存在一个
func NewDialogBoxEntity(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.DialogBoxComponent{})
	return entity
}

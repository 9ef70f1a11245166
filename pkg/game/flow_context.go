package game

import (
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/farm"
)

// FlowContext 跨阶段共享的游戏数据
// 由场景持有并显式传给各系统
type FlowContext struct {
	// ActiveItems 农夫买下、等待在农场中使用的物品
	ActiveItems *farm.ActiveItemQueue
	// SelectedPedestal 正在编辑的展台，未选择时为 ecs.InvalidEntity
	SelectedPedestal ecs.EntityID
	// Season 已完成的农场季数
	Season int
	// Earnings 累计从农夫处获得的收入
	Earnings int
	// LastSummary 最近一季结束时的网格统计
	LastSummary farm.Summary
}

// NewFlowContext 创建空的流程数据
func NewFlowContext() *FlowContext {
	return &FlowContext{
		ActiveItems:      farm.NewActiveItemQueue(),
		SelectedPedestal: ecs.InvalidEntity,
	}
}

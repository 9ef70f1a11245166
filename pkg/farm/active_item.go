package farm

import "github.com/decker502/farmshop/pkg/types"

// ActiveItem 购买后排队等待使用的工具/种子
// 创建于商店确认购买时，Uses 为剩余使用次数
type ActiveItem struct {
	Type types.ItemType
	Uses int
}

// ActiveItemQueue 先进先出的工具队列
// 农田模拟严格按顺序消费
type ActiveItemQueue struct {
	items []ActiveItem
}

// NewActiveItemQueue 以给定顺序创建队列
func NewActiveItemQueue(items ...ActiveItem) *ActiveItemQueue {
	q := &ActiveItemQueue{}
	for _, it := range items {
		q.Push(it)
	}
	return q
}

// Push 追加到队尾，使用次数不为正的物品被忽略
func (q *ActiveItemQueue) Push(item ActiveItem) {
	if item.Uses <= 0 {
		return
	}
	q.items = append(q.items, item)
}

// Front 返回队首物品的指针（可原地扣减次数）
func (q *ActiveItemQueue) Front() (*ActiveItem, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return &q.items[0], true
}

// Pop 移除队首
func (q *ActiveItemQueue) Pop() {
	if len(q.items) == 0 {
		return
	}
	q.items = q.items[1:]
}

// Len 队列长度
func (q *ActiveItemQueue) Len() int {
	return len(q.items)
}

// Empty 队列是否为空
func (q *ActiveItemQueue) Empty() bool {
	return len(q.items) == 0
}

// Items 返回队列内容的副本（用于 HUD 显示）
func (q *ActiveItemQueue) Items() []ActiveItem {
	out := make([]ActiveItem, len(q.items))
	copy(out, q.items)
	return out
}

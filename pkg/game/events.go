package game

// EventBus 帧间事件队列
//
// 第 N 帧发布的事件在第 N+1 帧对所有读者可见，之后被丢弃。
// Advance 必须在每帧开头、系统运行之前调用一次。
type EventBus[T any] struct {
	current []T
	pending []T
}

// NewEventBus 创建事件队列
func NewEventBus[T any]() *EventBus[T] {
	return &EventBus[T]{}
}

// Publish 发布事件（下一帧可见）
func (b *EventBus[T]) Publish(e T) {
	b.pending = append(b.pending, e)
}

// Events 返回本帧可见的事件，调用方不得修改
func (b *EventBus[T]) Events() []T {
	return b.current
}

// Advance 切换到下一帧
func (b *EventBus[T]) Advance() {
	b.current = b.pending
	b.pending = nil
}

// DialogExited 对话结束通知
// Node 为 Show 时指定的起始节点（不是结束时所在的节点）
type DialogExited struct {
	Node string
}

// ItemApplied 农场中使用了一次物品
type ItemApplied struct {
	Tile int
}

// Events 游戏内所有事件队列
type Events struct {
	DialogExited *EventBus[DialogExited]
	ItemApplied  *EventBus[ItemApplied]
}

// NewEvents 创建事件队列集合
func NewEvents() *Events {
	return &Events{
		DialogExited: NewEventBus[DialogExited](),
		ItemApplied:  NewEventBus[ItemApplied](),
	}
}

// Advance 推进所有事件队列
func (e *Events) Advance() {
	e.DialogExited.Advance()
	e.ItemApplied.Advance()
}

// DialogExitedFor 本帧是否有指定节点的对话结束
func (e *Events) DialogExitedFor(node string) bool {
	for _, ev := range e.DialogExited.Events() {
		if ev.Node == node {
			return true
		}
	}
	return false
}

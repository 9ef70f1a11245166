package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusDeliversNextTickOnly(t *testing.T) {
	bus := NewEventBus[DialogExited]()

	// tick N
	bus.Advance()
	bus.Publish(DialogExited{Node: "Welcome"})
	assert.Empty(t, bus.Events(), "not visible in the publishing tick")

	// tick N+1：所有读者都能看到
	bus.Advance()
	assert.Equal(t, []DialogExited{{Node: "Welcome"}}, bus.Events())
	assert.Len(t, bus.Events(), 1, "reading does not consume")

	// tick N+2：已丢弃
	bus.Advance()
	assert.Empty(t, bus.Events())
}

func TestEventBusPublishDuringDeliveryTick(t *testing.T) {
	bus := NewEventBus[int]()
	bus.Publish(1)
	bus.Advance()

	bus.Publish(2)
	assert.Equal(t, []int{1}, bus.Events())

	bus.Advance()
	assert.Equal(t, []int{2}, bus.Events())
}

func TestEventsDialogExitedFor(t *testing.T) {
	ev := NewEvents()
	ev.DialogExited.Publish(DialogExited{Node: "FarmerBuy"})
	ev.ItemApplied.Publish(ItemApplied{Tile: 3})
	ev.Advance()

	assert.True(t, ev.DialogExitedFor("FarmerBuy"))
	assert.False(t, ev.DialogExitedFor("Welcome"))
	assert.Len(t, ev.ItemApplied.Events(), 1)

	ev.Advance()
	assert.False(t, ev.DialogExitedFor("FarmerBuy"))
}

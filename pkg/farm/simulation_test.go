package farm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/farmshop/pkg/types"
)

func TestNewGridIsAllDirt(t *testing.T) {
	g := NewGrid()
	assert.Len(t, g, TileCount)
	assert.Equal(t, TileCount, g.Count(types.TileDirt))
}

func TestStepCheckSeeded(t *testing.T) {
	t.Run("converts exactly one seeded tile per step", func(t *testing.T) {
		g := NewGrid()
		g[3] = types.TileSeeded
		g[7] = types.TileSeeded

		assert.Equal(t, 3, StepCheckSeeded(&g))
		assert.Equal(t, types.TileSproutedDry, g[3])
		assert.Equal(t, types.TileSeeded, g[7], "second seed must wait for the next step")

		assert.Equal(t, 7, StepCheckSeeded(&g))
		assert.Equal(t, -1, StepCheckSeeded(&g), "fresh dry sprouts are not touched")
		assert.Equal(t, 2, g.Count(types.TileSproutedDry))
	})

	t.Run("watered sprouts grow before seeds sprout", func(t *testing.T) {
		g := NewGrid()
		g[0] = types.TileSeeded
		g[1] = types.TileSproutedWet

		assert.Equal(t, 1, StepCheckSeeded(&g))
		assert.Equal(t, types.TileFullGrown, g[1])
		assert.Equal(t, types.TileSeeded, g[0])
	})
}

func TestStepCheckFailed(t *testing.T) {
	g := NewGrid()
	g[10] = types.TileSproutedDry
	g[11] = types.TileSproutedWet

	assert.Equal(t, 10, StepCheckFailed(&g))
	assert.Equal(t, types.TileFailed, g[10])
	assert.Equal(t, types.TileSproutedWet, g[11], "watered sprouts survive")
	assert.Equal(t, -1, StepCheckFailed(&g))
}

func TestApplyNextToolDispatch(t *testing.T) {
	cases := []struct {
		name string
		item types.ItemType
		from types.TileState
		to   types.TileState
	}{
		{"hoe tills dirt", types.ItemHoe, types.TileDirt, types.TileTilled},
		{"watering can waters dry sprouts", types.ItemWateringCan, types.TileSproutedDry, types.TileSproutedWet},
		{"scythe clears full grown", types.ItemScythe, types.TileFullGrown, types.TileDirt},
		{"scythe clears failed", types.ItemScythe, types.TileFailed, types.TileDirt},
		{"parsnip seeds tilled soil", types.ItemParsnipSeed, types.TileTilled, types.TileSeeded},
		{"blueberry seeds tilled soil", types.ItemBlueberrySeed, types.TileTilled, types.TileSeeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid()
			// 用非目标状态填满，只留一个目标格子
			for i := range g {
				g[i] = types.TileSproutedWet
			}
			g[12] = tc.from
			q := NewActiveItemQueue(ActiveItem{Type: tc.item, Uses: 2})

			res := ApplyNext(&g, q)
			require.Equal(t, ApplyUsed, res.Outcome)
			assert.Equal(t, 12, res.Tile)
			assert.Equal(t, tc.to, g[12])
			front, ok := q.Front()
			require.True(t, ok)
			assert.Equal(t, 1, front.Uses)
		})
	}
}

func TestApplyNextScytheConsumesExactlyOneUse(t *testing.T) {
	g := NewGrid()
	g[2] = types.TileFullGrown
	g[5] = types.TileFailed
	g[9] = types.TileFullGrown
	q := NewActiveItemQueue(ActiveItem{Type: types.ItemScythe, Uses: 3})

	before := g.Count(types.TileFullGrown) + g.Count(types.TileFailed)
	res := ApplyNext(&g, q)
	after := g.Count(types.TileFullGrown) + g.Count(types.TileFailed)

	assert.Equal(t, before-1, after)
	assert.Equal(t, types.TileDirt, g[2], "first eligible tile in index order")
	assert.Equal(t, 2, res.Item.Uses)
}

func TestApplyNextNoTargetDropsWithoutConsuming(t *testing.T) {
	g := NewGrid()
	q := NewActiveItemQueue(
		ActiveItem{Type: types.ItemWateringCan, Uses: 4},
		ActiveItem{Type: types.ItemHoe, Uses: 1},
	)

	res := ApplyNext(&g, q)
	assert.Equal(t, ApplyNoTarget, res.Outcome)
	assert.Equal(t, 4, res.Item.Uses)
	assert.Equal(t, -1, res.Tile)
	assert.Equal(t, NewGrid(), g)

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, types.ItemHoe, front.Type)
}

func TestApplyNextExhaustsItem(t *testing.T) {
	g := NewGrid()
	q := NewActiveItemQueue(ActiveItem{Type: types.ItemHoe, Uses: 2})

	assert.Equal(t, ApplyUsed, ApplyNext(&g, q).Outcome)
	assert.Equal(t, ApplyExhausted, ApplyNext(&g, q).Outcome)
	assert.True(t, q.Empty())
	assert.Equal(t, ApplyQueueEmpty, ApplyNext(&g, q).Outcome)
	assert.Equal(t, []types.TileState{types.TileTilled, types.TileTilled}, []types.TileState{g[0], g[1]})
}

func TestQueueIgnoresUselessItems(t *testing.T) {
	q := NewActiveItemQueue(ActiveItem{Type: types.ItemHoe, Uses: 0})
	assert.True(t, q.Empty())
	q.Pop() // 空队列出队不应 panic
	assert.Equal(t, 0, q.Len())
}

func TestQueueItemsIsCopy(t *testing.T) {
	q := NewActiveItemQueue(ActiveItem{Type: types.ItemHoe, Uses: 2})
	items := q.Items()
	items[0].Uses = 99
	front, _ := q.Front()
	assert.Equal(t, 2, front.Uses)
}

// TestGridInvariantUnderRandomSteps 任意步骤序列下网格始终是 25 个合法状态
func TestGridInvariantUnderRandomSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGrid()
	items := types.AllItemTypes()

	for round := 0; round < 2000; round++ {
		switch rng.Intn(3) {
		case 0:
			StepCheckSeeded(&g)
		case 1:
			q := NewActiveItemQueue(ActiveItem{Type: items[rng.Intn(len(items))], Uses: 1 + rng.Intn(5)})
			for !q.Empty() {
				ApplyNext(&g, q)
			}
		case 2:
			StepCheckFailed(&g)
		}

		require.Len(t, g, TileCount)
		for i, s := range g {
			require.Truef(t, s.IsValid(), "round %d tile %d invalid state %d", round, i, int(s))
		}
	}
}

func TestReadyForSummary(t *testing.T) {
	g := NewGrid()
	q := NewActiveItemQueue()
	assert.True(t, ReadyForSummary(&g, q))

	g[0] = types.TileSproutedDry
	assert.False(t, ReadyForSummary(&g, q), "dry sprouts block the summary")

	g[0] = types.TileFailed
	q.Push(ActiveItem{Type: types.ItemHoe, Uses: 1})
	assert.False(t, ReadyForSummary(&g, q), "pending items block the summary")
}

func TestTileResourceKeyIsTotal(t *testing.T) {
	seen := map[string]types.TileState{}
	for _, s := range types.AllTileStates() {
		key := TileResourceKey(s)
		assert.NotEmpty(t, key, s.String())
		if prev, dup := seen[key]; dup {
			t.Errorf("%v and %v share resource %s", prev, s, key)
		}
		seen[key] = s
	}
	assert.Equal(t, ResTileDirt, TileResourceKey(types.TileState(42)))
}

func TestSummarize(t *testing.T) {
	g := NewGrid()
	g[0] = types.TileFullGrown
	g[1] = types.TileFailed
	s := Summarize(g)
	assert.Equal(t, 23, s.Counts[types.TileDirt])
	assert.Equal(t, 1, s.Counts[types.TileFullGrown])
	assert.Equal(t, 1, s.Counts[types.TileFailed])
	assert.Equal(t, 0, s.Counts[types.TileSeeded])
	r, c := RowCol(13)
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

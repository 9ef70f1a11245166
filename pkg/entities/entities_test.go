package entities

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/embedded"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/types"
)

// newTestResourceManager 使用仓库中的真实资源配置
func newTestResourceManager(t *testing.T) *game.ResourceManager {
	t.Helper()
	root := os.DirFS("../..")
	embedded.Init(root, root)
	t.Cleanup(embedded.Reset)

	rm := game.NewResourceManager(nil)
	require.NoError(t, rm.LoadResourceConfig("assets/config/resources.yaml"))
	return rm
}

func TestSpawnPedestals(t *testing.T) {
	rm := newTestResourceManager(t)
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Store

	ids, err := SpawnPedestals(em, rm, cfg)
	require.NoError(t, err)
	require.Len(t, ids, cfg.PedestalCount)

	var xs []float64
	for i, id := range ids {
		p, ok := ecs.GetComponent[*components.PedestalComponent](em, id)
		require.True(t, ok)
		assert.Equal(t, i, p.Index)
		assert.True(t, p.Empty())

		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		require.True(t, ok)
		assert.Equal(t, cfg.PedestalY, pos.Y)
		xs = append(xs, pos.X)

		sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
		require.True(t, ok)
		assert.Equal(t, PedestalImageID, sprite.ResourceID)
		assert.NotNil(t, sprite.Image)
	}
	// 3 个展台以 x=0 居中
	assert.Equal(t, []float64{-48, 0, 48}, xs)
}

func TestNewTextButton(t *testing.T) {
	rm := newTestResourceManager(t)
	em := ecs.NewEntityManager()

	clicked := false
	id, err := NewTextButton(em, rm, 10, 20, 64, 20, "Finish", func() { clicked = true })
	require.NoError(t, err)

	btn, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, "Finish", btn.Text)
	assert.True(t, btn.Enabled)
	assert.NotNil(t, btn.Font)
	assert.True(t, ecs.HasComponent[*components.UIComponent](em, id))

	btn.OnClick()
	assert.True(t, clicked)
}

func TestNewInventoryPanel(t *testing.T) {
	rm := newTestResourceManager(t)
	em := ecs.NewEntityManager()
	catalog := &config.Catalog{Items: []config.CatalogItem{
		{ID: "hoe", Name: "Hoe", Type: types.ItemHoe, Icon: "IMAGE_ITEM_HOE", StorePrice: 20},
		{ID: "scythe", Name: "Scythe", Type: types.ItemScythe, Icon: "IMAGE_ITEM_SCYTHE", StorePrice: 25},
	}}

	panel, slots, err := NewInventoryPanel(em, rm, catalog)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	p, ok := ecs.GetComponent[*components.InventoryPanelComponent](em, panel)
	require.True(t, ok)
	assert.False(t, p.Visible)
	assert.Equal(t, 2, p.Cursor.Len())

	for i, id := range slots {
		slot, ok := ecs.GetComponent[*components.InventorySlotComponent](em, id)
		require.True(t, ok)
		assert.Equal(t, i, slot.Index)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		assert.True(t, sprite.Hidden)
	}
}

func TestNewInventoryPanelUnknownIcon(t *testing.T) {
	rm := newTestResourceManager(t)
	em := ecs.NewEntityManager()
	catalog := &config.Catalog{Items: []config.CatalogItem{
		{ID: "mystery", Name: "Mystery", Type: types.ItemHoe, Icon: "IMAGE_NOPE", StorePrice: 1},
	}}

	_, _, err := NewInventoryPanel(em, rm, catalog)
	assert.Error(t, err)
}

func TestNewFarmGridEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Farm

	id := NewFarmGridEntity(em, cfg)
	grid, ok := ecs.GetComponent[*components.FarmGridComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 25, grid.Grid.Count(types.TileDirt))
	assert.Equal(t, -1, grid.LastChanged)

	timer, ok := ecs.GetComponent[*components.TimerComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, FarmStepTimer, timer.Name)
	assert.Equal(t, cfg.StepInterval, timer.TargetTime)
	assert.True(t, timer.Repeat)
}

func TestSingletonFactories(t *testing.T) {
	em := ecs.NewEntityManager()
	dialog := NewDialogBoxEntity(em)
	setter := NewPriceSetterEntity(em)

	d, ok := ecs.GetComponent[*components.DialogBoxComponent](em, dialog)
	require.True(t, ok)
	assert.False(t, d.Active())

	p, ok := ecs.GetComponent[*components.PriceSetterComponent](em, setter)
	require.True(t, ok)
	assert.False(t, p.Visible())
}

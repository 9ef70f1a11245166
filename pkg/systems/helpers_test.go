package systems

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/embedded"
	"github.com/decker502/farmshop/pkg/entities"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/utils"
)

const testScript = `
nodes:
  - title: Welcome
    lines:
      - who: Pierre
        what: Welcome!
      - choices:
          - what: Tell me more
            jump: Tutorial
          - what: Skip
      - who: Pierre
        what: Good luck.
  - title: Tutorial
    lines:
      - what: Click a pedestal.
      - stop: true
  - title: FarmerBuy
    lines:
      - who: Farmer
        what: I'll take it all.
  - title: FarmingSummary
    lines:
      - who: Farmer
        what: Season done.
  - title: Failed
    lines:
      - what: The crops are gone.
  - title: Success
    lines:
      - what: Well done.
`

const testDT = 0.5

type updater interface {
	Update(deltaTime float64)
}

// testWorld 与 GameScene 相同的依赖，但不创建窗口
type testWorld struct {
	em       *ecs.EntityManager
	rm       *game.ResourceManager
	flow     *game.GameFlow
	ctx      *game.FlowContext
	events   *game.Events
	assets   *game.AssetServer
	input    *utils.FakeInput
	viewport utils.Viewport
	cfg      *config.GameConfig
	catalog  *config.Catalog
	handle   game.DialogueHandle
	dialog   *DialogSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	root := os.DirFS("../..")
	embedded.Init(root, root)
	t.Cleanup(embedded.Reset)

	rm := game.NewResourceManager(nil)
	require.NoError(t, rm.LoadResourceConfig("assets/config/resources.yaml"))
	catalog, err := config.LoadCatalog(config.DefaultCatalogPath)
	require.NoError(t, err)

	assets := game.NewAssetServerWithReader(func(string) ([]byte, error) {
		return []byte(testScript), nil
	})
	handle := assets.LoadDialogue("test.yaml")
	assets.Wait()

	cfg := config.DefaultGameConfig()
	w := &testWorld{
		em:       ecs.NewEntityManager(),
		rm:       rm,
		flow:     game.NewGameFlow(),
		ctx:      game.NewFlowContext(),
		events:   game.NewEvents(),
		assets:   assets,
		input:    utils.NewFakeInput(),
		viewport: utils.NewViewport(cfg.Logical.Width, cfg.Logical.Height),
		cfg:      cfg,
		catalog:  catalog,
		handle:   handle,
	}
	entities.NewDialogBoxEntity(w.em)
	w.dialog = NewDialogSystem(w.em, w.assets, w.events, w.input, nil)
	return w
}

// tick 按场景的帧顺序执行一帧
func (w *testWorld) tick(systems ...updater) {
	w.events.Advance()
	w.dialog.HandleAssetEvents(w.assets.PollEvents())
	w.flow.ApplyTransitions()
	w.dialog.Update(testDT)
	for _, s := range systems {
		s.Update(testDT)
	}
	w.input.EndFrame()
}

// enterStore 进入 StoreSetup 并应用转换
func (w *testWorld) enterStore(t *testing.T) {
	t.Helper()
	require.NoError(t, w.flow.SetState(game.StateStoreSetup))
	w.flow.ApplyTransitions()
}

// screenOf 世界坐标 → 屏幕整数坐标
func (w *testWorld) screenOf(x, y float64) (int, int) {
	sx, sy := w.viewport.WorldToScreen(x, y)
	return int(sx), int(sy)
}

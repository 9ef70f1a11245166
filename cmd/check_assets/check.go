package main

import (
	"fmt"
	"io"

	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/dialogue"
	"github.com/decker502/farmshop/pkg/embedded"
	"github.com/decker502/farmshop/pkg/entities"
	"github.com/decker502/farmshop/pkg/farm"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/scenes"
	"github.com/decker502/farmshop/pkg/types"
)

const resourceConfigPath = "assets/config/resources.yaml"

// 游戏代码直接引用的资源 ID
var requiredResources = []string{
	entities.ButtonImageID,
	entities.ButtonHoverImageID,
	entities.ButtonFontID,
	entities.PedestalImageID,
	scenes.TitleFontID,
	scenes.StartLogoImageID,
	game.SoundClick,
	game.SoundPurchase,
	game.SoundFarmStep,
}

var resourceGroups = []string{"init", "store", "farm"}

// checker 收集检查结果
type checker struct {
	out      io.Writer
	failures int
}

func (c *checker) ok(format string, args ...any) {
	fmt.Fprintf(c.out, "✅ "+format+"\n", args...)
}

func (c *checker) fail(format string, args ...any) {
	c.failures++
	fmt.Fprintf(c.out, "❌ "+format+"\n", args...)
}

// checkAssets 校验配置、商品目录、资源清单和对话脚本之间的引用
// 调用前必须先 embedded.Init，返回失败项数量
func checkAssets(out io.Writer) int {
	c := &checker{out: out}

	cfg, err := config.LoadGameConfig(config.DefaultGameConfigPath)
	if err != nil {
		c.fail("game config: %v", err)
		return c.failures
	}
	c.ok("game config %s", config.DefaultGameConfigPath)

	catalog, err := config.LoadCatalog(config.DefaultCatalogPath)
	if err != nil {
		c.fail("catalog: %v", err)
		return c.failures
	}
	c.ok("catalog: %d items", catalog.Len())

	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig(resourceConfigPath); err != nil {
		c.fail("resource config: %v", err)
		return c.failures
	}
	c.ok("resource config %s", resourceConfigPath)

	for _, group := range resourceGroups {
		if err := rm.LoadResourceGroup(group); err != nil {
			c.fail("resource group %s: %v", group, err)
		}
	}

	missing := 0
	require := func(owner, id string) {
		if !rm.HasResource(id) {
			missing++
			c.fail("%s references unknown resource %s", owner, id)
		}
	}
	for _, id := range requiredResources {
		require("game", id)
	}
	for _, item := range catalog.Items {
		require("catalog item "+item.ID, item.Icon)
	}
	for _, state := range types.AllTileStates() {
		require("tile state "+state.String(), farm.TileResourceKey(state))
	}
	if missing == 0 {
		c.ok("all referenced resources exist")
	}

	c.checkDialogue(cfg.Dialogue)
	return c.failures
}

// checkDialogue 脚本能解析并包含配置中的所有节点
func (c *checker) checkDialogue(cfg config.DialogueConfig) {
	data, err := embedded.ReadFile(cfg.Path)
	if err != nil {
		c.fail("dialogue %s: %v", cfg.Path, err)
		return
	}
	script, err := dialogue.Parse(data)
	if err != nil {
		c.fail("dialogue %s: %v", cfg.Path, err)
		return
	}
	c.ok("dialogue %s", cfg.Path)

	nodes := []struct{ key, title string }{
		{"welcomeNode", cfg.WelcomeNode},
		{"farmerBuyNode", cfg.FarmerBuyNode},
		{"summaryNode", cfg.SummaryNode},
		{"failedNode", cfg.FailedNode},
		{"successNode", cfg.SuccessNode},
	}
	for _, n := range nodes {
		if n.title == "" {
			continue
		}
		if script.HasNode(n.title) {
			c.ok("%s: %s", n.key, n.title)
		} else {
			c.fail("%s: node %q not found in %s", n.key, n.title, cfg.Path)
		}
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/farmshop/pkg/embedded"
)

var repoFiles = []string{
	"assets/config/resources.yaml",
	"data/config/game.yaml",
	"data/config/catalog.yaml",
	"data/dialogs/store.yaml",
}

// repoFS 把仓库中的配置复制到内存文件系统，edit 可以改写其中的文件
func repoFS(t *testing.T, edit func(fsys fstest.MapFS)) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range repoFiles {
		data, err := os.ReadFile(filepath.Join("..", "..", name))
		require.NoError(t, err)
		fsys[name] = &fstest.MapFile{Data: data}
	}
	if edit != nil {
		edit(fsys)
	}
	return fsys
}

func runCheck(t *testing.T, fsys fstest.MapFS) (int, string) {
	t.Helper()
	embedded.Init(fsys, fsys)
	t.Cleanup(embedded.Reset)
	var out bytes.Buffer
	return checkAssets(&out), out.String()
}

func TestCheckAssetsRepo(t *testing.T) {
	failures, out := runCheck(t, repoFS(t, nil))
	assert.Zero(t, failures, out)
	assert.Contains(t, out, "✅ all referenced resources exist")
	assert.Contains(t, out, "welcomeNode: Welcome")
}

func TestCheckAssetsUnknownIcon(t *testing.T) {
	fsys := repoFS(t, func(fsys fstest.MapFS) {
		f := fsys["data/config/catalog.yaml"]
		f.Data = []byte(strings.Replace(string(f.Data), "IMAGE_ITEM_HOE", "IMAGE_ITEM_SPADE", 1))
	})

	failures, out := runCheck(t, fsys)
	assert.Equal(t, 1, failures, out)
	assert.Contains(t, out, "❌ catalog item hoe references unknown resource IMAGE_ITEM_SPADE")
}

func TestCheckAssetsMissingDialogueNode(t *testing.T) {
	fsys := repoFS(t, func(fsys fstest.MapFS) {
		f := fsys["data/config/game.yaml"]
		f.Data = []byte(strings.Replace(string(f.Data), "FarmerBuy", "FarmerHaggle", 1))
	})

	failures, out := runCheck(t, fsys)
	assert.Equal(t, 1, failures, out)
	assert.Contains(t, out, `node "FarmerHaggle" not found`)
}

func TestCheckAssetsBrokenCatalog(t *testing.T) {
	fsys := repoFS(t, func(fsys fstest.MapFS) {
		fsys["data/config/catalog.yaml"] = &fstest.MapFile{Data: []byte("items: [")}
	})

	failures, out := runCheck(t, fsys)
	assert.Equal(t, 1, failures)
	assert.Contains(t, out, "❌ catalog:")
}

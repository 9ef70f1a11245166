package farm

import "github.com/decker502/farmshop/pkg/types"

// 格子状态对应的资源 ID（定义于 assets/config/resources.yaml）
const (
	ResTileDirt        = "IMAGE_TILE_DIRT"
	ResTileTilled      = "IMAGE_TILE_TILLED"
	ResTileSeeded      = "IMAGE_TILE_SEEDED"
	ResTileSproutedDry = "IMAGE_TILE_SPROUTED_DRY"
	ResTileSproutedWet = "IMAGE_TILE_SPROUTED_WET"
	ResTileFullGrown   = "IMAGE_TILE_FULL_GROWN"
	ResTileFailed      = "IMAGE_TILE_FAILED"
)

// TileResourceKey 格子状态 → 显示资源 ID
//
// 必须是全函数：新增状态时这里漏掉分支会让格子无法渲染，
// 因此未知值回落到泥土贴图而不是空字符串。
func TileResourceKey(state types.TileState) string {
	switch state {
	case types.TileDirt:
		return ResTileDirt
	case types.TileTilled:
		return ResTileTilled
	case types.TileSeeded:
		return ResTileSeeded
	case types.TileSproutedDry:
		return ResTileSproutedDry
	case types.TileSproutedWet:
		return ResTileSproutedWet
	case types.TileFullGrown:
		return ResTileFullGrown
	case types.TileFailed:
		return ResTileFailed
	default:
		return ResTileDirt
	}
}

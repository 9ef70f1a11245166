package types

// TileState 农田格子的生长状态
//
// 状态流转（每个阶段只允许特定的转换）：
//
//	Dirt → Tilled → Seeded → SproutedDry → SproutedWet → FullGrown → Dirt
//	                                   ↘ Failed → Dirt
type TileState int

const (
	// TileDirt 泥土（初始状态）
	TileDirt TileState = iota
	// TileTilled 已翻土
	TileTilled
	// TileSeeded 已播种
	TileSeeded
	// TileSproutedDry 发芽但未浇水
	TileSproutedDry
	// TileSproutedWet 发芽且已浇水
	TileSproutedWet
	// TileFullGrown 成熟
	TileFullGrown
	// TileFailed 枯死
	TileFailed
)

// AllTileStates 返回全部七种格子状态
func AllTileStates() []TileState {
	return []TileState{
		TileDirt, TileTilled, TileSeeded, TileSproutedDry,
		TileSproutedWet, TileFullGrown, TileFailed,
	}
}

// IsValid 检查值是否为已定义的状态
func (s TileState) IsValid() bool {
	return s >= TileDirt && s <= TileFailed
}

// String 返回格子状态的字符串表示
func (s TileState) String() string {
	switch s {
	case TileDirt:
		return "Dirt"
	case TileTilled:
		return "Tilled"
	case TileSeeded:
		return "Seeded"
	case TileSproutedDry:
		return "SproutedDry"
	case TileSproutedWet:
		return "SproutedWet"
	case TileFullGrown:
		return "FullGrown"
	case TileFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (start menu, shop/farm gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景被切换为当前场景时调用 OnEnter
type Enterable interface {
	OnEnter()
}

// Leavable 是一个可选接口，场景被切换走时调用 OnLeave
// 场景在这里释放实体、停止音效等
type Leavable interface {
	OnLeave()
}

package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/utils"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// TitleFontID 标题字体资源
const TitleFontID = "FONT_TITLE"

// Env 所有场景共享的依赖
// 由 app 创建一次；流程状态和跨阶段数据在场景之间共用
type Env struct {
	Resources *game.ResourceManager
	Scenes    *game.SceneManager
	Settings  *game.SettingsManager // 可为 nil
	Audio     *game.AudioManager    // 可为 nil
	Assets    *game.AssetServer
	Flow      *game.GameFlow
	Context   *game.FlowContext
	Events    *game.Events
	Input     utils.InputProvider
	Config    *config.GameConfig
	Catalog   *config.Catalog
	Dialogue  game.DialogueHandle // 对话脚本句柄
}

// Viewport 逻辑屏幕
func (e *Env) Viewport() utils.Viewport {
	return utils.NewViewport(e.Config.Logical.Width, e.Config.Logical.Height)
}

// RegisterScenes 设置场景工厂，并在离开 Start 状态时切换到游戏场景
//
// 游戏场景在 OnExit(Start) 中创建，因此它注册的 OnEnter/OnEnterStore
// 钩子会在同一次 ApplyTransitions 中立即生效。
func RegisterScenes(env *Env) {
	env.Scenes.SetSceneFactory(func(id game.SceneID) game.Scene {
		switch id {
		case game.SceneStartMenu:
			return NewStartMenuScene(env)
		case game.SceneGame:
			scene, err := NewGameScene(env)
			if err != nil {
				log.Printf("[Scenes] failed to create game scene: %v", err)
				return nil
			}
			return scene
		}
		return nil
	})
	env.Flow.OnExit(game.StateStart, func() {
		env.Scenes.LoadScene(game.SceneGame)
	})
}

func loadFont(rm *game.ResourceManager, id string, fallbackSize float64) *text.GoTextFace {
	face, err := rm.LoadFontByID(id)
	if err != nil {
		log.Printf("[Scenes] font %s unavailable, using default: %v", id, err)
		return rm.DefaultFont(fallbackSize)
	}
	return face
}

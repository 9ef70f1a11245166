package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID string

const (
	SceneStartMenu SceneID = "start_menu"
	SceneGame      SceneID = "game"
)

// SceneFactory 场景工厂函数类型
// 用于按 ID 创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(id SceneID) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadScene to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The old scene's OnLeave and the new scene's OnEnter run if implemented.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if l, ok := sm.currentScene.(Leavable); ok {
		l.OnLeave()
	}
	sm.currentScene = scene
	sm.currentID = ""
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回通过 LoadScene 加载的场景 ID，直接 SwitchTo 的场景为空
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// LoadScene 通过工厂创建并切换到指定场景
// 已经是该场景时不做任何事
func (sm *SceneManager) LoadScene(id SceneID) {
	if sm.currentID == id && sm.currentScene != nil {
		return
	}

	log.Printf("[SceneManager] 加载场景: %s", id)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(id)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", id)
		return
	}
	sm.SwitchTo(newScene)
	sm.currentID = id
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

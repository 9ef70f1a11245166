package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/entities"
	"github.com/decker502/farmshop/pkg/modules"
	"github.com/decker502/farmshop/pkg/systems"
	"github.com/decker502/farmshop/pkg/utils"
)

// 游戏场景一次性加载的资源组
var gameResourceGroups = []string{"init", "store", "farm"}

var gameBackground = color.RGBA{R: 34, G: 49, B: 34, A: 255}

// GameScene 商店与农场的游戏场景
//
// 持有 ECS 世界和所有系统。暂停菜单打开时只更新菜单。每帧顺序：
//  1. 推进事件队列，处理资源加载事件
//  2. 应用挂起的流程切换（进入钩子在这里运行）
//  3. 对话与按钮输入
//  4. 各阶段系统（每个系统只在自己的子状态中工作）
//  5. 清理标记删除的实体
type GameScene struct {
	env           *Env
	entityManager *ecs.EntityManager
	viewport      utils.Viewport

	dialogSystem         *systems.DialogSystem
	buttonSystem         *systems.ButtonSystem
	storeFlowSystem      *systems.StoreFlowSystem
	pedestalSelectSystem *systems.PedestalSelectSystem
	inventorySystem      *systems.InventorySystem
	priceSelectSystem    *systems.PriceSelectSystem
	farmerBuySystem      *systems.FarmerBuySystem
	farmSimulationSystem *systems.FarmSimulationSystem

	farmRenderSystem   *systems.FarmRenderSystem
	spriteRenderSystem *systems.SpriteRenderSystem
	storeRenderSystem  *systems.StoreRenderSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	dialogRenderSystem *systems.DialogRenderSystem
	hudRenderSystem    *systems.HUDRenderSystem
	endingSystem       *systems.EndingSystem

	pauseMenu *modules.PauseMenuModule

	finishButton ecs.EntityID
	priceButtons []ecs.EntityID
}

// NewGameScene 创建游戏场景
// 必须在进入 StoreSetup 之前创建，各系统在这里注册流程钩子
func NewGameScene(env *Env) (*GameScene, error) {
	rm := env.Resources
	for _, group := range gameResourceGroups {
		if err := rm.LoadResourceGroup(group); err != nil {
			return nil, fmt.Errorf("game scene resources: %w", err)
		}
	}

	s := &GameScene{
		env:           env,
		entityManager: ecs.NewEntityManager(),
		viewport:      env.Viewport(),
	}
	if err := s.createEntities(); err != nil {
		return nil, err
	}
	s.createSystems()
	if err := s.createButtons(); err != nil {
		return nil, err
	}
	pauseMenu, err := modules.NewPauseMenuModule(rm, env.Input, env.Audio, env.Settings, s.viewport, modules.PauseMenuCallbacks{
		OnFullscreen: ebiten.SetFullscreen,
	})
	if err != nil {
		return nil, err
	}
	s.pauseMenu = pauseMenu
	log.Printf("[GameScene] created with %d entities", s.entityManager.EntityCount())
	return s, nil
}

// createEntities 场景常驻的单例实体；展台在第一次进入 PedestalSelect 时创建
func (s *GameScene) createEntities() error {
	em := s.entityManager
	entities.NewDialogBoxEntity(em)
	entities.NewFarmGridEntity(em, s.env.Config.Farm)
	entities.NewPriceSetterEntity(em)
	if _, _, err := entities.NewInventoryPanel(em, s.env.Resources, s.env.Catalog); err != nil {
		return fmt.Errorf("inventory panel: %w", err)
	}
	return nil
}

func (s *GameScene) createSystems() {
	env := s.env
	em := s.entityManager
	cfg := env.Config
	font := loadFont(env.Resources, entities.ButtonFontID, 12)
	titleFont := loadFont(env.Resources, TitleFontID, 24)

	s.dialogSystem = systems.NewDialogSystem(em, env.Assets, env.Events, env.Input, env.Audio)
	s.buttonSystem = systems.NewButtonSystem(em, env.Input, env.Audio)
	s.storeFlowSystem = systems.NewStoreFlowSystem(env.Flow, env.Events, s.dialogSystem, env.Dialogue, cfg.Dialogue.WelcomeNode)
	s.pedestalSelectSystem = systems.NewPedestalSelectSystem(em, env.Resources, env.Flow, env.Context, env.Input, s.viewport, cfg.Store)
	s.inventorySystem = systems.NewInventorySystem(em, env.Flow, env.Context, env.Input, s.viewport, env.Catalog, cfg.Store.Price.Limits())
	s.priceSelectSystem = systems.NewPriceSelectSystem(em, env.Resources, env.Flow, env.Context, env.Input, env.Audio)
	s.farmerBuySystem = systems.NewFarmerBuySystem(em, env.Resources, env.Flow, env.Context, env.Events, s.dialogSystem, env.Audio, env.Dialogue, cfg.Dialogue.FarmerBuyNode)
	s.farmSimulationSystem = systems.NewFarmSimulationSystem(em, env.Flow, env.Context, env.Events, s.dialogSystem, env.Audio, env.Dialogue, cfg.Dialogue.SummaryNode, cfg.Goal)

	s.farmRenderSystem = systems.NewFarmRenderSystem(em, env.Resources, env.Flow, env.Context, env.Events, font, s.viewport)
	s.spriteRenderSystem = systems.NewSpriteRenderSystem(em, s.viewport)
	s.storeRenderSystem = systems.NewStoreRenderSystem(em, env.Flow, env.Context, env.Catalog, font, s.viewport)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(em)
	s.dialogRenderSystem = systems.NewDialogRenderSystem(em, font, s.viewport)
	s.hudRenderSystem = systems.NewHUDRenderSystem(env.Flow, env.Context, env.Settings, font)
	s.endingSystem = systems.NewEndingSystem(env.Flow, env.Context, s.dialogSystem, env.Dialogue,
		cfg.Dialogue.FailedNode, cfg.Dialogue.SuccessNode, titleFont, font, s.viewport)
}

// Update 更新一帧
func (s *GameScene) Update(deltaTime float64) {
	if utils.IsPauseJustPressed(s.env.Input) {
		s.pauseMenu.Toggle()
	}
	if s.pauseMenu.IsActive() {
		s.pauseMenu.Update(deltaTime)
		return
	}

	s.env.Events.Advance()
	s.dialogSystem.HandleAssetEvents(s.env.Assets.PollEvents())
	s.env.Flow.ApplyTransitions()

	s.dialogSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)

	s.storeFlowSystem.Update(deltaTime)
	s.pedestalSelectSystem.Update(deltaTime)
	s.inventorySystem.Update(deltaTime)
	s.priceSelectSystem.Update(deltaTime)
	s.farmerBuySystem.Update(deltaTime)

	s.farmSimulationSystem.Update(deltaTime)
	s.farmRenderSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制一帧
//
// 层次（从下到上）：农场网格、精灵（展台/库存图标）、商店文字、按钮、对话框、状态栏、结束卡片、暂停菜单
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(gameBackground)
	s.farmRenderSystem.Draw(screen)
	s.spriteRenderSystem.Draw(screen)
	s.storeRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
	s.dialogRenderSystem.Draw(screen)
	s.hudRenderSystem.Draw(screen)
	s.endingSystem.Draw(screen)
	s.pauseMenu.Draw(screen)
}

// EntityManager 场景的实体管理器（测试与调试用）
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// FinishButton "Finish" 按钮实体
func (s *GameScene) FinishButton() ecs.EntityID {
	return s.finishButton
}

// PauseMenu 暂停菜单
func (s *GameScene) PauseMenu() *modules.PauseMenuModule {
	return s.pauseMenu
}

// PriceButtons 定价面板的按钮实体（顺序见 createButtons）
func (s *GameScene) PriceButtons() []ecs.EntityID {
	return s.priceButtons
}

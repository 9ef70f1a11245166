package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/entities"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/store"
	"github.com/decker502/farmshop/pkg/utils"
)

// PedestalSelectSystem 展台选择
//
// 职责：
//   - 第一次进入 PedestalSelect 时生成展台
//   - 指针按住期间在世界坐标中做命中测试，命中第一个展台即进入 Inventory
//     （按住不放会在每一帧重新触发）
//   - "Finish" 按钮或 F 键进入 FarmerBuy
//   - 展台只在 StoreSetup 中显示
type PedestalSelectSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	flow            *game.GameFlow
	ctx             *game.FlowContext
	input           utils.InputProvider
	viewport        utils.Viewport
	config          config.StoreConfig
	buttons         []ecs.EntityID
}

// NewPedestalSelectSystem 创建展台选择系统并注册进入钩子
func NewPedestalSelectSystem(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	flow *game.GameFlow,
	ctx *game.FlowContext,
	input utils.InputProvider,
	viewport utils.Viewport,
	cfg config.StoreConfig,
) *PedestalSelectSystem {
	s := &PedestalSelectSystem{
		entityManager:   em,
		resourceManager: rm,
		flow:            flow,
		ctx:             ctx,
		input:           input,
		viewport:        viewport,
		config:          cfg,
	}
	flow.OnEnterStore(game.StorePedestalSelect, s.spawnPedestals)
	return s
}

// SetButtons 绑定只在 PedestalSelect 中显示的按钮（如 "Finish"）
func (s *PedestalSelectSystem) SetButtons(ids ...ecs.EntityID) {
	s.buttons = ids
}

// spawnPedestals 场景中没有展台时创建
func (s *PedestalSelectSystem) spawnPedestals() {
	if len(ecs.GetEntitiesWith1[*components.PedestalComponent](s.entityManager)) > 0 {
		return
	}
	ids, err := entities.SpawnPedestals(s.entityManager, s.resourceManager, s.config)
	if err != nil {
		log.Printf("[PedestalSelectSystem] failed to spawn pedestals: %v", err)
		return
	}
	log.Printf("[PedestalSelectSystem] spawned %d pedestals", len(ids))
}

// Update 处理展台点击
func (s *PedestalSelectSystem) Update(deltaTime float64) {
	s.syncVisibility()

	active := s.flow.InStore(game.StorePedestalSelect)
	setButtonsHidden(s.entityManager, !active, s.buttons)
	if !active {
		return
	}

	if s.input.IsKeyJustPressed(ebiten.KeyF) {
		s.Finish()
		return
	}
	if !s.input.IsPointerPressed() {
		return
	}

	if id, ok := s.PedestalAt(worldPointer(s.input, s.viewport)); ok {
		s.ctx.SelectedPedestal = id
		log.Printf("[PedestalSelectSystem] pedestal %d selected", id)
		s.flow.SetStoreState(game.StoreInventory)
	}
}

// PedestalAt 返回包含世界坐标点 p 的第一个展台（按 ID 顺序）
func (s *PedestalSelectSystem) PedestalAt(p store.Point) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith3[*components.PedestalComponent, *components.PositionComponent, *components.ClickableComponent](s.entityManager) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pedestal, _ := ecs.GetComponent[*components.PedestalComponent](s.entityManager, id)
		if store.PointInside(p, store.Point{X: pos.X, Y: pos.Y}, pedestal.Size) {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

// Finish 结束摆放，进入 FarmerBuy
func (s *PedestalSelectSystem) Finish() {
	if !s.flow.InStore(game.StorePedestalSelect) {
		return
	}
	log.Printf("[PedestalSelectSystem] finished stocking")
	s.flow.SetStoreState(game.StoreFarmerBuy)
}

func (s *PedestalSelectSystem) syncVisibility() {
	hidden := s.flow.State() != game.StateStoreSetup
	for _, id := range ecs.GetEntitiesWith2[*components.PedestalComponent, *components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.Hidden = hidden
	}
}

package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/farm"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/types"
	"github.com/decker502/farmshop/pkg/utils"
)

// 使用物品后格子高亮的持续时间（秒）
const tileFlashDuration = 0.3

var tileFlashColor = color.RGBA{255, 255, 255, 96}

// FarmRenderSystem 农场渲染系统
// 只在 FarmingBattle 中绘制 5x5 网格；收到 ItemApplied 时让对应格子闪一下，
// ShowSummary 阶段在网格右侧列出各状态数量
type FarmRenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	flow            *game.GameFlow
	ctx             *game.FlowContext
	events          *game.Events
	font            *text.GoTextFace
	viewport        utils.Viewport

	flashTile int
	flashTime float64
}

// NewFarmRenderSystem 创建农场渲染系统
func NewFarmRenderSystem(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	flow *game.GameFlow,
	ctx *game.FlowContext,
	events *game.Events,
	font *text.GoTextFace,
	viewport utils.Viewport,
) *FarmRenderSystem {
	return &FarmRenderSystem{
		entityManager:   em,
		resourceManager: rm,
		flow:            flow,
		ctx:             ctx,
		events:          events,
		font:            font,
		viewport:        viewport,
		flashTile:       -1,
	}
}

// Update 读取 ItemApplied 事件
func (s *FarmRenderSystem) Update(deltaTime float64) {
	for _, ev := range s.events.ItemApplied.Events() {
		s.flashTile = ev.Tile
		s.flashTime = tileFlashDuration
	}
	if s.flashTime > 0 {
		s.flashTime -= deltaTime
		if s.flashTime <= 0 {
			s.flashTile = -1
		}
	}
}

// FlashTile 当前高亮的格子，没有时返回 -1
func (s *FarmRenderSystem) FlashTile() int {
	return s.flashTile
}

// TileCenter 格子中心的世界坐标
func TileCenter(origin *components.PositionComponent, tileSize float64, index int) (float64, float64) {
	row, col := farm.RowCol(index)
	half := float64(farm.GridSize-1) / 2
	return origin.X + (float64(col)-half)*tileSize, origin.Y + (float64(row)-half)*tileSize
}

// Draw 绘制农场
func (s *FarmRenderSystem) Draw(screen *ebiten.Image) {
	if s.flow.State() != game.StateFarmingBattle {
		return
	}
	id, grid, ok := ecs.First[*components.FarmGridComponent](s.entityManager)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	for i, state := range grid.Grid {
		wx, wy := TileCenter(pos, grid.TileSize, i)
		sx, sy := s.viewport.WorldToScreen(wx, wy)
		x, y := utils.CenteredOrigin(sx, sy, grid.TileSize, grid.TileSize)
		s.drawTile(screen, state, x, y, grid.TileSize)

		if i == s.flashTile {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(grid.TileSize), float32(grid.TileSize), tileFlashColor, false)
		}
	}

	if s.flow.InFarming(game.FarmingShowSummary) {
		s.drawSummary(screen, pos, grid)
	}
}

func (s *FarmRenderSystem) drawTile(screen *ebiten.Image, state types.TileState, x, y, size float64) {
	key := farm.TileResourceKey(state)
	img := s.resourceManager.GetImageByID(key)
	if img == nil {
		var err error
		img, err = s.resourceManager.LoadImageByID(key)
		if err != nil {
			log.Printf("[FarmRenderSystem] %v", err)
			return
		}
	}
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (s *FarmRenderSystem) drawSummary(screen *ebiten.Image, pos *components.PositionComponent, grid *components.FarmGridComponent) {
	if s.font == nil {
		return
	}
	wx := pos.X + float64(farm.GridSize)*grid.TileSize/2 + 16
	wy := pos.Y - float64(farm.GridSize)*grid.TileSize/2
	x, y := s.viewport.WorldToScreen(wx, wy)

	for i, state := range types.AllTileStates() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*14)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, fmt.Sprintf("%s: %d", state, s.ctx.LastSummary.Counts[state]), s.font, op)
	}
}

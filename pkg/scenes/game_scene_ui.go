package scenes

import (
	"fmt"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/entities"
)

// 按钮布局（屏幕坐标，逻辑分辨率 480x360）
// 定价按钮贴在定价面板（中心 240,204，200x64）两侧
const (
	finishButtonX, finishButtonY = 408.0, 40.0
	finishButtonW, finishButtonH = 64.0, 20.0

	stepButtonSize  = 16.0
	stepButtonLeft  = 116.0
	stepButtonRight = 348.0
	quantityRowY    = 192.0
	priceRowY       = 208.0

	actionButtonW, actionButtonH = 56.0, 18.0
	actionButtonY                = 242.0
)

type buttonDef struct {
	x, y, w, h float64
	label      string
	onClick    func()
}

// createButtons 创建 Finish 和定价面板按钮
// 按钮初始隐藏，由对应的阶段系统每帧控制显示
func (s *GameScene) createButtons() error {
	finish, err := s.newButton(buttonDef{
		x: finishButtonX, y: finishButtonY, w: finishButtonW, h: finishButtonH,
		label: "Finish", onClick: s.pedestalSelectSystem.Finish,
	})
	if err != nil {
		return err
	}
	s.finishButton = finish
	s.pedestalSelectSystem.SetButtons(finish)

	ps := s.priceSelectSystem
	defs := []buttonDef{
		{x: stepButtonLeft, y: quantityRowY, w: stepButtonSize, h: stepButtonSize, label: "-", onClick: ps.DecQuantity},
		{x: stepButtonRight, y: quantityRowY, w: stepButtonSize, h: stepButtonSize, label: "+", onClick: ps.IncQuantity},
		{x: stepButtonLeft, y: priceRowY, w: stepButtonSize, h: stepButtonSize, label: "-", onClick: ps.DecPrice},
		{x: stepButtonRight, y: priceRowY, w: stepButtonSize, h: stepButtonSize, label: "+", onClick: ps.IncPrice},
		{x: 240 - actionButtonW - 4, y: actionButtonY, w: actionButtonW, h: actionButtonH, label: "Place", onClick: ps.Commit},
		{x: 240 + 4, y: actionButtonY, w: actionButtonW, h: actionButtonH, label: "Back", onClick: ps.Cancel},
	}
	s.priceButtons = s.priceButtons[:0]
	for _, def := range defs {
		id, err := s.newButton(def)
		if err != nil {
			return err
		}
		s.priceButtons = append(s.priceButtons, id)
	}
	ps.SetButtons(s.priceButtons...)
	return nil
}

func (s *GameScene) newButton(def buttonDef) (ecs.EntityID, error) {
	id, err := entities.NewTextButton(s.entityManager, s.env.Resources, def.x, def.y, def.w, def.h, def.label, def.onClick)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("button %q: %w", def.label, err)
	}
	if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
		btn.Hidden = true
	}
	return id, nil
}

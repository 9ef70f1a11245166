// Package utils 提供通用工具函数：输入抽象、坐标转换、平台检测
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputProvider 每帧的输入查询接口
// 系统只通过该接口读取输入，测试中用 FakeInput 替代
type InputProvider interface {
	// PointerPosition 指针位置（逻辑屏幕坐标）
	PointerPosition() (x, y int)
	// IsPointerPressed 指针（鼠标左键或触摸）是否按住
	IsPointerPressed() bool
	// IsPointerJustPressed 指针是否在本帧按下
	IsPointerJustPressed() bool
	// IsPointerJustReleased 指针是否在本帧松开
	IsPointerJustReleased() bool
	// IsKeyJustPressed 按键是否在本帧按下
	IsKeyJustPressed(key ebiten.Key) bool
	// IsGamepadButtonPressed 任意手柄上的标准按键是否按住
	IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool
	// IsGamepadButtonJustPressed 任意手柄上的标准按键是否在本帧按下
	IsGamepadButtonJustPressed(button ebiten.StandardGamepadButton) bool
}

// EbitenInput 基于 Ebitengine 的输入实现
// 同时支持鼠标和触摸，优先检测触摸
type EbitenInput struct {
	// 保存最后一次触摸位置（触摸释放时已无法读取位置）
	lastTouchX, lastTouchY int
	gamepadIDs             []ebiten.GamepadID
}

// NewEbitenInput 创建 Ebitengine 输入
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Update 每帧开头调用一次，刷新触摸位置与手柄列表
func (in *EbitenInput) Update() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		in.lastTouchX, in.lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
}

// PointerPosition 获取当前指针位置（触摸或鼠标）
func (in *EbitenInput) PointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return in.lastTouchX, in.lastTouchY
	}
	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func (in *EbitenInput) IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// IsPointerJustPressed 检查是否刚刚按下指针
func (in *EbitenInput) IsPointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// IsPointerJustReleased 检查是否刚刚释放指针
func (in *EbitenInput) IsPointerJustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// IsKeyJustPressed 检查按键是否刚刚按下
func (in *EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// IsGamepadButtonPressed 任意已连接的标准布局手柄上按键是否按住
func (in *EbitenInput) IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool {
	for _, id := range in.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, button) {
			return true
		}
	}
	return false
}

// IsGamepadButtonJustPressed 任意已连接的标准布局手柄上按键是否刚刚按下
func (in *EbitenInput) IsGamepadButtonJustPressed(button ebiten.StandardGamepadButton) bool {
	for _, id := range in.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) && inpututil.IsStandardGamepadButtonJustPressed(id, button) {
			return true
		}
	}
	return false
}

// IsConfirmJustPressed 确认键：Space / Enter / 手柄 South
func IsConfirmJustPressed(in InputProvider) bool {
	return in.IsKeyJustPressed(ebiten.KeySpace) ||
		in.IsKeyJustPressed(ebiten.KeyEnter) ||
		in.IsGamepadButtonJustPressed(ebiten.StandardGamepadButtonRightBottom)
}

// IsCancelJustPressed 取消键：Escape / 手柄 East
func IsCancelJustPressed(in InputProvider) bool {
	return in.IsKeyJustPressed(ebiten.KeyEscape) ||
		in.IsGamepadButtonJustPressed(ebiten.StandardGamepadButtonRightRight)
}

// IsUpJustPressed 上：Up / W / 手柄十字键上
func IsUpJustPressed(in InputProvider) bool {
	return in.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		in.IsKeyJustPressed(ebiten.KeyW) ||
		in.IsGamepadButtonJustPressed(ebiten.StandardGamepadButtonLeftTop)
}

// IsDownJustPressed 下：Down / S / 手柄十字键下
func IsDownJustPressed(in InputProvider) bool {
	return in.IsKeyJustPressed(ebiten.KeyArrowDown) ||
		in.IsKeyJustPressed(ebiten.KeyS) ||
		in.IsGamepadButtonJustPressed(ebiten.StandardGamepadButtonLeftBottom)
}

// IsLeftJustPressed 左：Left / A / 手柄十字键左
func IsLeftJustPressed(in InputProvider) bool {
	return in.IsKeyJustPressed(ebiten.KeyArrowLeft) ||
		in.IsKeyJustPressed(ebiten.KeyA) ||
		in.IsGamepadButtonJustPressed(ebiten.StandardGamepadButtonLeftLeft)
}

// IsRightJustPressed 右：Right / D / 手柄十字键右
func IsRightJustPressed(in InputProvider) bool {
	return in.IsKeyJustPressed(ebiten.KeyArrowRight) ||
		in.IsKeyJustPressed(ebiten.KeyD) ||
		in.IsGamepadButtonJustPressed(ebiten.StandardGamepadButtonLeftRight)
}

// IsPauseJustPressed 暂停键：P / 手柄 Start
func IsPauseJustPressed(in InputProvider) bool {
	return in.IsKeyJustPressed(ebiten.KeyP) ||
		in.IsGamepadButtonJustPressed(ebiten.StandardGamepadButtonCenterRight)
}

package utils

import "github.com/hajimehoshi/ebiten/v2"

// FakeInput 可编程的输入（测试用）
//
// 用法：
//
//	in := utils.NewFakeInput()
//	in.Click(240, 180)        // 本帧按下
//	system.Update(dt)
//	in.EndFrame()             // 清除"刚刚"类状态
type FakeInput struct {
	X, Y         int
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	Keys         map[ebiten.Key]bool
	Gamepad      map[ebiten.StandardGamepadButton]bool
	GamepadJust  map[ebiten.StandardGamepadButton]bool
}

// NewFakeInput 创建空输入
func NewFakeInput() *FakeInput {
	return &FakeInput{
		Keys:        make(map[ebiten.Key]bool),
		Gamepad:     make(map[ebiten.StandardGamepadButton]bool),
		GamepadJust: make(map[ebiten.StandardGamepadButton]bool),
	}
}

// Press 在 (x, y) 按下指针
func (f *FakeInput) Press(x, y int) {
	f.X, f.Y = x, y
	f.JustPressed = !f.Pressed
	f.Pressed = true
}

// Release 松开指针
func (f *FakeInput) Release() {
	f.JustReleased = f.Pressed
	f.Pressed = false
}

// Click 在 (x, y) 按下（本帧），调用方随后 Release
func (f *FakeInput) Click(x, y int) {
	f.Press(x, y)
}

// Move 移动指针
func (f *FakeInput) Move(x, y int) {
	f.X, f.Y = x, y
}

// Tap 模拟一次按键
func (f *FakeInput) Tap(key ebiten.Key) {
	f.Keys[key] = true
}

// TapGamepad 模拟一次手柄按键
func (f *FakeInput) TapGamepad(b ebiten.StandardGamepadButton) {
	f.GamepadJust[b] = true
}

// EndFrame 清除本帧的"刚刚按下/松开"状态
func (f *FakeInput) EndFrame() {
	f.JustPressed = false
	f.JustReleased = false
	f.Keys = make(map[ebiten.Key]bool)
	f.GamepadJust = make(map[ebiten.StandardGamepadButton]bool)
}

func (f *FakeInput) PointerPosition() (int, int)        { return f.X, f.Y }
func (f *FakeInput) IsPointerPressed() bool             { return f.Pressed }
func (f *FakeInput) IsPointerJustPressed() bool         { return f.JustPressed }
func (f *FakeInput) IsPointerJustReleased() bool        { return f.JustReleased }
func (f *FakeInput) IsKeyJustPressed(k ebiten.Key) bool { return f.Keys[k] }

func (f *FakeInput) IsGamepadButtonPressed(b ebiten.StandardGamepadButton) bool {
	return f.Gamepad[b]
}

func (f *FakeInput) IsGamepadButtonJustPressed(b ebiten.StandardGamepadButton) bool {
	return f.GamepadJust[b]
}

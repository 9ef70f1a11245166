package components

// TimerComponent 通用计时器组件
// 用于固定间隔触发的行为（如农场每一步的节奏）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "farm_step"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	Repeat      bool    // 完成后自动重新计时
}

// Tick 推进计时器，返回本次是否完成
// Repeat 为 true 时保留超出部分，避免节奏漂移
func (t *TimerComponent) Tick(dt float64) bool {
	if t.IsReady && !t.Repeat {
		return false
	}
	t.CurrentTime += dt
	if t.CurrentTime < t.TargetTime {
		t.IsReady = false
		return false
	}
	t.IsReady = true
	if t.Repeat {
		t.CurrentTime -= t.TargetTime
		if t.CurrentTime >= t.TargetTime {
			t.CurrentTime = 0
		}
	}
	return true
}

// Reset 重新开始计时
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}

package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata，避免污染真实用户目录
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.DebugOverlay {
		t.Error("DebugOverlay: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.Persistent() {
		t.Error("nil gdata manager should not be persistent")
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Error("degraded mode should use defaults")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}

	// 切换仍然在内存中生效
	if !sm.ToggleFullscreen() || !sm.GetSettings().Fullscreen {
		t.Error("ToggleFullscreen should work in memory")
	}
}

// TestSettingsLoadSave 测试设置的持久化往返
func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "farmshop_test_settings")

	sm := NewSettingsManager(m)
	if !sm.Persistent() {
		t.Fatal("expected persistent settings manager")
	}

	sm.SetSoundVolume(0.25)
	sm.SetSoundEnabled(false)
	sm.ToggleDebugOverlay() // 立即保存

	reloaded := NewSettingsManager(m)
	s := reloaded.GetSettings()
	if s.SoundVolume != 0.25 {
		t.Errorf("SoundVolume: got %v, want 0.25", s.SoundVolume)
	}
	if s.SoundEnabled {
		t.Error("SoundEnabled should be persisted as false")
	}
	if !s.DebugOverlay {
		t.Error("DebugOverlay should be persisted as true")
	}
}

// TestLoadCorruptedSettings 损坏的设置文件回退为默认值
func TestLoadCorruptedSettings(t *testing.T) {
	m := openTestGdata(t, "farmshop_test_corrupt")

	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm := &SettingsManager{gdataManager: m, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("Expected error for corrupted settings")
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Error("corrupted settings should fall back to defaults")
	}
}

// TestSetSoundVolumeClamp 测试音量限制
func TestSetSoundVolumeClamp(t *testing.T) {
	tests := []struct {
		input, want float64
	}{
		{-0.5, 0},
		{0.5, 0.5},
		{1.5, 1},
	}

	sm := NewSettingsManager(nil)
	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

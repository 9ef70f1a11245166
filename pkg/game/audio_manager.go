package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效资源 ID
const (
	SoundClick    = "SOUND_CLICK"
	SoundPurchase = "SOUND_PURCHASE"
	SoundFarmStep = "SOUND_FARM_STEP"
)

// AudioManager 音效管理器
// 通过资源 ID 播放单次音效，音量与开关从 SettingsManager 读取
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil
	players         map[string]*audio.Player
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音效）
//   - sm: SettingsManager 实例（可为 nil，此时使用默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		players:         make(map[string]*audio.Player),
	}
}

// PlaySound 从头播放音效
// 返回是否实际播放（音效关闭、无音频设备或资源缺失时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] rewind %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// Preload 预先加载音效，避免首次播放时卡顿
func (am *AudioManager) Preload(soundIDs ...string) {
	for _, id := range soundIDs {
		am.getPlayer(id)
	}
}

func (am *AudioManager) getPlayer(soundID string) *audio.Player {
	if p, ok := am.players[soundID]; ok {
		return p
	}
	if am.resourceManager == nil {
		return nil
	}
	p, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to load %s: %v", soundID, err)
		return nil
	}
	if p != nil {
		am.players[soundID] = p
	}
	return p
}

func (am *AudioManager) volume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

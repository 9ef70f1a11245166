// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/farmshop/pkg/config"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/scenes"
	"github.com/decker502/farmshop/pkg/utils"
)

// ResourceConfigPath 资源配置文件
const ResourceConfigPath = "assets/config/resources.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SkipMenu 跳过开始画面，直接进入商店
	SkipMenu bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	input                    *utils.EbitenInput
	config                   *config.GameConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.LoadGameConfig(config.DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	catalog, err := config.LoadCatalog(config.DefaultCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("商品目录加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup("init"); err != nil {
		return nil, fmt.Errorf("初始资源加载失败: %w", err)
	}

	settingsManager := game.NewSettingsManager(game.OpenStorage(game.StorageAppName))
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.Preload(game.SoundClick, game.SoundPurchase, game.SoundFarmStep)
	log.Printf("[App] AudioManager initialized (persistent settings: %v)", settingsManager.Persistent())

	// 对话脚本在后台加载，开始画面期间通常已经就绪
	assets := game.NewAssetServer()
	handle := assets.LoadDialogue(gameConfig.Dialogue.Path)

	input := utils.NewEbitenInput()
	sceneManager := game.NewSceneManager()
	env := &scenes.Env{
		Resources: resourceManager,
		Scenes:    sceneManager,
		Settings:  settingsManager,
		Audio:     audioManager,
		Assets:    assets,
		Flow:      game.NewGameFlow(),
		Context:   game.NewFlowContext(),
		Events:    game.NewEvents(),
		Input:     input,
		Config:    gameConfig,
		Catalog:   catalog,
		Dialogue:  handle,
	}
	scenes.RegisterScenes(env)

	// 根据配置决定启动场景
	if cfg.SkipMenu {
		log.Printf("[App] SkipMenu enabled, entering the store directly")
		if err := env.Flow.SetState(game.StateStoreSetup); err != nil {
			return nil, err
		}
		env.Flow.ApplyTransitions()
		if sceneManager.GetCurrentScene() == nil {
			return nil, errors.New("游戏场景创建失败")
		}
	} else {
		sceneManager.LoadScene(game.SceneStartMenu)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settingsManager,
		input:        input,
		config:       gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.input.Update()

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.config.Window.Width, a.config.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.config.Window.Width, a.config.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if a.input.IsKeyJustPressed(ebiten.KeyF11) {
		if a.settings.ToggleFullscreen() {
			ebiten.SetFullscreen(true)
		} else {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		}
	}

	// F3 切换调试信息
	if a.input.IsKeyJustPressed(ebiten.KeyF3) {
		log.Printf("[App] Debug overlay: %v", a.settings.ToggleDebugOverlay())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 像素风占位图使用最近邻缩放
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Logical.Width, a.config.Logical.Height
}

// WindowConfig 窗口标题与初始尺寸
func (a *App) WindowConfig() config.WindowConfig {
	return a.config.Window
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

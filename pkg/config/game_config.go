package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/farmshop/pkg/embedded"
	"github.com/decker502/farmshop/pkg/store"
)

// DefaultGameConfigPath 游戏配置文件路径
const DefaultGameConfigPath = "data/config/game.yaml"

// GameConfig 游戏全局配置
type GameConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Logical  LogicalConfig  `yaml:"logical"`
	Farm     FarmConfig     `yaml:"farm"`
	Store    StoreConfig    `yaml:"store"`
	Dialogue DialogueConfig `yaml:"dialogue"`
	Goal     GoalConfig     `yaml:"goal"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title" validate:"required"`
	Width  int    `yaml:"width" validate:"gt=0"`
	Height int    `yaml:"height" validate:"gt=0"`
}

// LogicalConfig 逻辑分辨率（Layout 返回值），世界坐标原点位于其中心
type LogicalConfig struct {
	Width  int `yaml:"width" validate:"gt=0"`
	Height int `yaml:"height" validate:"gt=0"`
}

// FarmConfig 农场模拟配置
type FarmConfig struct {
	StepInterval float64 `yaml:"stepInterval" validate:"gt=0"` // 每一步的间隔（秒）
	TileSize     float64 `yaml:"tileSize" validate:"gt=0"`
	OffsetY      float64 `yaml:"offsetY"` // 网格中心相对世界原点的纵向偏移
}

// StoreConfig 商店配置
type StoreConfig struct {
	PedestalCount   int         `yaml:"pedestalCount" validate:"min=1,max=8"`
	PedestalSpacing float64     `yaml:"pedestalSpacing" validate:"gt=0"`
	PedestalSize    float64     `yaml:"pedestalSize" validate:"gt=0"`
	PedestalY       float64     `yaml:"pedestalY"`
	Price           PriceConfig `yaml:"price"`
}

// PriceConfig 定价界面的取值范围
type PriceConfig struct {
	MinQuantity int `yaml:"minQuantity" validate:"min=1"`
	MaxQuantity int `yaml:"maxQuantity" validate:"gtefield=MinQuantity"`
	Step        int `yaml:"step" validate:"gt=0"`
	MinPrice    int `yaml:"minPrice" validate:"min=0"`
	MaxPrice    int `yaml:"maxPrice" validate:"gtefield=MinPrice"`
}

// Limits 转换为 store 包使用的范围
func (p PriceConfig) Limits() store.PriceLimits {
	return store.PriceLimits{
		MinQuantity: p.MinQuantity,
		MaxQuantity: p.MaxQuantity,
		PriceStep:   p.Step,
		MinPrice:    p.MinPrice,
		MaxPrice:    p.MaxPrice,
	}
}

// GoalConfig 结束条件，在每季总结对话结束时检查；0 表示不启用
type GoalConfig struct {
	Earnings    int `yaml:"earnings" validate:"min=0"`          // 累计收入达到后进入 Success
	FailedTiles int `yaml:"failedTiles" validate:"min=0,max=25"` // 枯死格子达到后进入 Failed
}

// DialogueConfig 对话脚本及各阶段使用的节点
type DialogueConfig struct {
	Path          string `yaml:"path" validate:"required"`
	WelcomeNode   string `yaml:"welcomeNode" validate:"required"`
	FarmerBuyNode string `yaml:"farmerBuyNode" validate:"required"`
	SummaryNode   string `yaml:"summaryNode" validate:"required"`
	FailedNode    string `yaml:"failedNode"`
	SuccessNode   string `yaml:"successNode"`
}

// DefaultGameConfig 返回内置默认值，YAML 中缺失的字段保持这些值
func DefaultGameConfig() *GameConfig {
	limits := store.DefaultPriceLimits()
	return &GameConfig{
		Window:  WindowConfig{Title: "Farm Shop", Width: 960, Height: 720},
		Logical: LogicalConfig{Width: 480, Height: 360},
		Farm:    FarmConfig{StepInterval: 0.5, TileSize: 24, OffsetY: 24},
		Store: StoreConfig{
			PedestalCount:   3,
			PedestalSpacing: 48,
			PedestalSize:    24,
			PedestalY:       -48,
			Price: PriceConfig{
				MinQuantity: limits.MinQuantity,
				MaxQuantity: limits.MaxQuantity,
				Step:        limits.PriceStep,
				MinPrice:    limits.MinPrice,
				MaxPrice:    limits.MaxPrice,
			},
		},
		Dialogue: DialogueConfig{
			Path:          "data/dialogs/store.yaml",
			WelcomeNode:   "Welcome",
			FarmerBuyNode: "FarmerBuy",
			SummaryNode:   "FarmingSummary",
		},
		Goal: GoalConfig{Earnings: 1000, FailedTiles: 10},
	}
}

// ParseGameConfig 在默认值之上解析 YAML 并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := validateStruct("game config", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGameConfig 从嵌入资源加载游戏配置
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ItemType 定义商店可售卖的工具/种子类型
type ItemType int

const (
	// ItemUnknown 未知类型（零值，不出现在目录中）
	ItemUnknown ItemType = iota
	// ItemHoe 锄头：泥土 → 已翻土
	ItemHoe
	// ItemWateringCan 洒水壶：干燥幼苗 → 湿润幼苗
	ItemWateringCan
	// ItemScythe 镰刀：成熟/枯死 → 泥土
	ItemScythe
	// ItemParsnipSeed 防风草种子：已翻土 → 已播种
	ItemParsnipSeed
	// ItemBlueberrySeed 蓝莓种子：已翻土 → 已播种
	ItemBlueberrySeed
)

// itemNames 配置文件中使用的名称
var itemNames = map[ItemType]string{
	ItemHoe:           "hoe",
	ItemWateringCan:   "watering_can",
	ItemScythe:        "scythe",
	ItemParsnipSeed:   "parsnip_seed",
	ItemBlueberrySeed: "blueberry_seed",
}

// AllItemTypes 返回所有有效的物品类型（按定义顺序）
func AllItemTypes() []ItemType {
	return []ItemType{ItemHoe, ItemWateringCan, ItemScythe, ItemParsnipSeed, ItemBlueberrySeed}
}

// String 返回物品类型的字符串表示
func (t ItemType) String() string {
	switch t {
	case ItemHoe:
		return "Hoe"
	case ItemWateringCan:
		return "WateringCan"
	case ItemScythe:
		return "Scythe"
	case ItemParsnipSeed:
		return "ParsnipSeed"
	case ItemBlueberrySeed:
		return "BlueberrySeed"
	default:
		return "Unknown"
	}
}

// IsSeed 判断是否为种子类物品
func (t ItemType) IsSeed() bool {
	return t == ItemParsnipSeed || t == ItemBlueberrySeed
}

// ParseItemType 将配置名称解析为 ItemType
func ParseItemType(name string) (ItemType, error) {
	for t, n := range itemNames {
		if n == name {
			return t, nil
		}
	}
	return ItemUnknown, fmt.Errorf("unknown item type %q", name)
}

// MarshalYAML 实现 yaml.Marshaler
func (t ItemType) MarshalYAML() (interface{}, error) {
	name, ok := itemNames[t]
	if !ok {
		return nil, fmt.Errorf("cannot marshal item type %d", int(t))
	}
	return name, nil
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (t *ItemType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseItemType(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

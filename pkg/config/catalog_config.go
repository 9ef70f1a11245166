package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/farmshop/pkg/embedded"
	"github.com/decker502/farmshop/pkg/types"
)

// DefaultCatalogPath 商品目录文件路径
const DefaultCatalogPath = "data/config/catalog.yaml"

// CatalogItem 商店可选的一件商品
type CatalogItem struct {
	ID          string         `yaml:"id" validate:"required"`
	Name        string         `yaml:"name" validate:"required"`
	Type        types.ItemType `yaml:"type" validate:"itemtype"`
	Icon        string         `yaml:"icon" validate:"required"` // 资源 ID，如 IMAGE_ITEM_HOE
	StorePrice  int            `yaml:"storePrice" validate:"min=0"`
	Description string         `yaml:"description"`
}

// Catalog 商品目录，顺序即库存界面的显示顺序
type Catalog struct {
	Items []CatalogItem `yaml:"items" validate:"required,min=1,unique=ID,dive"`
}

// Len 商品数量
func (c *Catalog) Len() int {
	return len(c.Items)
}

// Item 按索引获取商品
func (c *Catalog) Item(i int) (CatalogItem, bool) {
	if i < 0 || i >= len(c.Items) {
		return CatalogItem{}, false
	}
	return c.Items[i], true
}

// ByType 返回第一件指定类型的商品
func (c *Catalog) ByType(t types.ItemType) (CatalogItem, bool) {
	for _, item := range c.Items {
		if item.Type == t {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// ParseCatalog 解析并校验商品目录
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := validateStruct("catalog", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalog 从嵌入资源加载商品目录
func LoadCatalog(path string) (*Catalog, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

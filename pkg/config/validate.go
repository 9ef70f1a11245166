// Package config 加载并校验游戏配置（YAML）
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/decker502/farmshop/pkg/types"
)

// ErrInvalidConfig 配置内容未通过校验
var ErrInvalidConfig = errors.New("invalid config")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator 返回全局校验器，首次调用时注册自定义规则
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("itemtype", validateItemType)
		validate = v
	})
	return validate
}

// validateItemType 确保物品类型是已知的有效值
func validateItemType(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(types.ItemType)
	if !ok {
		return false
	}
	for _, known := range types.AllItemTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// validateStruct 校验结构体，失败时返回包装了 ErrInvalidConfig 的错误
func validateStruct(name string, s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, name, formatValidationErrors(validationErrors))
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
		case "gtefield":
			msgs = append(msgs, fmt.Sprintf("%s must not be less than %s", field, e.Param()))
		case "unique":
			msgs = append(msgs, fmt.Sprintf("%s must not contain duplicate %s", field, e.Param()))
		case "itemtype":
			msgs = append(msgs, fmt.Sprintf("%s is not a known item type", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", field, e.Tag()))
		}
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

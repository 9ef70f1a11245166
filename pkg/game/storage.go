package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// StorageAppName gdata 存储使用的应用名（决定用户数据目录）
const StorageAppName = "farmshop"

// OpenStorage 打开跨平台存储
// 失败时返回 nil，调用方进入降级模式（设置只保存在内存中）
func OpenStorage(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return m
}

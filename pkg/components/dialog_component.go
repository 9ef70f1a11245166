package components

import (
	"github.com/decker502/farmshop/pkg/dialogue"
	"github.com/decker502/farmshop/pkg/game"
)

// DialogBoxComponent 对话框
//
// Show 绑定脚本句柄与起始节点；脚本就绪后创建 Runner 并显示，
// 对话结束时隐藏并解除 Runner。
type DialogBoxComponent struct {
	Visible   bool
	Handle    game.DialogueHandle // 0 表示未绑定
	StartNode string
	Runner    *dialogue.Runner
	Waiting   bool // 已绑定、等待脚本加载完成
}

// Active 是否有进行中的对话（显示中或等待加载）
func (d *DialogBoxComponent) Active() bool {
	return d.Visible || d.Waiting
}

package systems

import (
	"log"

	"github.com/decker502/farmshop/pkg/components"
	"github.com/decker502/farmshop/pkg/dialogue"
	"github.com/decker502/farmshop/pkg/ecs"
	"github.com/decker502/farmshop/pkg/game"
	"github.com/decker502/farmshop/pkg/utils"
)

// DialogSystem 对话框控制系统
//
// 职责：
//   - Show 绑定脚本句柄和起始节点，脚本就绪后显示
//   - 处理推进（Space/Enter/手柄 South）与选项切换（上/下，首尾循环）
//   - 对话结束时隐藏对话框并发布一次 DialogExited{Node: 起始节点}
//
// 场景中没有对话框实体时所有操作都是空操作。
type DialogSystem struct {
	entityManager *ecs.EntityManager
	assets        *game.AssetServer
	events        *game.Events
	input         utils.InputProvider
	audio         *game.AudioManager
}

// NewDialogSystem 创建对话框系统
// audio 可以为 nil
func NewDialogSystem(
	em *ecs.EntityManager,
	assets *game.AssetServer,
	events *game.Events,
	input utils.InputProvider,
	audio *game.AudioManager,
) *DialogSystem {
	return &DialogSystem{
		entityManager: em,
		assets:        assets,
		events:        events,
		input:         input,
		audio:         audio,
	}
}

func (s *DialogSystem) dialogBox() (*components.DialogBoxComponent, bool) {
	_, d, ok := ecs.First[*components.DialogBoxComponent](s.entityManager)
	return d, ok
}

// Show 显示以 startNode 开始的对话
// 脚本未加载完成时先挂起，收到加载事件后再显示
func (s *DialogSystem) Show(handle game.DialogueHandle, startNode string) {
	d, ok := s.dialogBox()
	if !ok {
		log.Printf("[DialogSystem] no dialog entity, ignoring Show(%s)", startNode)
		return
	}
	if d.Active() {
		log.Printf("[DialogSystem] replacing dialog %q with %q", d.StartNode, startNode)
	}

	d.Handle = handle
	d.StartNode = startNode
	d.Runner = nil
	d.Visible = false
	d.Waiting = true

	if script, loaded := s.assets.Dialogue(handle); loaded {
		s.start(d, script)
	}
}

// Active 是否有进行中的对话
func (s *DialogSystem) Active() bool {
	d, ok := s.dialogBox()
	return ok && d.Active()
}

// HandleAssetEvents 处理本帧的资源加载事件
// 每帧由场景调用一次，传入 AssetServer.PollEvents 的结果
func (s *DialogSystem) HandleAssetEvents(events []game.AssetEvent) {
	d, ok := s.dialogBox()
	if !ok || !d.Waiting {
		return
	}
	for _, ev := range events {
		if ev.Handle != d.Handle {
			continue
		}
		if ev.Err != nil {
			log.Printf("[DialogSystem] dialogue %s failed to load: %v", ev.Path, ev.Err)
			s.reset(d)
			return
		}
		if script, loaded := s.assets.Dialogue(ev.Handle); loaded {
			s.start(d, script)
		}
		return
	}
}

// start 创建 Runner 并显示
func (s *DialogSystem) start(d *components.DialogBoxComponent, script *dialogue.Script) {
	runner, err := dialogue.NewRunner(script, d.StartNode)
	if err != nil {
		log.Printf("[DialogSystem] %v", err)
		s.reset(d)
		return
	}
	d.Runner = runner
	d.Waiting = false
	d.Visible = true
	log.Printf("[DialogSystem] showing %q", d.StartNode)

	// 起始节点没有可显示的内容
	if runner.Finished() {
		s.finish(d)
	}
}

// Update 处理对话输入
func (s *DialogSystem) Update(deltaTime float64) {
	d, ok := s.dialogBox()
	if !ok || !d.Visible || d.Runner == nil {
		return
	}

	switch d.Runner.CurrentStatement().Kind {
	case dialogue.StatementChoices:
		switch {
		case utils.IsUpJustPressed(s.input):
			d.Runner.PrevChoice()
		case utils.IsDownJustPressed(s.input):
			d.Runner.NextChoice()
		case utils.IsConfirmJustPressed(s.input):
			s.advance(d)
		}
	case dialogue.StatementLine:
		if utils.IsConfirmJustPressed(s.input) {
			s.advance(d)
		}
	}

	if d.Runner.Finished() {
		s.finish(d)
	}
}

func (s *DialogSystem) advance(d *components.DialogBoxComponent) {
	d.Runner.NextEntry()
	if s.audio != nil {
		s.audio.PlaySound(game.SoundClick)
	}
}

// finish 隐藏对话框并发布结束事件
func (s *DialogSystem) finish(d *components.DialogBoxComponent) {
	node := d.StartNode
	s.reset(d)
	s.events.DialogExited.Publish(game.DialogExited{Node: node})
	log.Printf("[DialogSystem] dialog %q exited", node)
}

func (s *DialogSystem) reset(d *components.DialogBoxComponent) {
	d.Visible = false
	d.Waiting = false
	d.Runner = nil
	d.StartNode = ""
}

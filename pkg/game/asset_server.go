package game

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/decker502/farmshop/pkg/dialogue"
	"github.com/decker502/farmshop/pkg/embedded"
)

// ErrUnknownHandle 句柄不是由该 AssetServer 分配的
var ErrUnknownHandle = errors.New("unknown asset handle")

// DialogueHandle 对话脚本句柄，0 为无效值
type DialogueHandle uint32

// AssetStatus 资源加载状态
type AssetStatus int

const (
	AssetLoading AssetStatus = iota
	AssetLoaded
	AssetFailed
)

// AssetEvent 资源加载完成（或失败）通知，每次加载只投递一次
type AssetEvent struct {
	Handle DialogueHandle
	Path   string
	Err    error
}

type dialogueAsset struct {
	path   string
	status AssetStatus
	script *dialogue.Script
	err    error
}

// AssetServer 在后台 goroutine 中加载并解析对话脚本
//
// LoadDialogue 立即返回句柄；结果通过 PollEvents 在游戏循环中取回，
// 因此所有读取脚本的代码都运行在更新线程上。
type AssetServer struct {
	mu      sync.Mutex
	read    func(path string) ([]byte, error)
	handles map[string]DialogueHandle
	assets  map[DialogueHandle]*dialogueAsset
	events  []AssetEvent
	nextID  DialogueHandle
	wg      sync.WaitGroup
}

// NewAssetServer 创建从嵌入资源读取的 AssetServer
func NewAssetServer() *AssetServer {
	return NewAssetServerWithReader(embedded.ReadFile)
}

// NewAssetServerWithReader 使用自定义读取函数（测试用）
func NewAssetServerWithReader(read func(path string) ([]byte, error)) *AssetServer {
	return &AssetServer{
		read:    read,
		handles: make(map[string]DialogueHandle),
		assets:  make(map[DialogueHandle]*dialogueAsset),
	}
}

// LoadDialogue 开始加载对话脚本，同一路径返回同一个句柄且只加载一次
func (s *AssetServer) LoadDialogue(path string) DialogueHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.handles[path]; ok {
		return h
	}

	s.nextID++
	h := s.nextID
	s.handles[path] = h
	s.assets[h] = &dialogueAsset{path: path, status: AssetLoading}

	s.wg.Add(1)
	go s.load(h, path)
	return h
}

func (s *AssetServer) load(h DialogueHandle, path string) {
	defer s.wg.Done()

	script, err := s.parse(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	asset := s.assets[h]
	if err != nil {
		asset.status = AssetFailed
		asset.err = err
		log.Printf("[AssetServer] failed to load %s: %v", path, err)
	} else {
		asset.status = AssetLoaded
		asset.script = script
		log.Printf("[AssetServer] loaded %s (%d nodes)", path, len(script.Nodes))
	}
	s.events = append(s.events, AssetEvent{Handle: h, Path: path, Err: err})
}

func (s *AssetServer) parse(path string) (*dialogue.Script, error) {
	data, err := s.read(path)
	if err != nil {
		return nil, fmt.Errorf("read dialogue %s: %w", path, err)
	}
	script, err := dialogue.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse dialogue %s: %w", path, err)
	}
	return script, nil
}

// PollEvents 取出自上次调用以来完成的加载事件
func (s *AssetServer) PollEvents() []AssetEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.events
	s.events = nil
	return events
}

// Dialogue 返回已加载的脚本；仍在加载、加载失败或句柄无效时返回 false
func (s *AssetServer) Dialogue(h DialogueHandle) (*dialogue.Script, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[h]
	if !ok || asset.status != AssetLoaded {
		return nil, false
	}
	return asset.script, true
}

// Status 返回句柄的加载状态；失败时同时返回加载错误
func (s *AssetServer) Status(h DialogueHandle) (AssetStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[h]
	if !ok {
		return AssetFailed, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return asset.status, asset.err
}

// Path 返回句柄对应的路径
func (s *AssetServer) Path(h DialogueHandle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[h]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return asset.path, nil
}

// Wait 等待所有进行中的加载完成
func (s *AssetServer) Wait() {
	s.wg.Wait()
}

// Package dialogue 加载按节点组织的对话脚本，并逐条运行
//
// 脚本格式（YAML）：
//
//	nodes:
//	  - title: Welcome
//	    lines:
//	      - who: Pierre
//	        what: Welcome to the shop!
//	      - choices:
//	          - what: How does this work?
//	            jump: Tutorial
//	          - what: Let's get started.
//	      - jump: Closing
//	      - stop: true
//
// 一行只能是以下四种之一：台词（who/what）、选项组（choices）、跳转（jump）、结束（stop）。
package dialogue

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScript 脚本中没有任何节点
	ErrEmptyScript = errors.New("dialogue script has no nodes")
	// ErrNodeNotFound 指定的节点不存在
	ErrNodeNotFound = errors.New("dialogue node not found")
)

// Choice 选项组中的一个选项
// Jump 为空时选择后继续执行选项组之后的内容
type Choice struct {
	Who  string `yaml:"who"`
	What string `yaml:"what"`
	Jump string `yaml:"jump"`
}

// Entry 节点中的一行
type Entry struct {
	Who     string   `yaml:"who"`
	What    string   `yaml:"what"`
	Choices []Choice `yaml:"choices"`
	Jump    string   `yaml:"jump"`
	Stop    bool     `yaml:"stop"`
}

// Node 具名的对话片段
type Node struct {
	Title string  `yaml:"title"`
	Lines []Entry `yaml:"lines"`
}

// Script 解析后的对话脚本
type Script struct {
	Nodes []Node `yaml:"nodes"`

	index map[string]int
}

// Parse 解析 YAML 对话脚本
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse dialogue script: %w", err)
	}
	if len(s.Nodes) == 0 {
		return nil, ErrEmptyScript
	}

	s.index = make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		if n.Title == "" {
			return nil, fmt.Errorf("node #%d has no title", i)
		}
		if _, dup := s.index[n.Title]; dup {
			return nil, fmt.Errorf("duplicate node title %q", n.Title)
		}
		for j, e := range n.Lines {
			if err := e.validate(); err != nil {
				return nil, fmt.Errorf("node %q line %d: %w", n.Title, j, err)
			}
		}
		s.index[n.Title] = i
	}
	return &s, nil
}

// Node 按标题查找节点
func (s *Script) Node(title string) (*Node, bool) {
	i, ok := s.index[title]
	if !ok {
		return nil, false
	}
	return &s.Nodes[i], true
}

// HasNode 节点是否存在
func (s *Script) HasNode(title string) bool {
	_, ok := s.index[title]
	return ok
}

func (e Entry) validate() error {
	kinds := 0
	if e.What != "" {
		kinds++
	}
	if len(e.Choices) > 0 {
		kinds++
	}
	if e.Jump != "" {
		kinds++
	}
	if e.Stop {
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("entry must be exactly one of line, choices, jump or stop (got %d)", kinds)
	}
	for i, c := range e.Choices {
		if c.What == "" {
			return fmt.Errorf("choice %d has no text", i)
		}
	}
	return nil
}

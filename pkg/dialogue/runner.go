package dialogue

import "fmt"

// StatementKind 当前语句类型
type StatementKind int

const (
	// StatementLine 一句台词
	StatementLine StatementKind = iota
	// StatementChoices 等待玩家选择
	StatementChoices
	// StatementExit 对话已结束
	StatementExit
)

// String 返回语句类型名称
func (k StatementKind) String() string {
	switch k {
	case StatementLine:
		return "Line"
	case StatementChoices:
		return "Choices"
	case StatementExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Statement 当前语句
type Statement struct {
	Kind    StatementKind
	Who     string
	What    string
	Choices []Choice
}

// maxJumpChain 连续跳转的上限，超过视为脚本死循环并结束对话
const maxJumpChain = 64

// Runner 对话运行器
//
// 运行器只在 NextEntry 时前进；停在选项组上时，
// NextChoice/PrevChoice 移动高亮项，NextEntry 选择高亮项。
type Runner struct {
	script    *Script
	startNode string

	node     *Node
	line     int
	choice   int
	finished bool
}

// NewRunner 从 startNode 开始运行
func NewRunner(script *Script, startNode string) (*Runner, error) {
	node, ok := script.Node(startNode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, startNode)
	}
	r := &Runner{script: script, startNode: startNode, node: node}
	r.settle()
	return r, nil
}

// StartNode 起始节点名称
func (r *Runner) StartNode() string {
	return r.startNode
}

// CurrentNode 当前所在节点名称（对话结束后为最后所在节点）
func (r *Runner) CurrentNode() string {
	return r.node.Title
}

// Finished 是否已到达结束语句
func (r *Runner) Finished() bool {
	return r.finished
}

// CurrentStatement 返回当前语句
func (r *Runner) CurrentStatement() Statement {
	if r.finished {
		return Statement{Kind: StatementExit}
	}
	e := r.node.Lines[r.line]
	if len(e.Choices) > 0 {
		return Statement{Kind: StatementChoices, Choices: e.Choices}
	}
	return Statement{Kind: StatementLine, Who: e.Who, What: e.What}
}

// CurrentChoices 返回当前选项与高亮索引；不在选项组时返回 nil, -1
func (r *Runner) CurrentChoices() ([]Choice, int) {
	st := r.CurrentStatement()
	if st.Kind != StatementChoices {
		return nil, -1
	}
	return st.Choices, r.choice
}

// NextEntry 前进一步
// 台词：进入下一行；选项组：选择高亮项并跟随其跳转
func (r *Runner) NextEntry() {
	if r.finished {
		return
	}
	e := r.node.Lines[r.line]
	if len(e.Choices) > 0 {
		chosen := e.Choices[r.choice]
		r.choice = 0
		if chosen.Jump != "" {
			r.jump(chosen.Jump)
			r.settle()
			return
		}
	}
	r.line++
	r.settle()
}

// NextChoice 高亮下一个选项（末尾回到开头）
func (r *Runner) NextChoice() {
	choices, _ := r.CurrentChoices()
	if len(choices) == 0 {
		return
	}
	r.choice = (r.choice + 1) % len(choices)
}

// PrevChoice 高亮上一个选项（开头回到末尾）
func (r *Runner) PrevChoice() {
	choices, _ := r.CurrentChoices()
	if len(choices) == 0 {
		return
	}
	r.choice = (r.choice - 1 + len(choices)) % len(choices)
}

func (r *Runner) jump(target string) {
	node, ok := r.script.Node(target)
	if !ok {
		r.finished = true
		return
	}
	r.node = node
	r.line = 0
}

// settle 处理跳转/结束语句，使当前位置总是台词、选项组或结束
func (r *Runner) settle() {
	for hops := 0; !r.finished; hops++ {
		if hops > maxJumpChain || r.line >= len(r.node.Lines) {
			r.finished = true
			return
		}
		e := r.node.Lines[r.line]
		switch {
		case e.Stop:
			r.finished = true
		case e.Jump != "":
			r.jump(e.Jump)
		default:
			return
		}
	}
}

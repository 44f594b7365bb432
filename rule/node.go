package rule

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// Node 将 Generator 封装为 Pipeline 节点，产出写入 Analysis.Rules。
// 需要挖掘节点先行：Analysis.Itemsets 为空时产出空规则列表（降级不报错）。
type Node struct {
	// MinConfidence 最小置信度阈值
	MinConfidence float64
}

func (n *Node) Name() string        { return "rule.generate" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindRules }

func (n *Node) Process(
	_ context.Context,
	_ *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	gen := &Generator{MinConfidence: n.MinConfidence}
	a.Rules = gen.Generate(a.Itemsets, a.Transactions)
	return a, nil
}

var _ pipeline.Node = (*Node)(nil)

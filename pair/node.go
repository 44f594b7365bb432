package pair

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// Node 将 Finder 封装为 Pipeline 节点，产出写入 Analysis.Pairs。
// 只读取原始交易，不依赖挖掘节点的产出，放在规则节点前后均可。
type Node struct {
	// MinSupport 最小支持度阈值
	MinSupport float64

	// TopN 保留条数；<= 0 时取 20
	TopN int
}

func (n *Node) Name() string        { return "pair.cooccur" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindPairs }

func (n *Node) Process(
	_ context.Context,
	_ *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	finder := &Finder{MinSupport: n.MinSupport, TopN: n.TopN}
	a.Pairs = finder.Find(a.Transactions)
	return a, nil
}

var _ pipeline.Node = (*Node)(nil)

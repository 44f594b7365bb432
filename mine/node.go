package mine

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// Node 将 Miner 封装为 Pipeline 节点，产出写入 Analysis.Itemsets。
type Node struct {
	// MinSupport 最小支持度阈值
	MinSupport float64
}

func (n *Node) Name() string        { return "mine.frequent" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindMine }

func (n *Node) Process(
	_ context.Context,
	_ *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	miner := &Miner{MinSupport: n.MinSupport}
	a.Itemsets = miner.Mine(a.Transactions)
	return a, nil
}

var _ pipeline.Node = (*Node)(nil)

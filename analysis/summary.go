package analysis

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// Summarize 计算购物篮级的描述性统计。
// 纯函数：只依赖三个入参，不做任何额外查询。
// 规则条数统计的是传入的完整列表（报表截断发生在编排器，不影响这里）。
func Summarize(txns []core.Transaction, rules []core.Rule, pairs []core.ProductPair) core.Summary {
	s := core.Summary{
		TotalTransactions: len(txns),
		RuleCount:         len(rules),
		PairCount:         len(pairs),
	}

	distinct := make(map[string]struct{})
	totalSize := 0
	for _, t := range txns {
		set := t.ItemSet()
		totalSize += len(set)
		for it := range set {
			distinct[it] = struct{}{}
		}
	}
	s.UniqueItems = len(distinct)
	if len(txns) > 0 {
		s.AvgBasketSize = round2(float64(totalSize) / float64(len(txns)))
	}
	return s
}

// SummaryNode 将 Summarize 封装为 Pipeline 节点，放在链尾。
type SummaryNode struct{}

func (n *SummaryNode) Name() string        { return "summary.stats" }
func (n *SummaryNode) Kind() pipeline.Kind { return pipeline.KindSummary }

func (n *SummaryNode) Process(
	_ context.Context,
	_ *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	a.Summary = Summarize(a.Transactions, a.Rules, a.Pairs)
	return a, nil
}

var _ pipeline.Node = (*SummaryNode)(nil)

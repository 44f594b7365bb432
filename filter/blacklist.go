package filter

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// BlacklistNode 在挖掘前从交易中剔除黑名单商品。
// 购物篮分析通常会排除购物袋、赠品、停售品等 SKU，
// 否则它们会和几乎所有商品高频共现，淹没有价值的规则。
//
// 过滤产生新的交易切片，调用方传入的数据不被修改。
type BlacklistNode struct {
	// Items 黑名单商品标识列表
	Items []string
}

func (n *BlacklistNode) Name() string        { return "filter.blacklist" }
func (n *BlacklistNode) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *BlacklistNode) Process(
	_ context.Context,
	_ *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	if len(n.Items) == 0 || len(a.Transactions) == 0 {
		return a, nil
	}

	blocked := make(map[string]struct{}, len(n.Items))
	for _, it := range n.Items {
		blocked[it] = struct{}{}
	}

	out := make([]core.Transaction, 0, len(a.Transactions))
	for _, t := range a.Transactions {
		items := make([]string, 0, len(t.Items))
		for _, it := range t.Items {
			if _, ok := blocked[it]; ok {
				continue
			}
			items = append(items, it)
		}
		out = append(out, core.Transaction{ID: t.ID, Items: items})
	}
	a.Transactions = out
	return a, nil
}

var _ pipeline.Node = (*BlacklistNode)(nil)

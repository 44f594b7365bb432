package pipeline

import (
	"context"

	"github.com/rushteam/basketkit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindMine      Kind = "mine"      // 挖掘阶段：频繁项集发现
	KindFilter    Kind = "filter"    // 过滤阶段：剔除黑名单商品或不合策略的规则
	KindRules     Kind = "rules"     // 规则阶段：关联规则生成
	KindPairs     Kind = "pairs"     // 共现阶段：原始共现对统计
	KindRecommend Kind = "recommend" // 建议阶段：营销动作合成/富化
	KindSummary   Kind = "summary"   // 汇总阶段：描述性统计
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 Analysis -> 输出 Analysis”的形态，各节点只写入自己阶段的产物，
// 方便插入自定义的过滤、富化或统计节点。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		actx *core.AnalysisContext,
		a *core.Analysis,
	) (*core.Analysis, error)
}

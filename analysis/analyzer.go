package analysis

import (
	"context"
	"math"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/mine"
	"github.com/rushteam/basketkit/pair"
	"github.com/rushteam/basketkit/pipeline"
	"github.com/rushteam/basketkit/recommend"
	"github.com/rushteam/basketkit/rule"
)

// Analyzer 是一次完整购物篮分析的编排器。
//
// 固定顺序串联各阶段：
//
//	挖掘 → 规则生成 → 共现统计 → 建议合成 → 汇总
//
// 两个顺序约束必须保持：
//  1. 建议合成读取完整规则列表
//  2. 报表中的规则列表在此之后才按 lift 截断 TopN
//
// 单次分析是纯同步批计算：无 I/O、无调用间共享状态，
// 同一输入与阈值两次运行的结果逐字节一致。
type Analyzer struct {
	// Config 提供建议与截断相关默认值；为空时使用 core.DefaultMiningConfig
	Config core.MiningConfig
}

// Analyze 对一批交易执行完整分析并装配报表。
// minSupport / minConfidence 原样使用、不做范围校验：越界阈值只会产生
// 退化（空或全量）结果，不会报错，范围校验是调用方的责任。
// actx 可以为 nil（无业务上下文时）。
func (az *Analyzer) Analyze(
	ctx context.Context,
	actx *core.AnalysisContext,
	txns []core.Transaction,
	minSupport, minConfidence float64,
) (*core.Report, error) {
	cfg := az.Config
	if cfg == nil {
		cfg = &core.DefaultMiningConfig{}
	}
	if actx == nil {
		actx = &core.AnalysisContext{}
	}

	p := &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&mine.Node{MinSupport: minSupport},
			&rule.Node{MinConfidence: minConfidence},
			&pair.Node{MinSupport: minSupport, TopN: cfg.DefaultTopPairs()},
			&recommend.Node{Synthesizer: recommend.Synthesizer{
				LiftThreshold: cfg.DefaultCrossSellLift(),
				MaxCrossSell:  cfg.DefaultMaxCrossSell(),
				MaxPlacement:  cfg.DefaultMaxPlacement(),
			}},
			&SummaryNode{},
		},
	}

	a, err := p.Run(ctx, actx, core.NewAnalysis(txns))
	if err != nil {
		return nil, err
	}
	return az.buildReport(actx, a, cfg), nil
}

// buildReport 装配最终报表：规则截断 TopN、指标展示舍入、回传业务上下文。
func (az *Analyzer) buildReport(actx *core.AnalysisContext, a *core.Analysis, cfg core.MiningConfig) *core.Report {
	topRules := cfg.DefaultTopRules()
	if topRules <= 0 {
		topRules = 20
	}

	rules := a.Rules
	if len(rules) > topRules {
		rules = rules[:topRules]
	}
	reportRules := make([]core.Rule, len(rules))
	for i, r := range rules {
		r.Support = round4(r.Support)
		r.Confidence = round4(r.Confidence)
		r.Lift = round2(r.Lift)
		reportRules[i] = r
	}

	reportPairs := make([]core.ProductPair, len(a.Pairs))
	for i, p := range a.Pairs {
		p.Support = round4(p.Support)
		reportPairs[i] = p
	}

	return &core.Report{
		Period:          actx.Period,
		Catalog:         actx.Catalog,
		Rules:           reportRules,
		Pairs:           reportPairs,
		Recommendations: a.Recommendations,
		Summary:         a.Summary,
	}
}

// Analyze 是包级便捷入口：默认配置、无业务上下文。
func Analyze(ctx context.Context, txns []core.Transaction, minSupport, minConfidence float64) (*core.Report, error) {
	az := &Analyzer{}
	return az.Analyze(ctx, nil, txns, minSupport, minConfidence)
}

// round4 / round2 展示舍入：支持度与置信度保留 4 位小数，lift 保留 2 位。
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

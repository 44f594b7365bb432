// Package basketkit 是一个购物篮分析工具包（Market-Basket Kit）。
//
// 设计要点：
// - Pipeline-first: 分析流程通过 Node 串联（Mine → Rules → Pairs → Recommend → Summary）
// - 纯批计算: 单次分析无 I/O、无共享可变状态，同一输入与阈值的结果完全可复现
// - Node 可扩展: 自定义 Node 即可插拔扩展（黑名单过滤、CEL 规则筛选、特征富化均以 Node 形态提供）
package basketkit

import "github.com/rushteam/basketkit/pipeline"

// 轻量 facade：便于用户直接 import "basketkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindMine      = pipeline.KindMine
	KindFilter    = pipeline.KindFilter
	KindRules     = pipeline.KindRules
	KindPairs     = pipeline.KindPairs
	KindRecommend = pipeline.KindRecommend
	KindSummary   = pipeline.KindSummary
)

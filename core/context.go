package core

import "github.com/rushteam/basketkit/pkg/utils"

// AnalysisContext 承载一次分析的业务上下文，贯穿整个 Pipeline 透传。
// 核心只回传不解读：Period 与 Catalog 原样出现在报表里。
type AnalysisContext struct {
	// Period 时间段描述，例如 "2026-Q1" 或 "2026-08-01..2026-08-31"
	Period string

	// Catalog 调用方提供的商品目录（SKU → 任意元信息），核心不解析
	Catalog map[string]any

	// Params 请求级参数，例如门店编号、渠道、debug 开关
	Params map[string]any

	// Labels 分析级标签，可驱动节点行为并用于 explain
	Labels map[string]utils.Label
}

// PutLabel 写入分析级 Label。
func (actx *AnalysisContext) PutLabel(key string, lbl utils.Label) {
	if actx.Labels == nil {
		actx.Labels = make(map[string]utils.Label)
	}
	if old, ok := actx.Labels[key]; ok {
		actx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	actx.Labels[key] = lbl
}

// GetLabel 获取分析级 Label。
func (actx *AnalysisContext) GetLabel(key string) (utils.Label, bool) {
	if actx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := actx.Labels[key]
	return lbl, ok
}

package core

import "github.com/rushteam/basketkit/pkg/utils"

// RecommendationType 标记建议的来源类型。
type RecommendationType string

const (
	// RecommendationCrossSell 交叉销售建议：来自高 lift 关联规则
	RecommendationCrossSell RecommendationType = "cross_sell"
	// RecommendationPlacement 商品陈列建议：来自高支持度共现对
	RecommendationPlacement RecommendationType = "product_placement"
)

// Recommendation 是一条可读的营销动作建议。
// Message 面向人阅读；Metrics 保留支撑该建议的数值指标；
// Labels 用于解释与观测；Meta 承载富化后的商品属性等附加信息。
type Recommendation struct {
	Type    RecommendationType     `json:"type"`
	Message string                 `json:"message"`
	Items   []string               `json:"items"`
	Metrics map[string]float64     `json:"metrics"`
	Labels  map[string]utils.Label `json:"labels,omitempty"`
	Meta    map[string]any         `json:"meta,omitempty"`
}

// PutLabel 写入 Label；同名 key 按默认 Merge 规则累积。
func (r *Recommendation) PutLabel(key string, lbl utils.Label) {
	if r.Labels == nil {
		r.Labels = make(map[string]utils.Label)
	}
	if old, ok := r.Labels[key]; ok {
		r.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	r.Labels[key] = lbl
}

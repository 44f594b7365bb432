package core

// Rule 是一条关联规则：前件（单商品）⇒ 后件。
//   - Support: 父项集（前件 ∪ 后件）的支持度
//   - Confidence: support(父项集) / support(前件)
//   - Lift: confidence / support(后件)，后件支持度为 0 时记 0
//
// 三个指标在生成与排序阶段均保留全精度，报表装配时才做展示舍入。
type Rule struct {
	Antecedent Itemset `json:"antecedent"`
	Consequent Itemset `json:"consequent"`
	Support    float64 `json:"support"`
	Confidence float64 `json:"confidence"`
	Lift       float64 `json:"lift"`
}

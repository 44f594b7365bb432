package core

// Summary 是购物篮级的描述性统计。
type Summary struct {
	// TotalTransactions 交易总数
	TotalTransactions int `json:"total_transactions"`
	// UniqueItems 全部交易中出现过的 distinct 商品数
	UniqueItems int `json:"unique_items"`
	// AvgBasketSize 平均篮大小（每笔交易去重后商品数的均值，无交易时为 0）
	AvgBasketSize float64 `json:"avg_basket_size"`
	// RuleCount 生成的规则条数（截断前的完整条数）
	RuleCount int `json:"rule_count"`
	// PairCount 保留的共现对条数
	PairCount int `json:"pair_count"`
}

// Report 是一次分析的最终产物，由编排器构建一次后返回，
// 核心不做持久化；Period 与 Catalog 原样回传调用方的输入。
type Report struct {
	Period          string           `json:"period,omitempty"`
	Catalog         map[string]any   `json:"catalog,omitempty"`
	Rules           []Rule           `json:"rules"`
	Pairs           []ProductPair    `json:"pairs"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
}

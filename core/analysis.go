package core

// Analysis 是 Pipeline 各节点间传递的载体：原始交易加各阶段产物。
// 每次分析调用新建一个 Analysis，节点只写入自己阶段负责的字段；
// 调用之间不共享任何可变状态（共现计数等中间结构都是节点内的局部变量）。
type Analysis struct {
	Transactions []Transaction

	// Itemsets 频繁项集表（挖掘阶段产出）
	Itemsets *ItemsetTable
	// Rules 完整规则列表，按 lift 降序（规则阶段产出）
	Rules []Rule
	// Pairs 共现对列表，按支持度降序（共现阶段产出）
	Pairs []ProductPair
	// Recommendations 营销建议（建议阶段产出，读取完整规则列表）
	Recommendations []Recommendation
	// Summary 汇总统计（汇总阶段产出）
	Summary Summary
}

// NewAnalysis 以一批交易为输入创建载体。
func NewAnalysis(txns []Transaction) *Analysis {
	return &Analysis{Transactions: txns}
}

package rule

import (
	"sort"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/mine"
)

// Generator 从频繁项集表推导单前件关联规则。
//
// 对表中每个大小 >= 2 的项集，依次把每个成员作为前件（1-项集）、
// 其余成员作为后件：
//   confidence = support(项集) / support(前件)
//   lift       = confidence / support(后件)，后件支持度为 0 时记 0
//
// 前件支持度在同一张表里查：查不到或为 0 时该候选直接跳过（无法算置信度），
// 不视为错误。后件则可能因为没过最小支持度而不在表中，
// 所以其支持度直接对交易集重算，不走表。
//
// 当前实现只支持单商品前件；若将来引入大小 >= 3 的项集，
// 前件枚举需要推广到全部非空真子集，这里未做预留。
type Generator struct {
	// MinConfidence 最小置信度阈值，原样使用、不做范围校验
	MinConfidence float64
}

// Generate 生成按 lift 降序排列的规则列表。
// 稳定排序、不加次级排序键：同 lift 的规则保持出现顺序
// （表的遍历顺序是确定的，所以结果也是确定的）。
// 指标保留全精度，展示舍入由报表装配负责。
func (g *Generator) Generate(table *core.ItemsetTable, txns []core.Transaction) []core.Rule {
	if table == nil {
		return nil
	}

	rules := make([]core.Rule, 0)
	for _, is := range table.Itemsets() {
		if is.Size() < 2 {
			continue
		}
		sup, _ := table.Support(is)

		for _, item := range is.Items() {
			antecedent := core.NewItemset(item)
			antSup, ok := table.Support(antecedent)
			if !ok || antSup == 0 {
				continue
			}

			confidence := sup / antSup
			if confidence < g.MinConfidence {
				continue
			}

			consequent := is.Minus(item)
			consSup := mine.Support(txns, consequent)
			lift := 0.0
			if consSup > 0 {
				lift = confidence / consSup
			}

			rules = append(rules, core.Rule{
				Antecedent: antecedent,
				Consequent: consequent,
				Support:    sup,
				Confidence: confidence,
				Lift:       lift,
			})
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Lift > rules[j].Lift
	})
	return rules
}

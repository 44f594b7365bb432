package mine

import (
	"sort"

	"github.com/rushteam/basketkit/core"
)

// Support 计算项集的支持度：包含该项集全部商品的交易占比。
// 空交易列表返回 0（不做除零）；按序累加，交易顺序不影响结果。
func Support(txns []core.Transaction, is core.Itemset) float64 {
	if len(txns) == 0 {
		return 0
	}
	count := 0
	for _, t := range txns {
		if t.Contains(is) {
			count++
		}
	}
	return float64(count) / float64(len(txns))
}

// DistinctItems 返回全部交易中出现过的商品标识。
// 输出排序后返回：候选枚举顺序确定，同一输入的挖掘结果才能完全可复现。
func DistinctItems(txns []core.Transaction) []string {
	seen := make(map[string]struct{})
	for _, t := range txns {
		for _, it := range t.Items {
			seen[it] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for it := range seen {
		out = append(out, it)
	}
	sort.Strings(out)
	return out
}

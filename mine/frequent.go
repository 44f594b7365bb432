package mine

import "github.com/rushteam/basketkit/core"

// Miner 是频繁项集挖掘器的 level-2 变体：只枚举大小 1 与 2 的候选。
//
// 算法流程：
//  1. 收集全部交易中出现过的 distinct 商品（排序，保证枚举顺序确定）
//  2. 逐个单品计算支持度，达到 MinSupport 的进表
//  3. 对每一个无序商品对（组合只枚举一次）计算支持度，同一阈值筛选进表
//
// 与经典逐层算法的差异：
//  - 不支持大小 >= 3 的项集
//  - 不做反单调剪枝（用 (k-1) 层频繁项集生成 k 层候选），因为从不越过 k=2
//
// 复杂度：单品 O(U)、商品对 O(U²)，每个候选一次 O(T) 扫描，总计 O(U²·T)。
// 适用于 distinct 商品数在数百量级的目录，不是大目录的通用方案。
type Miner struct {
	// MinSupport 最小支持度阈值，原样使用、不做范围校验：
	// 越界值（如 1.1）只会得到空表，不会报错
	MinSupport float64
}

// Mine 挖掘全部达到阈值的 1-项集与 2-项集，返回只读的频繁项集表。
func (m *Miner) Mine(txns []core.Transaction) *core.ItemsetTable {
	table := core.NewItemsetTable()
	items := DistinctItems(txns)

	for _, it := range items {
		is := core.NewItemset(it)
		if s := Support(txns, is); s >= m.MinSupport {
			table.Put(is, s)
		}
	}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			is := core.NewItemset(items[i], items[j])
			if s := Support(txns, is); s >= m.MinSupport {
				table.Put(is, s)
			}
		}
	}

	return table
}

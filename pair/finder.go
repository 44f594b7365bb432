package pair

import (
	"sort"
	"strings"

	"github.com/rushteam/basketkit/core"
)

// pairSep 拼接共现对规范化 key 的分隔符，与商品标识不冲突的控制字符。
const pairSep = "\x1f"

// Finder 直接在原始交易上统计两两共现，与频繁项集挖掘互相独立：
// 这是一次完整的成对扫描，不复用挖掘器的中间结果，
// 没过最小支持度筛选的单品仍可能贡献共现对。
type Finder struct {
	// MinSupport 最小支持度阈值，原样使用、不做范围校验
	MinSupport float64

	// TopN 保留条数；<= 0 时取 20
	TopN int
}

// Count 统计全部交易内的原始共现计数。
// 交易内先去重，再枚举每一个无序商品对；key 为两个商品排序拼接后的
// 规范形式，{A,B} 与 {B,A} 归并为同一条。
// 计数器是本次调用新建的局部结构，调用之间绝不共享。
func Count(txns []core.Transaction) map[string]int {
	counts := make(map[string]int)
	for _, t := range txns {
		set := t.ItemSet()
		items := make([]string, 0, len(set))
		for it := range set {
			items = append(items, it)
		}
		sort.Strings(items)
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				counts[items[i]+pairSep+items[j]]++
			}
		}
	}
	return counts
}

// Find 返回按支持度降序排列、截断到 TopN 的共现对列表。
// 先把计数器的 key 排序固定遍历顺序（map 遍历无序），
// 再稳定排序：同支持度的对按商品字典序输出，结果完全可复现。
func (f *Finder) Find(txns []core.Transaction) []core.ProductPair {
	if len(txns) == 0 {
		return nil
	}

	counts := Count(txns)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := float64(len(txns))
	pairs := make([]core.ProductPair, 0, len(keys))
	for _, k := range keys {
		count := counts[k]
		support := float64(count) / total
		if support < f.MinSupport {
			continue
		}
		ab := strings.SplitN(k, pairSep, 2)
		pairs = append(pairs, core.ProductPair{
			ItemA:   ab[0],
			ItemB:   ab[1],
			Count:   count,
			Support: support,
		})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Support > pairs[j].Support
	})

	topN := f.TopN
	if topN <= 0 {
		topN = 20
	}
	if len(pairs) > topN {
		pairs = pairs[:topN]
	}
	return pairs
}

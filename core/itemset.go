package core

import (
	"encoding/json"
	"sort"
	"strings"
)

// itemsetSep 用于拼接规范化 key，选用控制字符避免与商品标识冲突。
const itemsetSep = "\x1f"

// Itemset 是一个无序、去重的商品集合（本引擎中大小为 1 或 2）。
// 两个 Itemset 相等当且仅当成员集合相等，与构造时的传入顺序无关：
// 内部保存排序去重后的规范形式，Key() 可直接作为 map key 使用。
type Itemset struct {
	items []string
}

// NewItemset 构造 Itemset：成员去重并排序为规范形式。
func NewItemset(items ...string) Itemset {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	sort.Strings(out)
	return Itemset{items: out}
}

// Key 返回规范化 key，集合相等等价于 Key 相等。
func (is Itemset) Key() string {
	return strings.Join(is.items, itemsetSep)
}

// Items 返回排序后的成员副本。
func (is Itemset) Items() []string {
	out := make([]string, len(is.items))
	copy(out, is.items)
	return out
}

// Size 返回成员个数。
func (is Itemset) Size() int {
	return len(is.items)
}

// Has 判断成员是否存在。
func (is Itemset) Has(item string) bool {
	for _, it := range is.items {
		if it == item {
			return true
		}
	}
	return false
}

// Minus 返回去掉 item 后的新 Itemset，用于从父项集推导规则后件。
func (is Itemset) Minus(item string) Itemset {
	out := make([]string, 0, len(is.items))
	for _, it := range is.items {
		if it != item {
			out = append(out, it)
		}
	}
	return Itemset{items: out}
}

func (is Itemset) String() string {
	return strings.Join(is.items, ",")
}

// MarshalJSON 将 Itemset 序列化为排序后的字符串数组。
func (is Itemset) MarshalJSON() ([]byte, error) {
	if is.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(is.items)
}

// UnmarshalJSON 从字符串数组反序列化并重新规范化。
func (is *Itemset) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*is = NewItemset(items...)
	return nil
}

// ItemsetTable 是频繁项集表：Itemset → 支持度，一次挖掘构建、之后只读。
// 除支持度查询外还保留插入顺序：Go 的 map 遍历顺序随机，
// 规则生成需要按确定顺序遍历项集才能保证同一输入产出逐字节一致的结果。
type ItemsetTable struct {
	supports map[string]float64
	order    []Itemset
}

// NewItemsetTable 创建空表。
func NewItemsetTable() *ItemsetTable {
	return &ItemsetTable{supports: make(map[string]float64)}
}

// Put 写入一个项集及其支持度；重复写入同一项集只更新支持度，不重复记序。
func (t *ItemsetTable) Put(is Itemset, support float64) {
	key := is.Key()
	if _, ok := t.supports[key]; !ok {
		t.order = append(t.order, is)
	}
	t.supports[key] = support
}

// Support 查询项集的支持度，第二个返回值表示项集是否在表中。
func (t *ItemsetTable) Support(is Itemset) (float64, bool) {
	s, ok := t.supports[is.Key()]
	return s, ok
}

// Len 返回表中项集个数。
func (t *ItemsetTable) Len() int {
	return len(t.order)
}

// Itemsets 按插入顺序返回全部项集。
func (t *ItemsetTable) Itemsets() []Itemset {
	out := make([]Itemset, len(t.order))
	copy(out, t.order)
	return out
}

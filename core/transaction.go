package core

// Transaction 表示一笔交易（订单/小票）：交易标识加一组商品标识。
// 商品标识是任意字符串 token（通常为 SKU）；同一交易内的重复商品
// 不参与计算，语义上视为集合。
// Transaction 由调用方构造并持有，单次分析过程中不会被修改。
type Transaction struct {
	ID    string   `json:"id"`
	Items []string `json:"items"`
}

// ItemSet 返回交易内去重后的商品集合。
func (t Transaction) ItemSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t.Items))
	for _, it := range t.Items {
		set[it] = struct{}{}
	}
	return set
}

// Contains 判断交易是否包含 itemset 的全部商品（超集判断）。
func (t Transaction) Contains(is Itemset) bool {
	set := t.ItemSet()
	for _, item := range is.items {
		if _, ok := set[item]; !ok {
			return false
		}
	}
	return true
}

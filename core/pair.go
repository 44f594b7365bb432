package core

// ProductPair 是一对不同商品的原始共现统计。
// 与频繁项集表互相独立：没过最小支持度筛选的商品仍可能出现在这里，
// 频繁项集表中的二元项集也不会被共现统计复用。
// ItemA/ItemB 为规范顺序（字典序），{A,B} 与 {B,A} 归并为同一条。
type ProductPair struct {
	ItemA   string  `json:"item_a"`
	ItemB   string  `json:"item_b"`
	Count   int     `json:"count"`
	Support float64 `json:"support"`
}

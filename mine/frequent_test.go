package mine

import (
	"testing"

	"github.com/rushteam/basketkit/core"
)

func TestMiner_Mine(t *testing.T) {
	txns := groceryTxns()
	miner := &Miner{MinSupport: 0.2}
	table := miner.Mine(txns)

	// 5 个单品 + 7 个达阈商品对
	if table.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", table.Len())
	}

	tests := []struct {
		name string
		is   core.Itemset
		want float64
	}{
		{"bread", core.NewItemset("bread"), 0.8},
		{"milk", core.NewItemset("milk"), 0.6},
		{"cheese 正好压线", core.NewItemset("cheese"), 0.2},
		{"bread+milk", core.NewItemset("bread", "milk"), 0.4},
		{"milk+butter", core.NewItemset("milk", "butter"), 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Support(tt.is)
			if !ok {
				t.Fatalf("Support(%v) 不在表中", tt.is)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("Support(%v) = %v, want %v", tt.is, got, tt.want)
			}
		})
	}

	// 从未共现的对不进表
	if _, ok := table.Support(core.NewItemset("bread", "cheese")); ok {
		t.Error("bread+cheese 支持度为 0，不应进表")
	}
}

func TestMiner_Mine_ThresholdOutOfRange(t *testing.T) {
	// 越界阈值不报错，只得到空表
	miner := &Miner{MinSupport: 1.1}
	table := miner.Mine(groceryTxns())
	if table.Len() != 0 {
		t.Errorf("MinSupport=1.1 时 Len() = %d, want 0", table.Len())
	}
}

func TestMiner_Mine_EmptyTransactions(t *testing.T) {
	miner := &Miner{MinSupport: 0.1}
	table := miner.Mine(nil)
	if table == nil || table.Len() != 0 {
		t.Errorf("空交易应得到非 nil 空表, got %v", table)
	}
}

func TestMiner_Mine_Deterministic(t *testing.T) {
	txns := groceryTxns()
	miner := &Miner{MinSupport: 0.2}

	a := miner.Mine(txns)
	b := miner.Mine(txns)
	if a.Len() != b.Len() {
		t.Fatalf("两次挖掘条数不同: %d vs %d", a.Len(), b.Len())
	}

	// 表内顺序与支持度逐条一致
	as, bs := a.Itemsets(), b.Itemsets()
	for i := range as {
		if as[i].Key() != bs[i].Key() {
			t.Errorf("第 %d 条项集顺序不同: %v vs %v", i, as[i], bs[i])
		}
		sa, _ := a.Support(as[i])
		sb, _ := b.Support(bs[i])
		if sa != sb {
			t.Errorf("项集 %v 两次支持度不同: %v vs %v", as[i], sa, sb)
		}
	}
}

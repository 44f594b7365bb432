package mine

import (
	"math"
	"reflect"
	"testing"

	"github.com/rushteam/basketkit/core"
)

// 五笔杂货交易，贯穿挖掘相关测试的基准数据。
func groceryTxns() []core.Transaction {
	return []core.Transaction{
		{ID: "t1", Items: []string{"bread", "milk", "eggs"}},
		{ID: "t2", Items: []string{"bread", "butter"}},
		{ID: "t3", Items: []string{"milk", "eggs", "cheese"}},
		{ID: "t4", Items: []string{"bread", "milk", "butter"}},
		{ID: "t5", Items: []string{"bread", "eggs"}},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSupport(t *testing.T) {
	txns := groceryTxns()

	tests := []struct {
		name string
		txns []core.Transaction
		is   core.Itemset
		want float64
	}{
		{"单品 bread", txns, core.NewItemset("bread"), 0.8},
		{"单品 milk", txns, core.NewItemset("milk"), 0.6},
		{"单品 cheese", txns, core.NewItemset("cheese"), 0.2},
		{"商品对 bread+milk", txns, core.NewItemset("bread", "milk"), 0.4},
		{"从未共现的对", txns, core.NewItemset("bread", "cheese"), 0},
		{"未出现的商品", txns, core.NewItemset("caviar"), 0},
		{"空交易列表返回 0", nil, core.NewItemset("bread"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Support(tt.txns, tt.is); !almostEqual(got, tt.want) {
				t.Errorf("Support(%v) = %v, want %v", tt.is, got, tt.want)
			}
		})
	}
}

func TestSupport_OrderIndependent(t *testing.T) {
	txns := groceryTxns()
	reversed := make([]core.Transaction, len(txns))
	for i, tx := range txns {
		reversed[len(txns)-1-i] = tx
	}

	is := core.NewItemset("bread", "milk")
	if a, b := Support(txns, is), Support(reversed, is); !almostEqual(a, b) {
		t.Errorf("交易顺序影响了支持度: %v vs %v", a, b)
	}
}

func TestDistinctItems(t *testing.T) {
	got := DistinctItems(groceryTxns())
	want := []string{"bread", "butter", "cheese", "eggs", "milk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctItems() = %v, want %v", got, want)
	}
}

func TestDistinctItems_Empty(t *testing.T) {
	if got := DistinctItems(nil); len(got) != 0 {
		t.Errorf("DistinctItems(nil) = %v, want 空列表", got)
	}
}

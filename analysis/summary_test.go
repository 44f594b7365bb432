package analysis

import (
	"testing"

	"github.com/rushteam/basketkit/core"
)

func TestSummarize(t *testing.T) {
	txns := []core.Transaction{
		{ID: "t1", Items: []string{"bread", "milk", "eggs"}},
		{ID: "t2", Items: []string{"bread", "butter"}},
		{ID: "t3", Items: []string{"milk", "eggs", "cheese"}},
		{ID: "t4", Items: []string{"bread", "milk", "butter"}},
		{ID: "t5", Items: []string{"bread", "eggs"}},
	}
	rules := make([]core.Rule, 14)
	pairs := make([]core.ProductPair, 4)

	s := Summarize(txns, rules, pairs)

	if s.TotalTransactions != 5 {
		t.Errorf("TotalTransactions = %d, want 5", s.TotalTransactions)
	}
	if s.UniqueItems != 5 {
		t.Errorf("UniqueItems = %d, want 5", s.UniqueItems)
	}
	// (3+2+3+3+2)/5 = 2.6
	if s.AvgBasketSize != 2.6 {
		t.Errorf("AvgBasketSize = %v, want 2.6", s.AvgBasketSize)
	}
	if s.RuleCount != 14 || s.PairCount != 4 {
		t.Errorf("RuleCount/PairCount = %d/%d, want 14/4", s.RuleCount, s.PairCount)
	}
}

func TestSummarize_DedupWithinBasket(t *testing.T) {
	// 篮子大小按去重后的商品数计
	txns := []core.Transaction{
		{ID: "t1", Items: []string{"a", "a", "b"}},
	}
	s := Summarize(txns, nil, nil)
	if s.AvgBasketSize != 2 {
		t.Errorf("AvgBasketSize = %v, want 2", s.AvgBasketSize)
	}
	if s.UniqueItems != 2 {
		t.Errorf("UniqueItems = %d, want 2", s.UniqueItems)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, nil)
	if s.TotalTransactions != 0 || s.UniqueItems != 0 || s.AvgBasketSize != 0 {
		t.Errorf("空输入的汇总应全为零值: %+v", s)
	}
}

package dsl

import (
	"testing"

	"github.com/rushteam/basketkit/core"
)

func TestEval_Rule(t *testing.T) {
	rule := &core.Rule{
		Antecedent: core.NewItemset("bread"),
		Consequent: core.NewItemset("milk"),
		Support:    0.4, Confidence: 0.5, Lift: 2.5,
	}
	actx := &core.AnalysisContext{
		Period: "2026-08",
		Params: map[string]any{"store_id": "store-001"},
	}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"数值比较", "rule.lift > 2.0", true},
		{"数值比较不成立", "rule.confidence >= 0.6", false},
		{"逻辑组合", "rule.lift > 2.0 && rule.support >= 0.4", true},
		{"前件成员判断", `"bread" in rule.antecedent`, true},
		{"后件成员判断", `"eggs" in rule.consequent`, false},
		{"上下文变量", `actx.period == "2026-08"`, true},
		{"上下文参数", `actx.params.store_id == "store-001"`, true},
		{"空表达式恒真", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRuleEval(rule, actx).Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEval_Pair(t *testing.T) {
	pair := &core.ProductPair{ItemA: "bread", ItemB: "milk", Count: 3, Support: 0.3}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"支持度与计数", "pair.support >= 0.2 && pair.count >= 3", true},
		{"商品匹配", `pair.item_a == "bread"`, true},
		{"计数不足", "pair.count > 3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPairEval(pair, nil).Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEval_Errors(t *testing.T) {
	rule := &core.Rule{
		Antecedent: core.NewItemset("bread"),
		Consequent: core.NewItemset("milk"),
		Lift:       2.5,
	}

	// 语法错误
	if _, err := NewRuleEval(rule, nil).Evaluate("rule.lift >"); err == nil {
		t.Error("语法错误的表达式应报错")
	}

	// 非布尔返回值
	if _, err := NewRuleEval(rule, nil).Evaluate("rule.lift + 1.0"); err == nil {
		t.Error("非布尔表达式应报错")
	}
}

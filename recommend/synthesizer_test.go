package recommend

import (
	"fmt"
	"testing"

	"github.com/rushteam/basketkit/core"
)

func liftRule(ant, cons string, lift float64) core.Rule {
	return core.Rule{
		Antecedent: core.NewItemset(ant),
		Consequent: core.NewItemset(cons),
		Support:    0.2, Confidence: 0.5, Lift: lift,
	}
}

func TestSynthesizer_Synthesize(t *testing.T) {
	rules := []core.Rule{
		liftRule("cheese", "wine", 3.0),
		liftRule("chips", "salsa", 2.5),
		liftRule("bread", "milk", 0.8),
	}
	pairs := []core.ProductPair{
		{ItemA: "bread", ItemB: "milk", Count: 4, Support: 0.4},
		{ItemA: "bread", ItemB: "eggs", Count: 3, Support: 0.3},
	}

	s := &Synthesizer{}
	recs := s.Synthesize(rules, pairs)

	// 2 条交叉销售 + 2 条陈列，交叉销售块在前
	if len(recs) != 4 {
		t.Fatalf("len(recs) = %d, want 4", len(recs))
	}
	for i, rec := range recs[:2] {
		if rec.Type != core.RecommendationCrossSell {
			t.Errorf("第 %d 条 Type = %s, want cross_sell", i, rec.Type)
		}
	}
	for i, rec := range recs[2:] {
		if rec.Type != core.RecommendationPlacement {
			t.Errorf("第 %d 条 Type = %s, want product_placement", i+2, rec.Type)
		}
	}

	// 交叉销售沿用规则列表的既有顺序（lift 降序）
	if recs[0].Metrics["lift"] != 3.0 || recs[1].Metrics["lift"] != 2.5 {
		t.Errorf("交叉销售顺序错误: %v, %v", recs[0].Metrics, recs[1].Metrics)
	}
	if recs[0].Labels["source"].Value != "rule" || recs[2].Labels["source"].Value != "pair" {
		t.Errorf("source 标签错误: %+v", recs)
	}
}

func TestSynthesizer_Synthesize_StrictThreshold(t *testing.T) {
	// lift 恰等于门槛的规则不产出建议（严格大于）
	rules := []core.Rule{liftRule("a", "b", 2.0)}

	s := &Synthesizer{LiftThreshold: 2.0}
	recs := s.Synthesize(rules, nil)
	if len(recs) != 0 {
		t.Errorf("len(recs) = %d, want 0", len(recs))
	}
}

func TestSynthesizer_Synthesize_Caps(t *testing.T) {
	rules := make([]core.Rule, 0, 8)
	for i := 0; i < 8; i++ {
		rules = append(rules, liftRule(fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i), 3.0))
	}
	pairs := make([]core.ProductPair, 0, 6)
	for i := 0; i < 6; i++ {
		pairs = append(pairs, core.ProductPair{
			ItemA: fmt.Sprintf("x%d", i), ItemB: fmt.Sprintf("y%d", i),
			Count: 2, Support: 0.2,
		})
	}

	// 默认上限 5 / 3
	s := &Synthesizer{}
	if recs := s.Synthesize(rules, pairs); len(recs) != 8 {
		t.Errorf("默认上限下 len(recs) = %d, want 8", len(recs))
	}

	// 自定义上限
	s = &Synthesizer{MaxCrossSell: 2, MaxPlacement: 1}
	if recs := s.Synthesize(rules, pairs); len(recs) != 3 {
		t.Errorf("自定义上限下 len(recs) = %d, want 3", len(recs))
	}
}

func TestSynthesizer_Synthesize_Empty(t *testing.T) {
	s := &Synthesizer{}
	if recs := s.Synthesize(nil, nil); len(recs) != 0 {
		t.Errorf("len(recs) = %d, want 0", len(recs))
	}
}

package recommend

import (
	"fmt"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pkg/utils"
)

// Synthesizer 把高 lift 规则与高支持度共现对转成可读的营销动作。
//
// 选取逻辑：
//  1. 规则列表里 lift 严格大于门槛的，按既有 lift 降序取前 MaxCrossSell 条
//     作为交叉销售建议（读取的是截断前的完整规则列表）
//  2. 共现对列表（已按支持度排序）取前 MaxPlacement 条作为陈列建议
//
// 两类建议之间不做统一排序也不去重：输出固定为交叉销售块在前、陈列块在后。
type Synthesizer struct {
	// LiftThreshold 交叉销售建议的 lift 门槛（严格大于）；<= 0 时取 2.0
	LiftThreshold float64

	// MaxCrossSell 交叉销售建议条数上限；<= 0 时取 5
	MaxCrossSell int

	// MaxPlacement 陈列建议条数上限；<= 0 时取 3
	MaxPlacement int
}

// Synthesize 生成建议列表。
func (s *Synthesizer) Synthesize(rules []core.Rule, pairs []core.ProductPair) []core.Recommendation {
	liftThreshold := s.LiftThreshold
	if liftThreshold <= 0 {
		liftThreshold = 2.0
	}
	maxCrossSell := s.MaxCrossSell
	if maxCrossSell <= 0 {
		maxCrossSell = 5
	}
	maxPlacement := s.MaxPlacement
	if maxPlacement <= 0 {
		maxPlacement = 3
	}

	out := make([]core.Recommendation, 0, maxCrossSell+maxPlacement)

	crossSell := 0
	for i := range rules {
		if crossSell >= maxCrossSell {
			break
		}
		r := rules[i]
		if r.Lift <= liftThreshold {
			continue
		}
		rec := core.Recommendation{
			Type: core.RecommendationCrossSell,
			Message: fmt.Sprintf(
				"Customers who buy %s are %.2fx more likely to also buy %s (confidence %.2f): recommend it at checkout or bundle the two",
				r.Antecedent, r.Lift, r.Consequent, r.Confidence,
			),
			Items: append(r.Antecedent.Items(), r.Consequent.Items()...),
			Metrics: map[string]float64{
				"lift":       r.Lift,
				"confidence": r.Confidence,
			},
		}
		rec.PutLabel("source", utils.Label{Value: "rule", Source: "recommend"})
		out = append(out, rec)
		crossSell++
	}

	placement := 0
	for i := range pairs {
		if placement >= maxPlacement {
			break
		}
		p := pairs[i]
		rec := core.Recommendation{
			Type: core.RecommendationPlacement,
			Message: fmt.Sprintf(
				"%s and %s appear together in %.1f%% of baskets: consider placing them side by side",
				p.ItemA, p.ItemB, p.Support*100,
			),
			Items: []string{p.ItemA, p.ItemB},
			Metrics: map[string]float64{
				"support": p.Support,
			},
		}
		rec.PutLabel("source", utils.Label{Value: "pair", Source: "recommend"})
		out = append(out, rec)
		placement++
	}

	return out
}

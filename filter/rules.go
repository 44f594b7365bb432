package filter

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
	"github.com/rushteam/basketkit/pkg/dsl"
)

// RulesNode 用 CEL 表达式筛选已生成的规则，放在规则节点之后、建议节点之前。
//
// 示例表达式：
//   - rule.lift > 2.0 && rule.confidence >= 0.5
//   - rule.support >= 0.2
//   - "bread" in rule.antecedent
//
// 表达式为空时不过滤；单条规则求值出错按“不保留”处理，不中断流程。
type RulesNode struct {
	// Expr CEL 表达式，返回布尔值
	Expr string
}

func (n *RulesNode) Name() string        { return "filter.rules" }
func (n *RulesNode) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *RulesNode) Process(
	_ context.Context,
	actx *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	if n.Expr == "" || len(a.Rules) == 0 {
		return a, nil
	}

	kept := make([]core.Rule, 0, len(a.Rules))
	for i := range a.Rules {
		r := a.Rules[i]
		ok, err := dsl.NewRuleEval(&r, actx).Evaluate(n.Expr)
		if err != nil {
			continue
		}
		if ok {
			kept = append(kept, r)
		}
	}
	a.Rules = kept
	return a, nil
}

var _ pipeline.Node = (*RulesNode)(nil)

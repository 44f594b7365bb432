package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/basketkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("rule", cel.DynType),
		cel.Variable("pair", cel.DynType),
		cel.Variable("actx", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是规则/共现对筛选的 DSL 解释器，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：rule.lift > 2.0 / rule.confidence >= 0.5
//   - 逻辑：rule.lift > 2.0 && rule.support >= 0.1
//   - 成员："bread" in rule.antecedent
//   - 共现对：pair.support >= 0.2 && pair.count >= 3
//   - 上下文：actx.period == "2026-Q1"
type Eval struct {
	rule *core.Rule
	pair *core.ProductPair
	actx *core.AnalysisContext
	env  *cel.Env
}

// NewRuleEval 创建针对单条规则的解释器。
func NewRuleEval(rule *core.Rule, actx *core.AnalysisContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{rule: rule, actx: actx, env: env}
}

// NewPairEval 创建针对单个共现对的解释器。
func NewPairEval(pair *core.ProductPair, actx *core.AnalysisContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{pair: pair, actx: actx, env: env}
}

// Evaluate 解析并执行 DSL 表达式，返回布尔结果。
// 空表达式视为恒真；表达式必须返回布尔值。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	input := map[string]interface{}{
		"rule": map[string]interface{}{},
		"pair": map[string]interface{}{},
		"actx": map[string]interface{}{},
	}

	if e.rule != nil {
		input["rule"] = map[string]interface{}{
			"antecedent": e.rule.Antecedent.Items(),
			"consequent": e.rule.Consequent.Items(),
			"support":    e.rule.Support,
			"confidence": e.rule.Confidence,
			"lift":       e.rule.Lift,
		}
	}

	if e.pair != nil {
		input["pair"] = map[string]interface{}{
			"item_a":  e.pair.ItemA,
			"item_b":  e.pair.ItemB,
			"count":   e.pair.Count,
			"support": e.pair.Support,
		}
	}

	if e.actx != nil {
		input["actx"] = map[string]interface{}{
			"period": e.actx.Period,
			"params": e.actx.Params,
		}
	}

	return input
}

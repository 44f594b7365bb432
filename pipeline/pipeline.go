package pipeline

import (
	"context"

	"github.com/rushteam/basketkit/core"
)

// Pipeline 是 Basketkit 的核心抽象：把分析流程拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	actx *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	cur := a
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, actx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

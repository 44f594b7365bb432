package recommend

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

// Node 将 Synthesizer 封装为 Pipeline 节点，产出写入 Analysis.Recommendations。
// 必须放在规则与共现节点之后、报表截断之前：建议读取的是完整规则列表。
type Node struct {
	Synthesizer Synthesizer
}

func (n *Node) Name() string        { return "recommend.synthesize" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindRecommend }

func (n *Node) Process(
	_ context.Context,
	_ *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	a.Recommendations = n.Synthesizer.Synthesize(a.Rules, a.Pairs)
	return a, nil
}

var _ pipeline.Node = (*Node)(nil)

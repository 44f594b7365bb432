package builders

import (
	"github.com/rushteam/basketkit/analysis"
	"github.com/rushteam/basketkit/config"
	"github.com/rushteam/basketkit/filter"
	"github.com/rushteam/basketkit/mine"
	"github.com/rushteam/basketkit/pair"
	"github.com/rushteam/basketkit/pipeline"
	"github.com/rushteam/basketkit/pkg/conv"
	"github.com/rushteam/basketkit/recommend"
	"github.com/rushteam/basketkit/rule"
)

func init() {
	config.Register("filter.blacklist", BuildBlacklistNode)
	config.Register("filter.rules", BuildRulesFilterNode)
	config.Register("mine.frequent", BuildMineNode)
	config.Register("rule.generate", BuildRuleNode)
	config.Register("pair.cooccur", BuildPairNode)
	config.Register("recommend.synthesize", BuildRecommendNode)
	config.Register("summary.stats", BuildSummaryNode)
}

func BuildBlacklistNode(cfg map[string]interface{}) (pipeline.Node, error) {
	items := conv.SliceAnyToString(cfg["items"])
	if items == nil {
		items = []string{}
	}
	return &filter.BlacklistNode{Items: items}, nil
}

func BuildRulesFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &filter.RulesNode{
		Expr: conv.ConfigGet(cfg, "expr", ""),
	}, nil
}

func BuildMineNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &mine.Node{
		MinSupport: conv.ConfigGetFloat64(cfg, "min_support", 0.1),
	}, nil
}

func BuildRuleNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rule.Node{
		MinConfidence: conv.ConfigGetFloat64(cfg, "min_confidence", 0.3),
	}, nil
}

func BuildPairNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &pair.Node{
		MinSupport: conv.ConfigGetFloat64(cfg, "min_support", 0.1),
		TopN:       conv.ConfigGetInt(cfg, "top_n", 20),
	}, nil
}

func BuildRecommendNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &recommend.Node{
		Synthesizer: recommend.Synthesizer{
			LiftThreshold: conv.ConfigGetFloat64(cfg, "lift_threshold", 2.0),
			MaxCrossSell:  conv.ConfigGetInt(cfg, "max_cross_sell", 5),
			MaxPlacement:  conv.ConfigGetInt(cfg, "max_placement", 3),
		},
	}, nil
}

func BuildSummaryNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &analysis.SummaryNode{}, nil
}

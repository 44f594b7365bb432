package recommend

import (
	"context"

	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/feast"
	"github.com/rushteam/basketkit/pipeline"
	"github.com/rushteam/basketkit/pkg/utils"
)

// EnrichNode 在建议生成后补充商品属性特征（价格带/毛利/品类等），
// 数据来自 Feast 在线特征存储，供下游展示与策略过滤使用。
//
// 降级语义：Client 为空、特征列表为空或取数失败时，建议原样透传，
// 富化是可选增强，绝不让一次取数失败毁掉整个分析。
type EnrichNode struct {
	// Client Feast 客户端；为空时节点为 no-op
	Client feast.Client

	// Features 特征名称列表，例如 ["product_stats:margin", "product_stats:category"]
	Features []string

	// EntityKey 实体主键名；为空时取 "product_id"
	EntityKey string

	// Project Feast 项目名称（可选，客户端可带默认值）
	Project string
}

func (n *EnrichNode) Name() string        { return "recommend.enrich" }
func (n *EnrichNode) Kind() pipeline.Kind { return pipeline.KindRecommend }

func (n *EnrichNode) Process(
	ctx context.Context,
	_ *core.AnalysisContext,
	a *core.Analysis,
) (*core.Analysis, error) {
	if n.Client == nil || len(n.Features) == 0 || len(a.Recommendations) == 0 {
		return a, nil
	}

	entityKey := n.EntityKey
	if entityKey == "" {
		entityKey = "product_id"
	}

	// 收集建议涉及的商品（按首次出现顺序去重）
	seen := make(map[string]struct{})
	items := make([]string, 0)
	for i := range a.Recommendations {
		for _, it := range a.Recommendations[i].Items {
			if _, ok := seen[it]; ok {
				continue
			}
			seen[it] = struct{}{}
			items = append(items, it)
		}
	}
	if len(items) == 0 {
		return a, nil
	}

	entityRows := make([]map[string]interface{}, len(items))
	for i, it := range items {
		entityRows[i] = map[string]interface{}{entityKey: it}
	}

	resp, err := n.Client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
		Features:   n.Features,
		EntityRows: entityRows,
		Project:    n.Project,
	})
	if err != nil || len(resp.FeatureVectors) != len(items) {
		return a, nil
	}

	featuresByItem := make(map[string]map[string]interface{}, len(items))
	for i, it := range items {
		if len(resp.FeatureVectors[i].Values) > 0 {
			featuresByItem[it] = resp.FeatureVectors[i].Values
		}
	}

	for i := range a.Recommendations {
		rec := &a.Recommendations[i]
		for _, it := range rec.Items {
			values, ok := featuresByItem[it]
			if !ok {
				continue
			}
			if rec.Meta == nil {
				rec.Meta = make(map[string]any)
			}
			rec.Meta[it] = values
		}
		if rec.Meta != nil {
			rec.PutLabel("enriched", utils.Label{Value: "feast", Source: "enrich"})
		}
	}
	return a, nil
}

var _ pipeline.Node = (*EnrichNode)(nil)

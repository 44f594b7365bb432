package core

// MiningConfig 是挖掘与营销建议相关的配置接口，用于提供默认值。
// 注意：min_support / min_confidence 本身由调用方按次传入且不做范围校验，
// 这里只提供“调用方没有更好选择时”的默认阈值与各类条数上限。
type MiningConfig interface {
	// DefaultMinSupport 返回默认的最小支持度
	DefaultMinSupport() float64

	// DefaultMinConfidence 返回默认的最小置信度
	DefaultMinConfidence() float64

	// DefaultCrossSellLift 返回交叉销售建议的 lift 门槛
	DefaultCrossSellLift() float64

	// DefaultMaxCrossSell 返回交叉销售建议条数上限
	DefaultMaxCrossSell() int

	// DefaultMaxPlacement 返回陈列建议条数上限
	DefaultMaxPlacement() int

	// DefaultTopRules 返回报表保留的规则条数
	DefaultTopRules() int

	// DefaultTopPairs 返回共现对保留条数
	DefaultTopPairs() int
}

// DefaultMiningConfig 是默认的挖掘配置实现。
type DefaultMiningConfig struct{}

func (c *DefaultMiningConfig) DefaultMinSupport() float64 {
	return 0.1
}

func (c *DefaultMiningConfig) DefaultMinConfidence() float64 {
	return 0.3
}

func (c *DefaultMiningConfig) DefaultCrossSellLift() float64 {
	return 2.0
}

func (c *DefaultMiningConfig) DefaultMaxCrossSell() int {
	return 5
}

func (c *DefaultMiningConfig) DefaultMaxPlacement() int {
	return 3
}

func (c *DefaultMiningConfig) DefaultTopRules() int {
	return 20
}

func (c *DefaultMiningConfig) DefaultTopPairs() int {
	return 20
}

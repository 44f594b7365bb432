package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/basketkit/core"
)

// Settings 是阈值与建议条数的默认配置（YAML），实现 core.MiningConfig。
//
// 宿主服务应在启动时加载一次、整份注入分析器，而不是每次分析前重读文件：
// 分析核心只从显式参数取值，不存在进程级隐式状态。
//
// 示例 YAML：
//
//	min_support: 0.1
//	min_confidence: 0.3
//	cross_sell_lift: 2.0
//	max_cross_sell: 5
//	max_placement: 3
//	top_rules: 20
//	top_pairs: 20
//
// 未出现的字段使用 core.DefaultMiningConfig 的默认值。
type Settings struct {
	MinSupport    float64 `yaml:"min_support"`
	MinConfidence float64 `yaml:"min_confidence"`
	CrossSellLift float64 `yaml:"cross_sell_lift"`
	MaxCrossSell  int     `yaml:"max_cross_sell"`
	MaxPlacement  int     `yaml:"max_placement"`
	TopRules      int     `yaml:"top_rules"`
	TopPairs      int     `yaml:"top_pairs"`
}

// LoadSettings 从 YAML 文件加载默认配置。
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &s, nil
}

var fallback = &core.DefaultMiningConfig{}

func (s *Settings) DefaultMinSupport() float64 {
	if s.MinSupport <= 0 {
		return fallback.DefaultMinSupport()
	}
	return s.MinSupport
}

func (s *Settings) DefaultMinConfidence() float64 {
	if s.MinConfidence <= 0 {
		return fallback.DefaultMinConfidence()
	}
	return s.MinConfidence
}

func (s *Settings) DefaultCrossSellLift() float64 {
	if s.CrossSellLift <= 0 {
		return fallback.DefaultCrossSellLift()
	}
	return s.CrossSellLift
}

func (s *Settings) DefaultMaxCrossSell() int {
	if s.MaxCrossSell <= 0 {
		return fallback.DefaultMaxCrossSell()
	}
	return s.MaxCrossSell
}

func (s *Settings) DefaultMaxPlacement() int {
	if s.MaxPlacement <= 0 {
		return fallback.DefaultMaxPlacement()
	}
	return s.MaxPlacement
}

func (s *Settings) DefaultTopRules() int {
	if s.TopRules <= 0 {
		return fallback.DefaultTopRules()
	}
	return s.TopRules
}

func (s *Settings) DefaultTopPairs() int {
	if s.TopPairs <= 0 {
		return fallback.DefaultTopPairs()
	}
	return s.TopPairs
}

// 确保 Settings 实现了 core.MiningConfig 接口
var _ core.MiningConfig = (*Settings)(nil)

package analysis

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/basketkit/core"
)

// Batch 并发分析多个分段（门店/时段/渠道），每个分段一次独立的 Analyze 调用。
// 单次分析内部是纯同步计算且调用间无共享可变状态，分段之间天然可并行，
// 不需要任何协调。支持超时与限流。
type Batch struct {
	// Store 交易数据来源
	Store core.TransactionStore

	// Analyzer 分析编排器；为空时使用默认配置
	Analyzer *Analyzer

	// MinSupport / MinConfidence 应用到每个分段的阈值
	MinSupport    float64
	MinConfidence float64

	// Timeout 单个分段的超时时间（0 表示不限）
	Timeout time.Duration

	// MaxConcurrent 最大并发数（0 表示无限制）
	MaxConcurrent int
}

// Run 分析给定分段，返回 segment → 报表。
// 单个分段取数或超时失败时跳过该分段而不中断其余分段（降级语义）；
// 全部失败会得到空 map，调用方可对照入参判断缺了哪些分段。
func (b *Batch) Run(
	ctx context.Context,
	actx *core.AnalysisContext,
	segments []string,
) (map[string]*core.Report, error) {
	if b.Store == nil || len(segments) == 0 {
		return map[string]*core.Report{}, nil
	}

	az := b.Analyzer
	if az == nil {
		az = &Analyzer{}
	}

	var (
		mu      sync.Mutex
		reports = make(map[string]*core.Report, len(segments))
		eg, _   = errgroup.WithContext(ctx)
	)

	// 限流：使用 semaphore 控制并发数
	sem := make(chan struct{}, b.MaxConcurrent)
	if b.MaxConcurrent <= 0 {
		close(sem) // 无限制时直接关闭，避免阻塞
	}

	for _, seg := range segments {
		segment := seg

		eg.Go(func() error {
			if b.MaxConcurrent > 0 {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			segCtx := ctx
			if b.Timeout > 0 {
				var cancel context.CancelFunc
				segCtx, cancel = context.WithTimeout(ctx, b.Timeout)
				defer cancel()
			}

			txns, err := b.Store.GetTransactions(segCtx, segment)
			if err != nil {
				// 取数失败时跳过该分段，不中断其余分段
				return nil
			}

			report, err := az.Analyze(segCtx, actx, txns, b.MinSupport, b.MinConfidence)
			if err != nil {
				return nil
			}

			mu.Lock()
			reports[segment] = report
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

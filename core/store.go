package core

import "context"

// TransactionStore 是交易数据的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//
// 挖掘核心自身不取数：调用方（或批量编排器）通过本接口加载一个分段的
// 交易批次后整体传入。分段（segment）可以是门店、时段或渠道等任意维度。
type TransactionStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// GetTransactions 读取一个分段的交易批次
	GetTransactions(ctx context.Context, segment string) ([]Transaction, error)

	// PutTransactions 整体写入一个分段的交易批次（通常由离线任务定期刷新）
	PutTransactions(ctx context.Context, segment string, txns []Transaction) error

	// Segments 列出当前可用的分段
	Segments(ctx context.Context) ([]string, error)

	// Close 关闭连接/释放资源
	Close() error
}

// Store 错误定义（使用统一的 DomainError）
var (
	// ErrStoreNotFound 表示分段不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: segment not found")
)

// IsStoreNotFound 检查错误是否为分段不存在
func IsStoreNotFound(err error) bool {
	if err == nil {
		return false
	}
	domainErr := GetDomainError(err)
	if domainErr != nil && domainErr.Module == ModuleStore {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

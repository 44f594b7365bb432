package store

import (
	"context"
	"sort"
	"sync"

	"github.com/rushteam/basketkit/core"
)

// MemoryStore 是内存实现的 TransactionStore，用于测试/开发/原型。
// 进程重启后数据丢失。读写均做防御性拷贝：取出的批次可以放心传给分析器，
// 存储内部的数据不会被外部修改。
type MemoryStore struct {
	mu       sync.RWMutex
	segments map[string][]core.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		segments: make(map[string][]core.Transaction),
	}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) GetTransactions(_ context.Context, segment string) ([]core.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	txns, ok := m.segments[segment]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	return copyTransactions(txns), nil
}

func (m *MemoryStore) PutTransactions(_ context.Context, segment string, txns []core.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.segments[segment] = copyTransactions(txns)
	return nil
}

func (m *MemoryStore) Segments(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.segments))
	for seg := range m.segments {
		out = append(out, seg)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func copyTransactions(txns []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, len(txns))
	for i, t := range txns {
		items := make([]string, len(t.Items))
		copy(items, t.Items)
		out[i] = core.Transaction{ID: t.ID, Items: items}
	}
	return out
}

// 确保 MemoryStore 实现了 core.TransactionStore 接口
var _ core.TransactionStore = (*MemoryStore)(nil)

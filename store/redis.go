package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/basketkit/core"
)

// Redis key 约定：
//   - 每个分段的交易批次以 JSON 数组存在 basket:txns:<segment>
//   - 分段集合维护在 basket:segments（Set）
const (
	redisTxnKeyPrefix  = "basket:txns:"
	redisSegmentSetKey = "basket:segments"
)

// RedisStore 是 Redis 实现的 TransactionStore。
// 生产环境常用：离线任务定期整体刷新各分段的交易批次，
// 分析侧按分段一次性读出后传给分析器。
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Name() string { return "redis" }

func (r *RedisStore) GetTransactions(ctx context.Context, segment string) ([]core.Transaction, error) {
	data, err := r.client.Get(ctx, redisTxnKeyPrefix+segment).Bytes()
	if err == redis.Nil {
		return nil, core.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}

	var txns []core.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *RedisStore) PutTransactions(ctx context.Context, segment string, txns []core.Transaction) error {
	data, err := json.Marshal(txns)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, redisTxnKeyPrefix+segment, data, 0)
	pipe.SAdd(ctx, redisSegmentSetKey, segment)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisStore) Segments(ctx context.Context) ([]string, error) {
	segments, err := r.client.SMembers(ctx, redisSegmentSetKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(segments)
	return segments, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// 确保 RedisStore 实现了 core.TransactionStore 接口
var _ core.TransactionStore = (*RedisStore)(nil)

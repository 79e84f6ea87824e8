package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// ChangelistCache 管理後台列表頁的快取，任何寫入都應呼叫 Invalidate
type ChangelistCache interface {
	// 讀取：不存在時回傳 ErrCacheMiss
	Get(ctx context.Context, model string) ([]byte, error)
	// 寫入：帶 TTL
	Set(ctx context.Context, model string, payload []byte) error
	// 失效：一次清除多個 model 的列表
	Invalidate(ctx context.Context, models ...string) error
}

type RedisChangelistCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisChangelistCache(client *redis.Client, ttl time.Duration) ChangelistCache {
	return &RedisChangelistCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisChangelistCache) getKey(model string) string {
	return fmt.Sprintf("admin:changelist:%s", model)
}

func (c *RedisChangelistCache) Get(ctx context.Context, model string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.getKey(model)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *RedisChangelistCache) Set(ctx context.Context, model string, payload []byte) error {
	return c.client.Set(ctx, c.getKey(model), payload, c.ttl).Err()
}

func (c *RedisChangelistCache) Invalidate(ctx context.Context, models ...string) error {
	if len(models) == 0 {
		return nil
	}
	keys := make([]string, 0, len(models))
	for _, m := range models {
		keys = append(keys, c.getKey(m))
	}
	return c.client.Del(ctx, keys...).Err()
}

// NoopChangelistCache 不快取，Redis 未設定或測試時使用
type NoopChangelistCache struct{}

func NewNoopChangelistCache() ChangelistCache {
	return NoopChangelistCache{}
}

func (NoopChangelistCache) Get(ctx context.Context, model string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (NoopChangelistCache) Set(ctx context.Context, model string, payload []byte) error {
	return nil
}

func (NoopChangelistCache) Invalidate(ctx context.Context, models ...string) error {
	return nil
}

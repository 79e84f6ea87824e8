//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"go-gin-seat-booking/config"
	"go-gin-seat-booking/internal/cache"
	"go-gin-seat-booking/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisChangelistCache(t *testing.T) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	require.NoError(t, err)
	defer rdb.Close()

	ctx := context.Background()
	require.NoError(t, rdb.FlushDB(ctx).Err())

	c := cache.NewRedisChangelistCache(rdb, time.Minute)

	_, err = c.Get(ctx, "company")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "company", []byte(`{"count":1}`)))
	require.NoError(t, c.Set(ctx, "seat", []byte(`{"count":2}`)))

	got, err := c.Get(ctx, "company")
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1}`, string(got))

	ttl, err := rdb.TTL(ctx, "admin:changelist:company").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Invalidate(ctx, "company", "seat", "user"))
	_, err = c.Get(ctx, "company")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
	_, err = c.Get(ctx, "seat")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	assert.NoError(t, c.Invalidate(ctx))
}

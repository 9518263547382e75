package cache

import (
	"context"
	"testing"
	"time"

	"locator/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client), mr
}

func TestRedisCache_GetSet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "geocoding:nowhere")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "geocoding:10001", []byte(`{"latitude":40.75}`), time.Minute))

	value, err := c.Get(ctx, "geocoding:10001")
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude":40.75}`, string(value))

	exists, err := c.Exists(ctx, "geocoding:10001")
	require.NoError(t, err)
	assert.True(t, exists)

	mr.FastForward(2 * time.Minute)

	_, err = c.Get(ctx, "geocoding:10001")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	exists, err = c.Exists(ctx, "geocoding:10001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisCache_Increment(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, resetIn, err := c.Increment(ctx, "ratelimit:1.2.3.4:minute", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
		assert.LessOrEqual(t, resetIn, time.Minute)
		assert.Greater(t, resetIn, time.Duration(0))
	}

	mr.FastForward(61 * time.Second)

	count, _, err := c.Increment(ctx, "ratelimit:1.2.3.4:minute", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisCache_ConnectionError(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, err := c.Get(context.Background(), "search:x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

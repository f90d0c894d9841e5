package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisSlotCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSlotCache(client, time.Minute), mr
}

func TestRedisSlotCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	v, err := c.Version(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	key := SlotKey{ProfessionalID: 7, Version: v, Date: "2024-01-01", DurationMin: 30}

	_, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, key, []string{"09:00", "09:30"}))

	slots, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)

	assert.Equal(t, time.Minute, mr.TTL(key.String()))
}

func TestRedisSlotCacheEmptyListIsAHit(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	key := SlotKey{ProfessionalID: 1, Date: "2024-01-01", DurationMin: 30}

	require.NoError(t, c.Set(ctx, key, nil))

	slots, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, slots)
}

func TestRedisSlotCacheBumpInvalidates(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	key := SlotKey{ProfessionalID: 7, Version: 0, Date: "2024-01-01", DurationMin: 30}
	require.NoError(t, c.Set(ctx, key, []string{"09:00"}))

	require.NoError(t, c.Bump(ctx, 7))

	v, err := c.Version(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	key.Version = v
	_, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, hit)

	// outro profissional não é afetado
	other, err := c.Version(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(0), other)
}

func TestRedisSlotCacheSurfacesConnectionErrors(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	mr.Close()

	_, err := c.Version(ctx, 1)
	assert.Error(t, err)
}

func TestNewRedisClientFailsFast(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	_ = client.Close()

	addr := mr.Addr()
	mr.Close()
	_, err = NewRedisClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

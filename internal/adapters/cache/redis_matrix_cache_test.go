package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"load-optimizer-service/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisMatrixCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisMatrixCache(rdb, ttl), mr
}

func sampleLocations() []domain.Coordinate {
	return []domain.Coordinate{
		{Lat: 52.94, Lng: -106.45},
		{Lat: 52.13, Lng: -106.67},
	}
}

func TestRedisMatrixCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	locations := sampleLocations()
	m := domain.DistanceMatrix{{0, 95.5}, {97.2, 0}}

	require.NoError(t, c.Put(ctx, locations, m))

	got, ok, err := c.Get(ctx, locations)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, m, got)
}

func TestRedisMatrixCacheMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	_, ok, err := c.Get(context.Background(), sampleLocations())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisMatrixCacheKeyDependsOnLocations(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	locations := sampleLocations()
	m := domain.DistanceMatrix{{0, 95.5}, {97.2, 0}}
	require.NoError(t, c.Put(ctx, locations, m))

	other := []domain.Coordinate{
		{Lat: 52.94, Lng: -106.45},
		{Lat: 50.44, Lng: -104.62},
	}
	_, ok, err := c.Get(ctx, other)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisMatrixCacheEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	locations := sampleLocations()
	require.NoError(t, c.Put(ctx, locations, domain.DistanceMatrix{{0, 1}, {1, 0}}))

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, locations)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisMatrixCacheRoundingStabilizesKeys(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	a := []domain.Coordinate{{Lat: 52.940000001, Lng: -106.45}}
	b := []domain.Coordinate{{Lat: 52.940000002, Lng: -106.45}}

	require.NoError(t, c.Put(ctx, a, domain.DistanceMatrix{{0}}))

	_, ok, err := c.Get(ctx, b)
	require.NoError(t, err)
	require.True(t, ok, "sub-meter jitter should hit the same key")
}

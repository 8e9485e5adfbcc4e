package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"load-optimizer-service/internal/domain"
)

// RedisMatrixCache stores whole distance matrices keyed by a digest of the
// location list. Distances for a fixed set of coordinates change slowly, so a
// short TTL keeps results fresh while absorbing repeated optimization runs
// over the same warehouse and order set.
type RedisMatrixCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisMatrixCache(rdb *redis.Client, ttl time.Duration) *RedisMatrixCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}
	return &RedisMatrixCache{rdb: rdb, ttl: ttl}
}

// key derives a stable cache key. Coordinates are rounded to 5 decimals
// (about one meter) so float noise does not fragment the cache.
func key(locations []domain.Coordinate) string {
	var sb strings.Builder
	for _, l := range locations {
		sb.WriteString(strconv.FormatFloat(l.Lat, 'f', 5, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(l.Lng, 'f', 5, 64))
		sb.WriteByte(';')
	}
	sum := sha1.Sum([]byte(sb.String()))
	return "matrix:" + hex.EncodeToString(sum[:])
}

func (c *RedisMatrixCache) Get(ctx context.Context, locations []domain.Coordinate) (domain.DistanceMatrix, bool, error) {
	if c.rdb == nil {
		return nil, false, errors.New("matrix cache: redis client is nil")
	}

	raw, err := c.rdb.Get(ctx, key(locations)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("matrix cache get: %w", err)
	}

	var m domain.DistanceMatrix
	if err := json.Unmarshal(raw, &m); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes.
		return nil, false, fmt.Errorf("matrix cache decode: %w", err)
	}

	return m, true, nil
}

func (c *RedisMatrixCache) Put(ctx context.Context, locations []domain.Coordinate, m domain.DistanceMatrix) error {
	if c.rdb == nil {
		return errors.New("matrix cache: redis client is nil")
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("matrix cache encode: %w", err)
	}

	if err := c.rdb.Set(ctx, key(locations), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("matrix cache put: %w", err)
	}

	return nil
}

package external

import (
	"context"
	"math"
	"time"

	"github.com/coocood/freecache"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/metrics"
)

const (
	bytesPerMB       = 1024 * 1024
	defaultMemoryMB  = 16
	memoryCacheLabel = "memory"
)

// MemoryCacheProvider is an in-process byte cache backed by freecache.
// Expiry has one second granularity.
type MemoryCacheProvider struct {
	cache   *freecache.Cache
	metrics *metrics.CacheMetrics
}

func NewMemoryCacheProvider(sizeMB int) *MemoryCacheProvider {
	if sizeMB <= 0 {
		sizeMB = defaultMemoryMB
	}
	return &MemoryCacheProvider{
		cache:   freecache.NewCache(sizeMB * bytesPerMB),
		metrics: metrics.NewCacheMetrics(memoryCacheLabel),
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	start := time.Now()
	value, err := c.cache.Get([]byte(key))
	c.metrics.RecordLatency("get", time.Since(start))

	if err == freecache.ErrNotFound {
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}
	if err != nil {
		return nil, errors.NewCacheError("memory cache get failed", err)
	}

	c.RecordHit()
	return value, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	start := time.Now()
	err := c.cache.Set([]byte(key), value, ttlSeconds(ttl))
	c.metrics.RecordLatency("set", time.Since(start))
	if err != nil {
		return errors.NewCacheError("memory cache set failed", err)
	}
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.cache.Del([]byte(key))
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	_, err := c.cache.Peek([]byte(key))
	return err == nil, nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.cache.Clear()
	return nil
}

// EntryCount is the number of live entries
func (c *MemoryCacheProvider) EntryCount() int64 {
	return c.cache.EntryCount()
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return toPortsStats(c.metrics.Stats())
}

func (c *MemoryCacheProvider) RecordHit() {
	c.metrics.RecordHit()
}

func (c *MemoryCacheProvider) RecordMiss() {
	c.metrics.RecordMiss()
}

// ttlSeconds rounds up so that sub-second TTLs still store the value
func ttlSeconds(ttl time.Duration) int {
	seconds := int(math.Ceil(ttl.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}

func toPortsStats(stats metrics.CacheStats) ports.CacheStats {
	return ports.CacheStats{
		Hits:        stats.Hits,
		Misses:      stats.Misses,
		TotalOps:    stats.Total,
		HitRatio:    stats.HitRatio,
		LastUpdated: time.Now(),
	}
}

var (
	_ ports.CacheProvider = (*MemoryCacheProvider)(nil)
	_ ports.CacheMetrics  = (*MemoryCacheProvider)(nil)
)

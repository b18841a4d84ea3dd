package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
}

// SuggestionCache caches city-name lookups per normalized query
type SuggestionCache interface {
	Get(ctx context.Context, query string) ([]string, error)
	Set(ctx context.Context, query string, names []string, ttl time.Duration) error
}

// ForecastCache holds the in-memory query state for forecasts, keyed by city
type ForecastCache interface {
	Get(ctx context.Context, city string) (*ForecastData, error)
	Set(ctx context.Context, city string, forecast *ForecastData, ttl time.Duration) error
}

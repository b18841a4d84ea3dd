package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// StatsSource exposes locally kept counters for the JSON metrics endpoint
type StatsSource interface {
	GetStats() map[string]interface{}
}

// MetricsCollectorAdapter aggregates domain counters and per-cache stats
type MetricsCollectorAdapter struct {
	weatherStats StatsSource
	caches       map[string]ports.CacheMetrics
}

type MetricsCollectorConfig struct {
	WeatherStats StatsSource
	Caches       map[string]ports.CacheMetrics
}

func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		weatherStats: config.WeatherStats,
		caches:       config.Caches,
	}
}

// GetMetrics returns a JSON-friendly snapshot
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	result := map[string]interface{}{}

	if m.weatherStats != nil {
		result["weather"] = m.weatherStats.GetStats()
	}

	caches := make(map[string]interface{}, len(m.caches))
	for name, cache := range m.caches {
		if cache == nil {
			continue
		}
		stats := cache.GetStats()
		caches[name] = map[string]interface{}{
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		}
	}
	result["cache"] = caches

	return result, nil
}

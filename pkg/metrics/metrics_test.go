package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCacheMetrics(t *testing.T) {
	metrics := NewCacheMetrics("test")

	t.Run("Initial state", func(t *testing.T) {
		stats := metrics.Stats()
		assert.Equal(t, "test", stats.CacheType)
		assert.Equal(t, int64(0), stats.Hits)
		assert.Equal(t, int64(0), stats.Misses)
		assert.Equal(t, int64(0), stats.Total)
		assert.Equal(t, float64(0), stats.HitRatio)
	})

	t.Run("Record hits and misses", func(t *testing.T) {
		metrics.RecordHit()
		metrics.RecordHit()
		metrics.RecordMiss()

		stats := metrics.Stats()
		assert.Equal(t, int64(2), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(3), stats.Total)
		assert.Equal(t, float64(2)/float64(3), stats.HitRatio)
		assert.Equal(t, float64(2), testutil.ToFloat64(getCollector().CacheHits.WithLabelValues("test")))
	})

	t.Run("Hit ratio calculation", func(t *testing.T) {
		newMetrics := NewCacheMetrics("ratio_test")

		for i := 0; i < 7; i++ {
			newMetrics.RecordHit()
		}
		for i := 0; i < 3; i++ {
			newMetrics.RecordMiss()
		}

		stats := newMetrics.Stats()
		assert.Equal(t, int64(10), stats.Total)
		assert.Equal(t, 0.7, stats.HitRatio)
		assert.Equal(t, 0.7, testutil.ToFloat64(getCollector().CacheHitRatio.WithLabelValues("ratio_test")))
	})

	t.Run("Record latency", func(t *testing.T) {
		metrics.RecordLatency("get", time.Millisecond)
		metrics.RecordLatency("set", 2*time.Millisecond)
	})
}

func TestWeatherMetrics(t *testing.T) {
	metrics := NewWeatherMetrics()
	before := testutil.ToFloat64(getCollector().StaleDiscards.WithLabelValues("suggestions"))

	metrics.RecordLookup("success", 20*time.Millisecond)
	metrics.RecordLookup("success", 30*time.Millisecond)
	metrics.RecordLookup("error", time.Second)
	metrics.RecordStaleDiscard("suggestions")
	metrics.RecordForecastFetch("cache_hit", time.Millisecond)

	stats := metrics.GetStats()
	assert.Equal(t, map[string]int64{"success": 2, "error": 1}, stats["suggestion_lookups"])
	assert.Equal(t, map[string]int64{"suggestions": 1}, stats["stale_discards"])
	assert.Equal(t, map[string]int64{"cache_hit": 1}, stats["forecast_fetches"])
	assert.Equal(t, before+1, testutil.ToFloat64(getCollector().StaleDiscards.WithLabelValues("suggestions")))
}

func TestGetCollectorIsSingleton(t *testing.T) {
	assert.Same(t, getCollector(), getCollector())
}

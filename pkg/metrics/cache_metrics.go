package metrics

import (
	"sync"
	"time"
)

// CacheStats is a point-in-time copy of one cache's counters
type CacheStats struct {
	CacheType string
	Hits      int64
	Misses    int64
	Total     int64
	HitRatio  float64
}

type CacheMetrics struct {
	cacheType string
	hits      int64
	misses    int64
	total     int64
	collector *Collector
	mu        sync.RWMutex
}

func NewCacheMetrics(cacheType string) *CacheMetrics {
	return &CacheMetrics{
		cacheType: cacheType,
		collector: getCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.collector.CacheHits.WithLabelValues(m.cacheType).Inc()
	m.collector.CacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.collector.CacheMisses.WithLabelValues(m.cacheType).Inc()
	m.collector.CacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordLatency(operation string, duration time.Duration) {
	m.collector.CacheLatency.WithLabelValues(m.cacheType, operation).Observe(duration.Seconds())
}

// updateHitRatio must be called while holding the mutex
func (m *CacheMetrics) updateHitRatio() {
	if m.total > 0 {
		m.collector.CacheHitRatio.WithLabelValues(m.cacheType).Set(float64(m.hits) / float64(m.total))
	}
}

func (m *CacheMetrics) Stats() CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}

	return CacheStats{
		CacheType: m.cacheType,
		Hits:      m.hits,
		Misses:    m.misses,
		Total:     m.total,
		HitRatio:  hitRatio,
	}
}

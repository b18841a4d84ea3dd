package metrics

import (
	"sync"
	"time"
)

// WeatherMetrics counts suggestion lookups, forecast fetches and stale discards.
// Counts are kept locally as well so the JSON metrics endpoint can report them.
type WeatherMetrics struct {
	collector *Collector

	mu              sync.RWMutex
	lookups         map[string]int64
	forecastFetches map[string]int64
	staleDiscards   map[string]int64
}

func NewWeatherMetrics() *WeatherMetrics {
	return &WeatherMetrics{
		collector:       getCollector(),
		lookups:         make(map[string]int64),
		forecastFetches: make(map[string]int64),
		staleDiscards:   make(map[string]int64),
	}
}

func (m *WeatherMetrics) RecordLookup(outcome string, duration time.Duration) {
	m.collector.Lookups.WithLabelValues(outcome).Inc()
	m.collector.LookupLatency.WithLabelValues(outcome).Observe(duration.Seconds())

	m.mu.Lock()
	m.lookups[outcome]++
	m.mu.Unlock()
}

func (m *WeatherMetrics) RecordStaleDiscard(component string) {
	m.collector.StaleDiscards.WithLabelValues(component).Inc()

	m.mu.Lock()
	m.staleDiscards[component]++
	m.mu.Unlock()
}

func (m *WeatherMetrics) RecordForecastFetch(outcome string, duration time.Duration) {
	m.collector.ForecastFetches.WithLabelValues(outcome).Inc()
	m.collector.ForecastLatency.WithLabelValues(outcome).Observe(duration.Seconds())

	m.mu.Lock()
	m.forecastFetches[outcome]++
	m.mu.Unlock()
}

func (m *WeatherMetrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"suggestion_lookups": copyCounts(m.lookups),
		"forecast_fetches":   copyCounts(m.forecastFetches),
		"stale_discards":     copyCounts(m.staleDiscards),
	}
}

func copyCounts(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

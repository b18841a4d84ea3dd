package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds every Prometheus vector the dashboard exports. It is registered once
// per process on the default registry.
type Collector struct {
	CacheHits     *prometheus.CounterVec
	CacheMisses   *prometheus.CounterVec
	CacheRequests *prometheus.CounterVec
	CacheLatency  *prometheus.HistogramVec
	CacheHitRatio *prometheus.GaugeVec

	Lookups         *prometheus.CounterVec
	LookupLatency   *prometheus.HistogramVec
	StaleDiscards   *prometheus.CounterVec
	ForecastFetches *prometheus.CounterVec
	ForecastLatency *prometheus.HistogramVec
}

var (
	globalCollector *Collector
	collectorOnce   sync.Once
)

func getCollector() *Collector {
	collectorOnce.Do(func() {
		globalCollector = &Collector{
			CacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_cache_hits_total",
					Help: "The total number of cache hits",
				},
				[]string{"cache_type"},
			),
			CacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_cache_misses_total",
					Help: "The total number of cache misses",
				},
				[]string{"cache_type"},
			),
			CacheRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_cache_requests_total",
					Help: "The total number of cache requests",
				},
				[]string{"cache_type"},
			),
			CacheLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weatherdash_cache_duration_seconds",
					Help:    "Cache operation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"cache_type", "operation"},
			),
			CacheHitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "weatherdash_cache_hit_ratio",
					Help: "Cache hit ratio (hits/total requests)",
				},
				[]string{"cache_type"},
			),
			Lookups: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_suggestion_lookups_total",
					Help: "Applied city suggestion lookups by outcome",
				},
				[]string{"outcome"},
			),
			LookupLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weatherdash_suggestion_lookup_duration_seconds",
					Help:    "City suggestion lookup duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"outcome"},
			),
			StaleDiscards: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_stale_responses_discarded_total",
					Help: "Async responses dropped because a newer request superseded them",
				},
				[]string{"component"},
			),
			ForecastFetches: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_forecast_fetches_total",
					Help: "Forecast fetches by outcome",
				},
				[]string{"outcome"},
			),
			ForecastLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weatherdash_forecast_fetch_duration_seconds",
					Help:    "Forecast fetch duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"outcome"},
			),
		}
	})
	return globalCollector
}

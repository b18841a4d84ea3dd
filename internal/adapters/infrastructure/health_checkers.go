package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Pinger is satisfied by caches that hold a network connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker pings the suggestion cache when it is remote
type CacheHealthChecker struct {
	config ports.CacheConfig
	cache  ports.CacheProvider
}

func NewCacheHealthChecker(config ports.CacheConfig, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{config: config, cache: cache}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": c.config.Type,
		},
	}
	if c.config.Type == "redis" {
		status.Details["addr"] = c.config.RedisAddr
	}

	if c.cache == nil {
		status.Status = statusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	if pinger, ok := c.cache.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	if metrics, ok := c.cache.(ports.CacheMetrics); ok {
		stats := metrics.GetStats()
		status.Details["hit_ratio"] = stats.HitRatio
	}

	return status
}

// WeatherAPIHealthChecker reports which upstream providers are wired
type WeatherAPIHealthChecker struct {
	forecasts   ports.ForecastProvider
	suggestions ports.CitySuggestionProvider
}

func NewWeatherAPIHealthChecker(forecasts ports.ForecastProvider, suggestions ports.CitySuggestionProvider) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{forecasts: forecasts, suggestions: suggestions}
}

// Check does not call upstream, to keep probes from spending API quota
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}

	if w.forecasts == nil || w.suggestions == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}

	status.Details["forecast_provider"] = w.forecasts.GetProviderName()
	status.Details["suggestion_provider"] = w.suggestions.GetProviderName()
	return status
}

// SystemHealthChecker runs every registered checker and adds a config summary
type SystemHealthChecker struct {
	checkers       []ports.HealthChecker
	configProvider ports.ConfigProvider
}

type SystemHealthCheckerConfig struct {
	Checkers       []ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		checkers:       config.Checkers,
		configProvider: config.ConfigProvider,
	}
}

func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for _, checker := range s.checkers {
		status := checker.Check(ctx)
		results[status.Component] = status
	}

	if s.configProvider != nil {
		weather := s.configProvider.GetWeatherConfig()
		forecast := s.configProvider.GetForecastConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"default_city":  weather.DefaultCity,
				"bucket_policy": forecast.BucketPolicy,
				"cutoff_hour":   forecast.CutoffHour,
			},
		}
	}

	return results
}

// IsHealthy reports whether every result is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}

var (
	_ ports.HealthChecker       = (*CacheHealthChecker)(nil)
	_ ports.HealthChecker       = (*WeatherAPIHealthChecker)(nil)
	_ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
)

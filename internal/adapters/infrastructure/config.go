package infrastructure

import (
	"time"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		DefaultCity:    c.config.Weather.DefaultCity,
		RequestTimeout: time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second,
	}
}

func (c *ConfigProviderAdapter) GetSearchConfig() ports.SearchConfig {
	return ports.SearchConfig{
		MinQueryLength: c.config.Search.MinQueryLength,
		EnableCache:    c.config.Search.EnableCache,
		CacheTTL:       time.Duration(c.config.Search.CacheTTLMinutes) * time.Minute,
	}
}

func (c *ConfigProviderAdapter) GetForecastConfig() ports.ForecastConfig {
	return ports.ForecastConfig{
		Count:           c.config.Forecast.Count,
		CutoffHour:      c.config.Forecast.CutoffHour,
		BucketPolicy:    c.config.Forecast.BucketPolicy.String(),
		QueryTTL:        time.Duration(c.config.Forecast.QueryTTLSeconds) * time.Second,
		RefreshInterval: time.Duration(c.config.Forecast.RefreshIntervalMinutes) * time.Minute,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:      c.config.Cache.Type.String(),
		RedisAddr: c.config.Cache.Redis.Addr,
	}
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)

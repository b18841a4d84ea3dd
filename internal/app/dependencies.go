package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/logger"
	"weatherdash.app/pkg/metrics"
)

type DependencyContainer struct {
	config *config.Config
	ports  *ports.ApplicationPorts

	weatherMetrics *metrics.WeatherMetrics
	forecastState  *external.MemoryCacheProvider
	providerLog    *infrastructure.FileLoggerAdapter
}

func NewDependencyContainer(cfg *config.Config, base *logger.Logger) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializePorts(base); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(base *logger.Logger) error {
	slog.Info("Initializing ports...")

	appLogger := infrastructure.NewSlogLoggerAdapter(base)

	// Upstream traffic goes to its own file when enabled
	var providerLogger ports.Logger = appLogger
	if c.config.Weather.EnableLogging {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.providerLog = fileLogger
			providerLogger = fileLogger
			slog.Info("Provider file logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	owm := external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  c.config.Weather.OpenWeatherMapKey,
		BaseURL: c.config.Weather.OpenWeatherMapBaseURL,
		Count:   c.config.Forecast.Count,
		Timeout: time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second,
		Logger:  appLogger,
	})

	var forecastProvider ports.ForecastProvider = owm
	var suggestionProvider ports.CitySuggestionProvider = owm
	if c.config.Weather.EnableLogging {
		forecastProvider = external.NewForecastProviderLoggingDecorator(forecastProvider, providerLogger)
		suggestionProvider = external.NewSuggestionProviderLoggingDecorator(suggestionProvider, providerLogger)
	}

	suggestionProvider = external.NewRateLimitedSuggestionProvider(
		suggestionProvider, c.config.Search.RateLimitRPS, c.config.Search.RateLimitBurst)

	cacheFactory := external.NewCacheProviderFactory()
	cacheProvider, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	slog.Info("Suggestion cache initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	suggestionCache := external.NewSuggestionCacheAdapter(cacheProvider)
	if c.config.Search.EnableCache {
		suggestionProvider = external.NewCachedSuggestionProvider(
			suggestionProvider,
			suggestionCache,
			time.Duration(c.config.Search.CacheTTLMinutes)*time.Minute,
			appLogger)
	}

	// Forecast query state is always process-local
	c.forecastState = external.NewMemoryCacheProvider(c.config.Cache.MemorySizeMB)
	c.weatherMetrics = metrics.NewWeatherMetrics()

	var cacheMetrics ports.CacheMetrics
	if m, ok := cacheProvider.(ports.CacheMetrics); ok {
		cacheMetrics = m
	}

	c.ports = &ports.ApplicationPorts{
		ForecastProvider:   forecastProvider,
		SuggestionProvider: suggestionProvider,
		ForecastCache:      external.NewForecastCacheAdapter(c.forecastState),
		SuggestionCache:    suggestionCache,

		CacheProvider: cacheProvider,
		CacheMetrics:  cacheMetrics,

		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         appLogger,
		Metrics:        c.weatherMetrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// WeatherMetrics exposes the local counters behind the Metrics port
func (c *DependencyContainer) WeatherMetrics() *metrics.WeatherMetrics {
	return c.weatherMetrics
}

// ForecastState is the memory cache that holds forecast query state
func (c *DependencyContainer) ForecastState() *external.MemoryCacheProvider {
	return c.forecastState
}

// Cleanup releases the redis connection and the provider log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if c.ports != nil {
		if closer, ok := c.ports.CacheProvider.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				firstErr = err
			}
		}
	}

	if c.providerLog != nil {
		if err := c.providerLog.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

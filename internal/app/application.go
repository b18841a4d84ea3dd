package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/search"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/logger"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	forecastUseCase *forecast.UseCase
	dashboard       *dashboard.Dashboard
	search          *search.Search

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
}

// NewApplicationWithConfig wires the application from an already validated config
func NewApplicationWithConfig(cfg *config.Config, base *logger.Logger) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, base)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Provider: a.ports.ForecastProvider,
		Cache:    a.ports.ForecastCache,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create forecast use case: %w", err)
	}
	a.forecastUseCase = forecastUseCase

	page, err := dashboard.NewDashboard(dashboard.Dependencies{
		Forecasts: forecastUseCase,
		Config:    a.ports.ConfigProvider,
		Logger:    a.ports.Logger,
		Metrics:   a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create dashboard: %w", err)
	}
	a.dashboard = page

	citySearch, err := search.NewSearch(search.Dependencies{
		Provider: a.ports.SuggestionProvider,
		Fetcher:  page,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create search: %w", err)
	}
	a.search = citySearch

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		WeatherStats: a.deps.WeatherMetrics(),
		Caches: map[string]ports.CacheMetrics{
			"suggestions":    a.ports.CacheMetrics,
			"forecast_state": a.deps.ForecastState(),
		},
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers: []ports.HealthChecker{
			infrastructure.NewCacheHealthChecker(a.ports.ConfigProvider.GetCacheConfig(), a.ports.CacheProvider),
			infrastructure.NewWeatherAPIHealthChecker(a.ports.ForecastProvider, a.ports.SuggestionProvider),
		},
		ConfigProvider: a.ports.ConfigProvider,
	})

	serverConfig := a.ports.ConfigProvider.GetServerConfig()
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:           serverConfig.Port,
			MinQueryLength: a.ports.ConfigProvider.GetSearchConfig().MinQueryLength,
		},
		Forecasts:        a.forecastUseCase,
		Suggestions:      a.ports.SuggestionProvider,
		Search:           a.search,
		Dashboard:        a.dashboard,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", serverConfig.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start loads the default city, starts the refresh scheduler and blocks serving HTTP
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	a.dashboard.Fetch(ctx, a.forecastUseCase.DefaultCity())
	go a.startScheduler(ctx, a.ports.ConfigProvider.GetForecastConfig().RefreshInterval)

	slog.Info("Starting HTTP server", "addr", a.httpServer.Addr)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) startScheduler(ctx context.Context, interval time.Duration) {
	slog.Info("Starting dashboard refresh scheduler", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Scheduler stopped")
			return
		case <-ticker.C:
			a.dashboard.Refresh(ctx)
		}
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	close(a.stopChan)

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.search.Close()
	a.dashboard.Close()

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

func (a *Application) GetSearch() *search.Search {
	return a.search
}

func (a *Application) GetDashboard() *dashboard.Dashboard {
	return a.dashboard
}

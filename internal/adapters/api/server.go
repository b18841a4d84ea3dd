// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/search"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

const requestIDHeader = "X-Request-ID"

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port           int
	MinQueryLength int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	forecasts        ForecastUseCase
	suggestions      ports.CitySuggestionProvider
	search           SearchSession
	dashboard        DashboardPage
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
}

// ForecastUseCase is the stateless forecast query
type ForecastUseCase interface {
	GetForecast(ctx context.Context, request forecast.ForecastRequest) (*forecast.Forecast, error)
	Daily(f *forecast.Forecast) []forecast.DayBucket
}

// SearchSession is the server-side typeahead the dashboard page drives
type SearchSession interface {
	OnInputChange(ctx context.Context, value string)
	OnSuggestionSelect(value string)
	OnSubmit(ctx context.Context) error
	State() search.State
}

type DashboardPage interface {
	Snapshot() dashboard.Snapshot
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	Forecasts        ForecastUseCase
	Suggestions      ports.CitySuggestionProvider
	Search           SearchSession
	Dashboard        DashboardPage
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	minQueryLength := opts.Config.MinQueryLength
	if minQueryLength <= 0 {
		minQueryLength = search.DefaultMinQueryLength
	}
	opts.Config.MinQueryLength = minQueryLength

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		forecasts:        opts.Forecasts,
		suggestions:      opts.Suggestions,
		search:           opts.Search,
		dashboard:        opts.Dashboard,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Forecasts == nil {
		return errors.NewValidationError("forecast use case is required")
	}
	if opts.Suggestions == nil {
		return errors.NewValidationError("suggestion provider is required")
	}
	if opts.Search == nil {
		return errors.NewValidationError("search session is required")
	}
	if opts.Dashboard == nil {
		return errors.NewValidationError("dashboard is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// RegisterValidators adds the cityquery binding rule to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("gin validator engine is not go-playground/validator", nil)
	}
	return v.RegisterValidation("cityquery", validateCityQuery)
}

func validateCityQuery(fl validator.FieldLevel) bool {
	return validation.IsValidCityQuery(fl.Field().String())
}

func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/suggestions", s.getSuggestions)
		api.GET("/forecast", s.getForecast)
		api.GET("/search", s.getSearch)
		api.POST("/search/input", s.searchInput)
		api.POST("/search/select", s.searchSelect)
		api.POST("/search/submit", s.searchSubmit)
		api.GET("/dashboard", s.getDashboard)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// requestID tags every request so handler logs can be correlated
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Start begins the HTTP server
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

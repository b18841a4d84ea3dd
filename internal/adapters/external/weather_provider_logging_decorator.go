package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// ForecastProviderLoggingDecorator decorates forecast providers with structured logging
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

// NewForecastProviderLoggingDecorator creates a new logging decorator for forecast providers
func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) ports.ForecastProvider {
	return &ForecastProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetForecast wraps the provider call with structured logging
func (d *ForecastProviderLoggingDecorator) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Forecast API request started",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "request"))

	startTime := time.Now()
	forecast, err := d.provider.GetForecast(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast API request failed",
			ports.F("provider", providerName),
			ports.F("city", city),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast API request completed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", len(forecast.Samples)))

	return forecast, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// SuggestionProviderLoggingDecorator decorates city suggestion providers with logging
type SuggestionProviderLoggingDecorator struct {
	provider ports.CitySuggestionProvider
	logger   ports.Logger
}

// NewSuggestionProviderLoggingDecorator creates a new logging decorator for suggestion providers
func NewSuggestionProviderLoggingDecorator(provider ports.CitySuggestionProvider, logger ports.Logger) ports.CitySuggestionProvider {
	return &SuggestionProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FindCities wraps the lookup with structured logging
func (d *SuggestionProviderLoggingDecorator) FindCities(ctx context.Context, query string) ([]string, error) {
	providerName := d.provider.GetProviderName()
	startTime := time.Now()

	names, err := d.provider.FindCities(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("City lookup failed",
			ports.F("provider", providerName),
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("City lookup completed",
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("matches", len(names)))

	return names, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *SuggestionProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

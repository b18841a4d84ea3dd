package external

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	suggestionKeyPrefix = "suggestions:"
	forecastKeyPrefix   = "forecast:"
)

// SuggestionCacheAdapter bridges generic CacheProvider to the suggestion cache port
type SuggestionCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

func NewSuggestionCacheAdapter(cacheProvider ports.CacheProvider) *SuggestionCacheAdapter {
	return &SuggestionCacheAdapter{cacheProvider: cacheProvider}
}

// Get returns the cached names for a normalized query
func (s *SuggestionCacheAdapter) Get(ctx context.Context, query string) ([]string, error) {
	data, err := s.cacheProvider.Get(ctx, suggestionKeyPrefix+query)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, errors.NewCacheError("failed to deserialize city suggestions", err)
	}
	return names, nil
}

func (s *SuggestionCacheAdapter) Set(ctx context.Context, query string, names []string, ttl time.Duration) error {
	if names == nil {
		return errors.NewValidationError("suggestions cannot be nil")
	}

	data, err := json.Marshal(names)
	if err != nil {
		return errors.NewCacheError("failed to serialize city suggestions", err)
	}
	return s.cacheProvider.Set(ctx, suggestionKeyPrefix+query, data, ttl)
}

// ForecastCacheAdapter bridges generic CacheProvider to the forecast cache port
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

func NewForecastCacheAdapter(cacheProvider ports.CacheProvider) *ForecastCacheAdapter {
	return &ForecastCacheAdapter{cacheProvider: cacheProvider}
}

func (f *ForecastCacheAdapter) Get(ctx context.Context, city string) (*ports.ForecastData, error) {
	data, err := f.cacheProvider.Get(ctx, forecastKeyPrefix+city)
	if err != nil {
		return nil, err
	}

	var forecast ports.ForecastData
	if err := json.Unmarshal(data, &forecast); err != nil {
		return nil, errors.NewCacheError("failed to deserialize forecast", err)
	}
	return &forecast, nil
}

func (f *ForecastCacheAdapter) Set(ctx context.Context, city string, forecast *ports.ForecastData, ttl time.Duration) error {
	if forecast == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}

	data, err := json.Marshal(forecast)
	if err != nil {
		return errors.NewCacheError("failed to serialize forecast", err)
	}
	return f.cacheProvider.Set(ctx, forecastKeyPrefix+city, data, ttl)
}

var (
	_ ports.SuggestionCache = (*SuggestionCacheAdapter)(nil)
	_ ports.ForecastCache   = (*ForecastCacheAdapter)(nil)
)

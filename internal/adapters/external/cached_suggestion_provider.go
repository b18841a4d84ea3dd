package external

import (
	"context"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
)

// CachedSuggestionProvider serves repeated city lookups from the suggestion cache.
// Only non-empty results are stored.
type CachedSuggestionProvider struct {
	provider ports.CitySuggestionProvider
	cache    ports.SuggestionCache
	ttl      time.Duration
	logger   ports.Logger
}

func NewCachedSuggestionProvider(provider ports.CitySuggestionProvider, cache ports.SuggestionCache, ttl time.Duration, logger ports.Logger) *CachedSuggestionProvider {
	return &CachedSuggestionProvider{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

func (c *CachedSuggestionProvider) FindCities(ctx context.Context, query string) ([]string, error) {
	key := strings.ToLower(strings.TrimSpace(query))

	if names, err := c.cache.Get(ctx, key); err == nil && len(names) > 0 {
		c.logger.Debug("City suggestions found in cache", ports.F("query", query))
		return names, nil
	}

	names, err := c.provider.FindCities(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(names) > 0 {
		if cacheErr := c.cache.Set(ctx, key, names, c.ttl); cacheErr != nil {
			c.logger.Warn("Failed to cache city suggestions",
				ports.F("query", query),
				ports.F("error", cacheErr))
		}
	}

	return names, nil
}

func (c *CachedSuggestionProvider) GetProviderName() string {
	return "cached(" + c.provider.GetProviderName() + ")"
}

var _ ports.CitySuggestionProvider = (*CachedSuggestionProvider)(nil)
